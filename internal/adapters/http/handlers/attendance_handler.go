package handlers

import (
	"strconv"

	"hrms-lite/internal/core/domain"
	"hrms-lite/internal/core/services"
	"hrms-lite/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AttendanceHandler handles attendance endpoints
type AttendanceHandler struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceService *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
	}
}

// ListAttendance lists attendance records
// @Summary List attendance
// @Description Get attendance newest first, optionally scoped to an employee and/or date
// @Tags Attendance
// @Produce json
// @Param employee_id query int false "Employee ID"
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {array} domain.Attendance
// @Failure 400 {object} response.ErrorBody
// @Failure 422 {object} response.ErrorBody
// @Router /attendance [get]
func (h *AttendanceHandler) ListAttendance(c *fiber.Ctx) error {
	var filter domain.AttendanceFilter
	if raw := c.Query("employee_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return response.BadRequest(c, "Invalid employee_id")
		}
		filter.EmployeeID = uint(id)
	}
	filter.Date = c.Query("date")

	records, err := h.attendanceService.List(c.Context(), filter)
	if err != nil {
		return serviceError(c, err, "Failed to list attendance")
	}
	return response.OK(c, records)
}

// CreateAttendance marks attendance
// @Summary Mark attendance
// @Description Create an attendance record for one employee and date
// @Tags Attendance
// @Accept json
// @Produce json
// @Param body body domain.AttendanceCreate true "Attendance"
// @Success 201 {object} domain.Attendance
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Failure 422 {object} response.ErrorBody
// @Router /attendance [post]
func (h *AttendanceHandler) CreateAttendance(c *fiber.Ctx) error {
	var req domain.AttendanceCreate
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	record, err := h.attendanceService.Create(c.Context(), req)
	if err != nil {
		return serviceError(c, err, "Failed to mark attendance")
	}
	return response.Created(c, record)
}

// UpdateAttendance updates an attendance record
// @Summary Update attendance
// @Description Change date and status; the employee is fixed
// @Tags Attendance
// @Accept json
// @Produce json
// @Param id path int true "Attendance ID"
// @Param body body domain.AttendanceUpdate true "Attendance fields"
// @Success 200 {object} domain.Attendance
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Failure 422 {object} response.ErrorBody
// @Router /attendance/{id} [put]
func (h *AttendanceHandler) UpdateAttendance(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return response.BadRequest(c, "Invalid attendance ID")
	}

	var req domain.AttendanceUpdate
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	record, err := h.attendanceService.Update(c.Context(), id, req)
	if err != nil {
		return serviceError(c, err, "Failed to update attendance")
	}
	return response.OK(c, record)
}

// DeleteAttendance deletes an attendance record
// @Summary Delete attendance
// @Tags Attendance
// @Param id path int true "Attendance ID"
// @Success 204
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /attendance/{id} [delete]
func (h *AttendanceHandler) DeleteAttendance(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return response.BadRequest(c, "Invalid attendance ID")
	}

	if err := h.attendanceService.Delete(c.Context(), id); err != nil {
		return serviceError(c, err, "Failed to delete attendance")
	}
	return response.NoContent(c)
}
