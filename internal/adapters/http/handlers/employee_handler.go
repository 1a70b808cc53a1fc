package handlers

import (
	"hrms-lite/internal/core/domain"
	"hrms-lite/internal/core/services"
	"hrms-lite/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// EmployeeHandler handles employee endpoints
type EmployeeHandler struct {
	employeeService *services.EmployeeService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
	}
}

// ListEmployees lists all employees
// @Summary List employees
// @Description Get all employees in creation order
// @Tags Employees
// @Produce json
// @Success 200 {array} domain.Employee
// @Failure 500 {object} response.ErrorBody
// @Router /employees [get]
func (h *EmployeeHandler) ListEmployees(c *fiber.Ctx) error {
	employees, err := h.employeeService.List(c.Context())
	if err != nil {
		return serviceError(c, err, "Failed to list employees")
	}
	return response.OK(c, employees)
}

// CreateEmployee creates an employee
// @Summary Create employee
// @Description Create an employee; employee_id and email must be unique
// @Tags Employees
// @Accept json
// @Produce json
// @Param body body domain.EmployeeCreate true "Employee"
// @Success 201 {object} domain.Employee
// @Failure 400 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Failure 422 {object} response.ErrorBody
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *fiber.Ctx) error {
	var req domain.EmployeeCreate
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	employee, err := h.employeeService.Create(c.Context(), req)
	if err != nil {
		return serviceError(c, err, "Failed to create employee")
	}
	return response.Created(c, employee)
}

// UpdateEmployee updates an employee
// @Summary Update employee
// @Description Replace the mutable fields of an employee (the employee code is fixed)
// @Tags Employees
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Param body body domain.EmployeeUpdate true "Employee fields"
// @Success 200 {object} domain.Employee
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Failure 422 {object} response.ErrorBody
// @Router /employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return response.BadRequest(c, "Invalid employee ID")
	}

	var req domain.EmployeeUpdate
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	employee, err := h.employeeService.Update(c.Context(), id, req)
	if err != nil {
		return serviceError(c, err, "Failed to update employee")
	}
	return response.OK(c, employee)
}

// DeleteEmployee deletes an employee
// @Summary Delete employee
// @Description Delete an employee; attendance records are kept
// @Tags Employees
// @Param id path int true "Employee ID"
// @Success 204
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return response.BadRequest(c, "Invalid employee ID")
	}

	if err := h.employeeService.Delete(c.Context(), id); err != nil {
		return serviceError(c, err, "Failed to delete employee")
	}
	return response.NoContent(c)
}
