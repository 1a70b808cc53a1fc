package handlers

import (
	"hrms-lite/internal/core/services"
	"hrms-lite/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetSummary returns dashboard summary
// @Summary Dashboard summary
// @Description Headcount, today's present/absent counts and recent attendance
// @Tags Dashboard
// @Produce json
// @Success 200 {object} domain.DashboardSummary
// @Failure 500 {object} response.ErrorBody
// @Router /dashboard-summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	data, err := h.dashboardService.GetSummary(c.Context())
	if err != nil {
		return serviceError(c, err, "Failed to load dashboard data")
	}
	return response.OK(c, data)
}
