package handlers

import (
	"net/http"

	"expense-manager/internal/dto"
	"expense-manager/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler handles dashboard statistics requests
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService services.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboardStats returns the current-month headline figures: total spent,
// total monthly budget, remaining amount, percent used, and entity counts
//
// Method: GET /api/v1/dashboard/stats
func (h *DashboardHandler) GetDashboardStats(c echo.Context) error {
	stats, err := h.dashboardService.GetDashboardStats()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DashboardStatsResponse{Stats: stats})
}
