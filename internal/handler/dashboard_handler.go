package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"nocturna/internal/service"
)

// DashboardHandler serves the admin overview.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Summary godoc
// @Summary Admin overview of one night
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date (YYYY-MM-DD), defaults to tonight"
// @Success 200 {object} service.DashboardSummary
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/dashboard [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	summary, err := h.dashboardService.Summary(c.Request().Context(), c.QueryParam("date"))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, summary)
}
