package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"storewatch/internal/service"
)

// DashboardHandler serves the per-store dashboard.
type DashboardHandler struct {
	storeService     service.StoreService
	dashboardService service.DashboardService
	now              func() time.Time
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(storeService service.StoreService, dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{storeService: storeService, dashboardService: dashboardService, now: time.Now}
}

// GetDashboard godoc
// @Summary Dashboard data for a store
// @Description storeID may be "all". The date selects today, the last 7 days or the last 30 days.
// @Tags dashboard
// @Produce json
// @Param storeID path string true "Store ID or all"
// @Param date query string false "Selected day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} service.Dashboard
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /stores/{storeID}/dashboard [get]
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	ctx := c.Request().Context()

	scope, err := h.storeService.Scope(ctx, c.Param("storeID"))
	if err != nil {
		return fail(err)
	}
	selected, err := parseDay(c.QueryParam("date"), h.now().UTC())
	if err != nil {
		return fail(err)
	}

	dash, err := h.dashboardService.Load(ctx, scope, selected)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, dash)
}
