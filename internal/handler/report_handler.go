package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"storewatch/internal/aggregate"
	"storewatch/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler serves footfall reports.
type ReportHandler struct {
	storeService  service.StoreService
	reportService service.ReportService
	now           func() time.Time
}

// NewReportHandler creates a new report handler.
func NewReportHandler(storeService service.StoreService, reportService service.ReportService) *ReportHandler {
	return &ReportHandler{storeService: storeService, reportService: reportService, now: time.Now}
}

// CustomerReport godoc
// @Summary Customer footfall report
// @Tags reports
// @Produce json
// @Param storeID path string true "Store ID or all"
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day, inclusive (YYYY-MM-DD)"
// @Success 200 {object} service.CustomerReport
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /stores/{storeID}/reports/customer [get]
func (h *ReportHandler) CustomerReport(c echo.Context) error {
	ctx := c.Request().Context()
	scope, err := h.storeService.Scope(ctx, c.Param("storeID"))
	if err != nil {
		return fail(err)
	}
	r, err := parseRange(c, h.now())
	if err != nil {
		return fail(err)
	}

	report, err := h.reportService.Customer(ctx, scope, r)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, report)
}

// EmployeeReport godoc
// @Summary Employee footfall report
// @Tags reports
// @Produce json
// @Param storeID path string true "Store ID or all"
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day, inclusive (YYYY-MM-DD)"
// @Success 200 {object} service.EmployeeReport
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /stores/{storeID}/reports/employee [get]
func (h *ReportHandler) EmployeeReport(c echo.Context) error {
	ctx := c.Request().Context()
	scope, err := h.storeService.Scope(ctx, c.Param("storeID"))
	if err != nil {
		return fail(err)
	}
	r, err := parseRange(c, h.now())
	if err != nil {
		return fail(err)
	}

	report, err := h.reportService.Employee(ctx, scope, r)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, report)
}

// ExportReport godoc
// @Summary Download footfall pivots as an xlsx workbook
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param storeID path string true "Store ID or all"
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day, inclusive (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /stores/{storeID}/reports/export.xlsx [get]
func (h *ReportHandler) ExportReport(c echo.Context) error {
	ctx := c.Request().Context()
	scope, err := h.storeService.Scope(ctx, c.Param("storeID"))
	if err != nil {
		return fail(err)
	}
	r, err := parseRange(c, h.now())
	if err != nil {
		return fail(err)
	}

	// Buffer so a failed export still gets a JSON error response.
	var buf bytes.Buffer
	if err := h.reportService.Export(ctx, scope, r, &buf); err != nil {
		return fail(err)
	}

	name := fmt.Sprintf("footfall_%s_%s_%s.xlsx", scope.Key(), aggregate.FormatDate(r.From), aggregate.FormatDate(r.To))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

// TimeLog godoc
// @Summary Average employee login and logout times per day
// @Tags reports
// @Produce json
// @Success 200 {array} model.EmployeeTimeLog
// @Failure 500 {object} errors.ErrorResponse
// @Router /reports/time-log [get]
func (h *ReportHandler) TimeLog(c echo.Context) error {
	rows, err := h.reportService.TimeLog(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, rows)
}
