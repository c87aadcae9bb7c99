package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storewatch/internal/errors"
	"storewatch/internal/importer"
	"storewatch/internal/service"
)

// ImportHandler loads footfall workbooks uploaded by admins.
type ImportHandler struct {
	importService service.ImportService
}

// NewImportHandler creates a new import handler.
func NewImportHandler(importService service.ImportService) *ImportHandler {
	return &ImportHandler{importService: importService}
}

// ImportWorkbook godoc
// @Summary Import footfall and violation rows from an xlsx workbook (admin only)
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Workbook with customer_footfall, employee_footfall and critical_violations sheets"
// @Success 201 {object} service.ImportResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /import [post]
func (h *ImportHandler) ImportWorkbook(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: "file is required", Code: "INVALID_REQUEST"})
	}
	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: "cannot read upload", Code: "INVALID_REQUEST"})
	}
	defer src.Close()

	batch, err := importer.Read(src)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: err.Error(), Code: "INVALID_WORKBOOK"})
	}

	res, err := h.importService.Import(c.Request().Context(), batch)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, res)
}
