package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"storewatch/internal/errors"
	"storewatch/internal/model"
	"storewatch/internal/service"
)

// SettingsHandler handles per-store detector settings.
type SettingsHandler struct {
	storeService    service.StoreService
	settingsService service.SettingsService
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(storeService service.StoreService, settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{storeService: storeService, settingsService: settingsService}
}

// singleStore resolves :storeID and rejects the all-stores scope.
func (h *SettingsHandler) singleStore(ctx context.Context, param string) (uint, error) {
	scope, err := h.storeService.Scope(ctx, param)
	if err != nil {
		return 0, err
	}
	if scope.All {
		return 0, errors.ErrInvalidStore
	}
	return scope.StoreID, nil
}

// GetSettings godoc
// @Summary Detector settings of a store
// @Tags settings
// @Produce json
// @Param storeID path int true "Store ID"
// @Success 200 {object} model.StoreSettings
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /stores/{storeID}/settings [get]
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	ctx := c.Request().Context()
	storeID, err := h.singleStore(ctx, c.Param("storeID"))
	if err != nil {
		return fail(err)
	}

	settings, err := h.settingsService.Get(ctx, storeID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, settings)
}

// UpdateSettings godoc
// @Summary Replace the detector settings of a store (admin only)
// @Tags settings
// @Accept json
// @Produce json
// @Param storeID path int true "Store ID"
// @Param request body model.SettingsData true "Settings"
// @Success 200 {object} model.StoreSettings
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /stores/{storeID}/settings [put]
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	ctx := c.Request().Context()
	storeID, err := h.singleStore(ctx, c.Param("storeID"))
	if err != nil {
		return fail(err)
	}

	var req model.SettingsData
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid request body", Code: "INVALID_REQUEST"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: err.Error(), Code: "INVALID_SETTINGS"})
	}

	settings, err := h.settingsService.Update(ctx, storeID, req)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, settings)
}
