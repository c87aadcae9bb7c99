package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storewatch/internal/errors"
	"storewatch/internal/model"
	"storewatch/internal/service"
)

// StoreHandler handles store and center endpoints.
type StoreHandler struct {
	storeService service.StoreService
}

// NewStoreHandler creates a new store handler.
func NewStoreHandler(storeService service.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// CreateStoreRequest represents a store creation request.
type CreateStoreRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	CenterID uint   `json:"center_id" validate:"required"`
}

// CreateCenterRequest represents a center creation request.
type CreateCenterRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Location string `json:"location" validate:"max=255"`
}

// ListStores godoc
// @Summary List stores with their centers
// @Tags stores
// @Produce json
// @Success 200 {array} model.StoreView
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /stores [get]
func (h *StoreHandler) ListStores(c echo.Context) error {
	views, err := h.storeService.List(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, views)
}

// ListCenters godoc
// @Summary List shopping centers
// @Tags stores
// @Produce json
// @Success 200 {array} model.Center
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /centers [get]
func (h *StoreHandler) ListCenters(c echo.Context) error {
	centers, err := h.storeService.Centers(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, centers)
}

// CreateStore godoc
// @Summary Create a store (admin only)
// @Tags stores
// @Accept json
// @Produce json
// @Param request body CreateStoreRequest true "Store"
// @Success 201 {object} model.StoreView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /stores [post]
func (h *StoreHandler) CreateStore(c echo.Context) error {
	var req CreateStoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid request body", Code: "INVALID_REQUEST"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: err.Error(), Code: "INVALID_REQUEST"})
	}

	view, err := h.storeService.Create(c.Request().Context(), &model.Store{Name: req.Name, CenterID: req.CenterID})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, view)
}

// CreateCenter godoc
// @Summary Create a shopping center (admin only)
// @Tags stores
// @Accept json
// @Produce json
// @Param request body CreateCenterRequest true "Center"
// @Success 201 {object} model.Center
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /centers [post]
func (h *StoreHandler) CreateCenter(c echo.Context) error {
	var req CreateCenterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid request body", Code: "INVALID_REQUEST"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: err.Error(), Code: "INVALID_REQUEST"})
	}

	center := &model.Center{Name: req.Name, Location: req.Location}
	if err := h.storeService.CreateCenter(c.Request().Context(), center); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, center)
}
