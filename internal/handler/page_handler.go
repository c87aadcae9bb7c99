package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storewatch/internal/auth"
	"storewatch/internal/model"
)

// PageResponse is what a guarded page needs to render its shell.
type PageResponse struct {
	Page string          `json:"page"`
	User *model.Identity `json:"user"`
}

// PageHandler serves the guarded /admin and /dashboard pages.
type PageHandler struct{}

// NewPageHandler creates a new page handler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Page returns the shell payload for the requested path. The route guard
// has already put the identity on the context.
func (h *PageHandler) Page(c echo.Context) error {
	id, _ := auth.SessionFrom(c)
	return c.JSON(http.StatusOK, PageResponse{Page: c.Request().URL.Path, User: id})
}
