package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"storewatch/internal/auth"
	apperrors "storewatch/internal/errors"
	"storewatch/internal/model"
	"storewatch/internal/service"
)

// AuthHandler handles sign-in, sign-out and session reads.
type AuthHandler struct {
	authService service.AuthService
	sessions    *auth.SessionStore
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, sessions *auth.SessionStore) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// SignInRequest represents a sign-in request.
type SignInRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is the login form contract.
type AuthResponse struct {
	Success bool            `json:"success"`
	User    *model.Identity `json:"user,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// SignIn godoc
// @Summary Sign in and receive a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignInRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} AuthResponse
// @Failure 401 {object} AuthResponse
// @Failure 500 {object} AuthResponse
// @Router /auth/signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, AuthResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, AuthResponse{Error: "email and password are required"})
	}

	id, err := h.authService.Verify(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		msg := apperrors.ErrAuthFailed.Error()
		if errors.Is(err, apperrors.ErrUserNotFound) || errors.Is(err, apperrors.ErrInvalidPassword) {
			msg = err.Error()
		}
		return c.JSON(http.StatusUnauthorized, AuthResponse{Error: msg})
	}

	if _, err := h.sessions.Create(c, *id); err != nil {
		return c.JSON(http.StatusInternalServerError, AuthResponse{Error: apperrors.ErrAuthFailed.Error()})
	}
	return c.JSON(http.StatusOK, AuthResponse{Success: true, User: id})
}

// SignOut godoc
// @Summary Sign out and clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} AuthResponse
// @Failure 500 {object} AuthResponse
// @Router /auth/signout [post]
func (h *AuthHandler) SignOut(c echo.Context) error {
	if token, ok := h.sessions.Token(c); ok {
		if err := h.authService.Revoke(c.Request().Context(), token); err != nil {
			return c.JSON(http.StatusInternalServerError, AuthResponse{Error: "failed to sign out"})
		}
	}
	h.sessions.Destroy(c)
	return c.JSON(http.StatusOK, AuthResponse{Success: true})
}

// Session godoc
// @Summary Current session identity
// @Description Returns null when there is no valid session.
// @Tags auth
// @Produce json
// @Success 200 {object} model.Identity
// @Router /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	token, ok := h.sessions.Token(c)
	if !ok {
		return c.JSON(http.StatusOK, nil)
	}
	id, err := h.sessions.Codec().Decode(token)
	if err != nil || h.authService.IsRevoked(c.Request().Context(), token) {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, id)
}
