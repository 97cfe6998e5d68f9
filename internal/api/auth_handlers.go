package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"expenses/internal/auth"
	"expenses/internal/middleware"
	"expenses/internal/service"
)

// AuthHandler exposes registration, login and token refresh over HTTP.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register creates a new user account --> POST /auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	raw, err := bindBody(c)
	if err != nil {
		return err
	}

	user, err := h.auth.Register(c.Request().Context(), raw)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, user)
}

// Login verifies credentials and issues tokens --> POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	raw, err := bindBody(c)
	if err != nil {
		return err
	}

	pair, err := h.auth.Login(c.Request().Context(), raw)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, pair)
}

// Refresh mints a new access token from a refresh token --> POST /auth/refresh
func (h *AuthHandler) Refresh(c echo.Context) error {
	claims := middleware.Claims(c)
	if claims == nil {
		return auth.ErrMissingToken
	}

	token, err := h.auth.Refresh(c.Request().Context(), claims)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"access_token": token})
}
