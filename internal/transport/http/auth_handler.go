package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/assettrack/asset-track-api/internal/service"
	"github.com/assettrack/asset-track-api/internal/util"
)

type AuthHandler struct {
	auth   *service.AuthService
	resets *service.PasswordResetService
}

func RegisterAuth(e *echo.Echo, auth *service.AuthService, resets *service.PasswordResetService) {
	handler := &AuthHandler{auth: auth, resets: resets}

	e.POST("/api/login", handler.login)
	e.POST("/logout", handler.logout)
	e.GET("/me", handler.me)
	e.POST("/forgot-password", handler.forgotPassword)
	e.POST("/reset-password", handler.resetPassword)
}

func (h *AuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("Username and password required"))
	}
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, util.Error("Username and password required"))
	}

	session, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Deliberately 200: existing clients branch on the success
			// flag, not the status code.
			return c.JSON(http.StatusOK, util.Error("Invalid username or password"))
		}
		c.Logger().Errorf("login: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("Login failed"))
	}

	setSessionCookie(c, session.Token, session.ExpiresAt)
	return c.JSON(http.StatusOK, util.Envelope{
		"success": true,
		"user":    session.Principal(),
	})
}

func (h *AuthHandler) logout(c echo.Context) error {
	if token := sessionToken(c); token != "" {
		if err := h.auth.Logout(c.Request().Context(), token); err != nil {
			c.Logger().Errorf("logout: %v", err)
		}
	}
	clearSessionCookie(c)
	return c.JSON(http.StatusOK, util.Envelope{"success": true})
}

// me reports the current principal; it answers 200 for both states and
// never errors.
func (h *AuthHandler) me(c echo.Context) error {
	principal, err := h.auth.Resolve(c.Request().Context(), sessionToken(c))
	if err != nil {
		if !errors.Is(err, service.ErrUnauthenticated) {
			c.Logger().Errorf("me: %v", err)
		}
		return c.JSON(http.StatusOK, util.Envelope{"loggedIn": false})
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"loggedIn": true,
		"username": principal.Username,
		"role":     principal.Role,
	})
}

func (h *AuthHandler) forgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil || req.Username == "" {
		return c.JSON(http.StatusBadRequest, util.Error("Username is required"))
	}

	err := h.resets.Request(c.Request().Context(), req.Username)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, util.Envelope{"success": true, "message": "Reset link sent to your email."})
	case errors.Is(err, service.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, util.Error("User not found"))
	default:
		c.Logger().Errorf("forgot-password: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("Error sending reset link."))
	}
}

func (h *AuthHandler) resetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil || req.Token == "" || req.NewPassword == "" {
		return c.JSON(http.StatusBadRequest, util.Error("Token and new password required"))
	}

	err := h.resets.Consume(c.Request().Context(), req.Token, req.NewPassword)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, util.Envelope{"success": true, "message": "Password successfully reset"})
	case errors.Is(err, service.ErrInvalidToken):
		return c.JSON(http.StatusBadRequest, util.Error("Invalid or expired token"))
	case errors.Is(err, service.ErrTokenExpired):
		return c.JSON(http.StatusBadRequest, util.Error("Token expired"))
	default:
		c.Logger().Errorf("reset-password: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("Error resetting password"))
	}
}
