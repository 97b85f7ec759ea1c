package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/assettrack/asset-track-api/internal/domain"
	"github.com/assettrack/asset-track-api/internal/service"
	"github.com/assettrack/asset-track-api/internal/util"
)

const (
	sessionCookieName   = "asset_session"
	contextPrincipalKey = "auth.principal"
)

// RequireSession resolves the session cookie to a principal and rejects
// the request with 401 when the cookie is absent, unknown, or expired.
// A store failure is not an authentication verdict and answers 500.
func RequireSession(auth *service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := sessionToken(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, util.Error("Unauthorized"))
			}
			principal, err := auth.Resolve(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, service.ErrUnauthenticated) {
					return c.JSON(http.StatusUnauthorized, util.Error("Unauthorized"))
				}
				c.Logger().Errorf("resolve session: %v", err)
				return c.JSON(http.StatusInternalServerError, util.Error("Internal server error"))
			}
			c.Set(contextPrincipalKey, principal)
			return next(c)
		}
	}
}

func CurrentPrincipal(c echo.Context) (domain.Principal, bool) {
	principal, ok := c.Get(contextPrincipalKey).(domain.Principal)
	return principal, ok
}

func sessionToken(c echo.Context) string {
	cookie, err := c.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func setSessionCookie(c echo.Context, token string, expiresAt time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
