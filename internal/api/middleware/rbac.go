package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cinerate/rating-system/internal/api/flash"
	"github.com/cinerate/rating-system/internal/api/metrics"
	"github.com/cinerate/rating-system/internal/core/domain"
)

// RequireRole gates a route on an exact role match. Roles are mutually
// exclusive: an authenticated viewer is denied on admin routes exactly
// like an anonymous caller. A denial flashes a warning and redirects home
// rather than failing the request.
func RequireRole(required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if role != string(required) {
				metrics.AccessDeniedTotal.WithLabelValues(string(required)).Inc()
				flash.Set(c, flash.Danger, "Access denied.")
				return c.Redirect(http.StatusSeeOther, "/")
			}
			return next(c)
		}
	}
}
