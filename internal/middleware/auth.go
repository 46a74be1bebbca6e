package middleware

import (
	"net/http"
	"strings"

	"plateforge/internal/service"

	"github.com/labstack/echo/v4"
)

// AdminAuth guards the /api/admin routes with a bearer token issued by the
// login endpoint.
func AdminAuth(auth service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}
			if err := auth.Verify(strings.TrimPrefix(header, prefix)); err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}
			return next(c)
		}
	}
}
