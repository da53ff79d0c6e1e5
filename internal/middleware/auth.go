package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

const adminKeyHeader = "x-admin-key"

// AdminAuth gates administrative mutations behind a shared-secret header.
// The comparison is constant-time so the key cannot be probed byte by byte.
func AdminAuth(adminKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			supplied := c.Request().Header.Get(adminKeyHeader)
			if subtle.ConstantTimeCompare([]byte(supplied), []byte(adminKey)) != 1 {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}
			return next(c)
		}
	}
}
