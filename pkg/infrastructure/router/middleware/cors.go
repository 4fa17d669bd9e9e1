package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Values sent on every response, whatever the request origin.
const (
	AllowOrigin  = "*"
	AllowMethods = "POST, GET, OPTIONS, PATCH, PUT, DELETE"
	AllowHeaders = "Content-Type"
)

// CORS annotates every response with the permissive CORS headers and answers
// preflight requests itself, for any path.
func CORS() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set(echo.HeaderAccessControlAllowOrigin, AllowOrigin)
			h.Set(echo.HeaderAccessControlAllowMethods, AllowMethods)
			h.Set(echo.HeaderAccessControlAllowHeaders, AllowHeaders)

			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusOK)
			}
			return next(c)
		}
	}
}
