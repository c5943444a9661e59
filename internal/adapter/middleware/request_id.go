package middleware

import (
	"zoo-procure-hub/internal/infrastructure/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestID keeps the caller's X-Request-ID or mints one, and echoes it back.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			id := req.Header.Get(logger.RequestIDKey)
			if id == "" {
				id = uuid.NewString()
				req.Header.Set(logger.RequestIDKey, id)
			}
			c.Response().Header().Set(logger.RequestIDKey, id)
			c.Set(logger.RequestIDKey, id)
			return next(c)
		}
	}
}
