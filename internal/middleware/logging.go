package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestLogger logs every request with method, path, status, duration and
// the caller's user id when one was resolved.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// Let the error handler set the final status before logging.
				c.Error(err)
			}

			attrs := []any{
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if caller := Caller(c); caller != nil {
				attrs = append(attrs, "user_id", caller.ID)
			}

			if err != nil {
				attrs = append(attrs, "error", err)
				slog.Warn("request failed", attrs...)
			} else {
				slog.Info("request completed", attrs...)
			}

			return nil
		}
	}
}
