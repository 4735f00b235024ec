package middleware

import (
	"log/slog"
	"time"

	"feedhub/utils/logger"

	"github.com/labstack/echo/v4"
)

func LoggingMiddleware(baseLogger *slog.Logger) echo.MiddlewareFunc {
	contextLogger := logger.NewContextLogger(baseLogger)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			// health checks are noise
			if req.URL.Path == "/v1/health" || req.URL.Path == "/metrics" {
				return next(c)
			}

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			ctx := c.Request().Context()
			status := c.Response().Status
			attrs := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"response_size", c.Response().Size,
			}

			log := contextLogger.WithContext(ctx)
			switch {
			case status >= 500:
				log.ErrorContext(ctx, "request completed", attrs...)
			case status >= 400:
				log.WarnContext(ctx, "request completed", attrs...)
			default:
				log.InfoContext(ctx, "request completed", attrs...)
			}

			return nil
		}
	}
}
