package middleware

import (
	"context"

	"feedhub/utils/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const HeaderRequestID = "X-Request-ID"

func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(HeaderRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			c.Response().Header().Set(HeaderRequestID, requestID)

			ctx := context.WithValue(c.Request().Context(), logger.RequestIDKey, requestID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
