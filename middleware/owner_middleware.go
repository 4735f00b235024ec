package middleware

import (
	"context"
	"net/http"
	"strings"

	"feedhub/domain"
	"feedhub/utils/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderUserID carries the authenticated owner, set by the auth proxy in front of the service.
const HeaderUserID = "X-User-ID"

// OwnerMiddleware rejects requests without a valid owner id and stores it in the request context.
func OwnerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimSpace(c.Request().Header.Get(HeaderUserID))
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing "+HeaderUserID+" header")
			}

			ownerID, err := uuid.Parse(raw)
			if err != nil || ownerID == uuid.Nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid "+HeaderUserID+" header")
			}

			ctx := domain.SetOwnerID(c.Request().Context(), ownerID)
			ctx = context.WithValue(ctx, logger.UserIDKey, ownerID.String())
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
