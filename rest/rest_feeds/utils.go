package rest_feeds

import (
	"net/http"
	"strconv"

	"feedhub/domain"
	"feedhub/middleware"
	"feedhub/utils/errors"
	"feedhub/utils/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HandleError classifies err and writes the JSON error body. Causes are logged, never returned.
func HandleError(c echo.Context, err error, operation string) error {
	classified := errors.FromDomainError(err, "rest", "FeedHandler", operation)
	enrichedErr := errors.EnrichWithContext(classified, "rest", "FeedHandler", operation, map[string]any{
		"path":       c.Request().URL.Path,
		"method":     c.Request().Method,
		"request_id": c.Response().Header().Get(middleware.HeaderRequestID),
	})

	ctx := c.Request().Context()
	status := enrichedErr.HTTPStatusCode()
	if status >= http.StatusInternalServerError {
		logger.Logger.ErrorContext(ctx, "REST API Error",
			"error", enrichedErr.Error(),
			"code", enrichedErr.Code,
			"operation", operation,
			"path", c.Request().URL.Path)
	} else {
		logger.Logger.WarnContext(ctx, "REST API request rejected",
			"error", enrichedErr.Error(),
			"code", enrichedErr.Code,
			"operation", operation,
			"path", c.Request().URL.Path)
	}

	return c.JSON(status, enrichedErr.ToHTTPResponse())
}

func HandleValidationError(c echo.Context, message, field string, value any) error {
	logger.Logger.WarnContext(c.Request().Context(), "Validation error", "message", message, "field", field, "value", value)
	return c.JSON(http.StatusBadRequest, map[string]any{
		"error":   "error",
		"code":    errors.CodeValidation,
		"message": message,
		"context": map[string]any{"field": field},
	})
}

func ownerFrom(c echo.Context) (uuid.UUID, error) {
	ownerID, err := domain.GetOwnerID(c.Request().Context())
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return ownerID, nil
}

func feedIDParam(c echo.Context) (uuid.UUID, bool) {
	feedID, err := uuid.Parse(c.Param("id"))
	if err != nil || feedID == uuid.Nil {
		return uuid.Nil, false
	}
	return feedID, true
}

// syncParam reads ?sync=; absent means async.
func syncParam(c echo.Context) (bool, bool) {
	raw := c.QueryParam("sync")
	if raw == "" {
		return false, true
	}
	sync, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return sync, true
}
