package rest_feeds

import (
	"net/http"

	"feedhub/di"

	"github.com/labstack/echo/v4"
)

func RestHandleRegisterFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		ownerID, err := ownerFrom(c)
		if err != nil {
			return err
		}

		var req RegisterFeedRequest
		if err := c.Bind(&req); err != nil {
			return HandleValidationError(c, "Invalid request format", "body", nil)
		}

		feed, err := container.RegisterFeedUsecase.Execute(c.Request().Context(), ownerID, req.Name, req.URL)
		if err != nil {
			return HandleError(c, err, "register_feed")
		}

		return c.JSON(http.StatusCreated, toFeedResponse(feed))
	}
}
