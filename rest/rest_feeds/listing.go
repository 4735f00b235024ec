package rest_feeds

import (
	"net/http"

	"feedhub/di"

	"github.com/labstack/echo/v4"
)

func RestHandleListFeeds(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		ownerID, err := ownerFrom(c)
		if err != nil {
			return err
		}

		feeds, err := container.ListFeedsUsecase.Execute(c.Request().Context(), ownerID)
		if err != nil {
			return HandleError(c, err, "list_feeds")
		}
		return c.JSON(http.StatusOK, toFeedResponses(feeds))
	}
}

func RestHandleListFeedItems(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		ownerID, err := ownerFrom(c)
		if err != nil {
			return err
		}

		items, err := container.ListFeedItemsUsecase.Execute(c.Request().Context(), ownerID)
		if err != nil {
			return HandleError(c, err, "list_feed_items")
		}
		return c.JSON(http.StatusOK, toFeedItemResponses(items))
	}
}

func RestHandleListItemsForFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		ownerID, err := ownerFrom(c)
		if err != nil {
			return err
		}
		feedID, ok := feedIDParam(c)
		if !ok {
			return HandleValidationError(c, "Feed id must be a UUID", "id", c.Param("id"))
		}

		items, err := container.ListFeedItemsUsecase.ExecuteForFeed(c.Request().Context(), feedID, ownerID)
		if err != nil {
			return HandleError(c, err, "list_items_for_feed")
		}
		return c.JSON(http.StatusOK, toFeedItemResponses(items))
	}
}
