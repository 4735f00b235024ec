package rest_feeds

import (
	"feedhub/di"

	"github.com/labstack/echo/v4"
)

func RegisterFeedRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	feeds := v1.Group("/feeds")
	feeds.POST("", RestHandleRegisterFeed(container))
	feeds.GET("", RestHandleListFeeds(container))
	feeds.GET("/items", RestHandleListFeedItems(container))
	feeds.GET("/:id/items", RestHandleListItemsForFeed(container))
	feeds.POST("/process", RestHandleProcessFeeds(container))
	feeds.POST("/:id/process", RestHandleProcessFeed(container))
}
