package rest

import (
	"net/http"
	"time"

	"feedhub/di"
	"feedhub/domain"
	"feedhub/rest/rest_feeds"
	"feedhub/usecase/dashboard_usecase"

	"github.com/labstack/echo/v4"
)

type DashboardStatsResponse struct {
	FeedsCount      int        `json:"feeds_count"`
	FeedItemsCount  int        `json:"feed_items_count"`
	LastProcessedAt *time.Time `json:"last_processed_at"`
	LatestFeedName  string     `json:"latest_feed_name"`
}

func registerDashboardRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.GET("/dashboard/stats", handleGetStats(container.DashboardUsecase))
}

func handleGetStats(usecase *dashboard_usecase.DashboardUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		ownerID, err := domain.GetOwnerID(c.Request().Context())
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
		}

		stats, err := usecase.Execute(c.Request().Context(), ownerID)
		if err != nil {
			return rest_feeds.HandleError(c, err, "dashboard_stats")
		}

		return c.JSON(http.StatusOK, DashboardStatsResponse{
			FeedsCount:      stats.FeedsCount,
			FeedItemsCount:  stats.FeedItemsCount,
			LastProcessedAt: stats.LastProcessedAt,
			LatestFeedName:  stats.LatestFeedName,
		})
	}
}
