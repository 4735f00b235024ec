package rest

import (
	"net/http"

	"feedhub/di"
	"feedhub/job"
	"feedhub/utils/logger"

	"github.com/labstack/echo/v4"
)

type HealthResponse struct {
	Status   string          `json:"status"`
	Database string          `json:"database,omitempty"`
	Jobs     []job.JobStatus `json:"jobs,omitempty"`
}

func registerHealthRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.GET("/health", func(c echo.Context) error {
		resp := HealthResponse{Status: "healthy"}
		if container.Scheduler != nil {
			resp.Jobs = container.Scheduler.Status()
		}
		if container.FeedDBRepository != nil {
			if err := container.FeedDBRepository.Ping(c.Request().Context()); err != nil {
				logger.Logger.ErrorContext(c.Request().Context(), "Health check failed", "error", err)
				resp.Status, resp.Database = "unhealthy", "unreachable"
				return c.JSON(http.StatusServiceUnavailable, resp)
			}
		}
		return c.JSON(http.StatusOK, resp)
	})
}
