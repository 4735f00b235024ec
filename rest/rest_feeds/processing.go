package rest_feeds

import (
	"net/http"

	"feedhub/di"

	"github.com/labstack/echo/v4"
)

// RestHandleProcessFeeds triggers ingestion of the caller's feeds. With sync=true the
// request waits for every run; otherwise feeds are queued and the response returns at once.
func RestHandleProcessFeeds(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		ownerID, err := ownerFrom(c)
		if err != nil {
			return err
		}
		sync, ok := syncParam(c)
		if !ok {
			return HandleValidationError(c, "sync must be true or false", "sync", c.QueryParam("sync"))
		}

		report, err := container.ProcessFeedsUsecase.ProcessOwner(c.Request().Context(), ownerID, sync)
		if err != nil {
			return HandleError(c, err, "process_feeds")
		}
		return c.JSON(processStatus(sync), toProcessReportResponse(report, "process_feeds"))
	}
}

func RestHandleProcessFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		ownerID, err := ownerFrom(c)
		if err != nil {
			return err
		}
		feedID, ok := feedIDParam(c)
		if !ok {
			return HandleValidationError(c, "Feed id must be a UUID", "id", c.Param("id"))
		}
		sync, ok := syncParam(c)
		if !ok {
			return HandleValidationError(c, "sync must be true or false", "sync", c.QueryParam("sync"))
		}

		report, err := container.ProcessFeedsUsecase.ProcessFeed(c.Request().Context(), feedID, ownerID, sync)
		if err != nil {
			return HandleError(c, err, "process_feed")
		}
		return c.JSON(processStatus(sync), toProcessReportResponse(report, "process_feed"))
	}
}

func processStatus(sync bool) int {
	if sync {
		return http.StatusOK
	}
	return http.StatusAccepted
}
