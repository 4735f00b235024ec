package rest

import (
	"feedhub/config"
	"feedhub/di"
	middleware_custom "feedhub/middleware"
	"feedhub/rest/rest_feeds"
	"feedhub/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	e.Use(middleware_custom.RequestIDMiddleware())
	e.Use(middleware.Recover())
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
	}))
	e.Use(middleware.BodyLimit("1M"))
	e.Use(middleware.ContextTimeout(cfg.Server.WriteTimeout))
	e.Use(middleware_custom.LoggingMiddleware(logger.Logger))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/v1")
	registerHealthRoutes(v1, container)

	owned := v1.Group("", middleware_custom.OwnerMiddleware())
	rest_feeds.RegisterFeedRoutes(owned, container)
	registerDashboardRoutes(owned, container)
}
