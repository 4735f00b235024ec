package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"feedhub/config"
	"feedhub/di"
	"feedhub/driver/feed_db"
	"feedhub/rest"
	"feedhub/utils/logger"

	"github.com/labstack/echo/v4"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		logger.Logger.Error("feedhub exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	logger.InitLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.InitLoggerWithConfig(cfg.Logging.Level, cfg.Logging.Format)
	logger.Logger.Info("Starting server", "port", cfg.Server.Port)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := feed_db.InitDBPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if err := feed_db.NewFeedDBRepository(pool).EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	stream, err := di.OpenEventStream(ctx, cfg.Events)
	if err != nil {
		return err
	}
	if stream != nil {
		defer stream.Close()
	}

	container := di.NewApplicationComponents(cfg, pool, stream)
	container.Start(ctx, true)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout
	rest.RegisterRoutes(e, container, cfg)

	serverErr := make(chan error, 1)
	go func() {
		if err := e.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Logger.Info("Shutdown signal received")
	case err := <-serverErr:
		stop()
		container.Shutdown()
		return fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error("HTTP server shutdown failed", "error", err)
	}
	container.Shutdown()

	logger.Logger.Info("Server stopped")
	return nil
}
