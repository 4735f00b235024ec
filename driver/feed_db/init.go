package feed_db

import (
	"context"
	_ "embed"
	"fmt"

	"feedhub/config"
	"feedhub/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

// InitDBPool opens and pings a connection pool.
func InitDBPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.MaxConns)
	poolConfig.MinConns = int32(cfg.MinConns)
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Failed to connect to database", "error", err)
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		logger.Logger.ErrorContext(ctx, "Failed to ping database", "error", err)
		return nil, err
	}

	logger.Logger.InfoContext(ctx, "Connected to database", "host", cfg.Host, "database", cfg.Name)

	return pool, nil
}

// EnsureSchema creates the feeds and feed_items tables when they are missing.
func (r *FeedDBRepository) EnsureSchema(ctx context.Context) error {
	if r == nil || r.pool == nil {
		return ErrNilPool
	}

	if _, err := r.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
