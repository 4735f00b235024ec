package di

import (
	"context"
	"fmt"

	"feedhub/config"
	"feedhub/driver/redis_stream"
	"feedhub/utils/logger"
)

// StreamMaxLen bounds the event stream; trimming is approximate.
const StreamMaxLen int64 = 10000

// OpenEventStream connects to the Redis event stream. It returns nil, nil when forwarding is disabled.
func OpenEventStream(ctx context.Context, cfg config.EventsConfig) (*redis_stream.RedisStreamDriver, error) {
	if !cfg.RedisEnabled {
		return nil, nil
	}

	stream, err := redis_stream.NewRedisStreamDriverWithURL(cfg.RedisURL, StreamMaxLen)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if err := stream.Ping(ctx); err != nil {
		_ = stream.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	logger.Logger.InfoContext(ctx, "Event stream connected", "stream", cfg.StreamKey)
	return stream, nil
}
