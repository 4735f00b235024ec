package logger

import (
	"context"
	"log/slog"
	"time"
)

type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	UserIDKey    ContextKey = "user_id"
	OperationKey ContextKey = "operation"
	FeedIDKey    ContextKey = "feed_id"
)

type ContextLogger struct {
	logger *slog.Logger
}

func NewContextLogger(logger *slog.Logger) *ContextLogger {
	return &ContextLogger{logger: logger}
}

// WithContext adds context values to log entries
func (cl *ContextLogger) WithContext(ctx context.Context) *slog.Logger {
	args := make([]any, 0, 8)

	for _, key := range []ContextKey{RequestIDKey, UserIDKey, OperationKey, FeedIDKey} {
		if value, ok := ctx.Value(key).(string); ok && value != "" {
			args = append(args, string(key), value)
		}
	}

	return cl.logger.With(args...)
}

// WithFeedID tags the context so every log line of an ingestion run carries the feed id.
func WithFeedID(ctx context.Context, feedID string) context.Context {
	return context.WithValue(ctx, FeedIDKey, feedID)
}

func WithOperation(ctx context.Context, operation string) context.Context {
	return context.WithValue(ctx, OperationKey, operation)
}

func (cl *ContextLogger) LogDuration(ctx context.Context, operation string, duration time.Duration) {
	cl.WithContext(ctx).InfoContext(ctx, "operation completed",
		"operation", operation,
		"duration_ms", duration.Milliseconds(),
	)
}

func (cl *ContextLogger) LogError(ctx context.Context, operation string, err error) {
	cl.WithContext(ctx).ErrorContext(ctx, "operation failed",
		"operation", operation,
		"error", err,
	)
}
