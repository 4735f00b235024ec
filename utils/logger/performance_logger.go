package logger

import (
	"context"
	"log/slog"
	"time"
)

type PerformanceLogger struct {
	contextLogger *ContextLogger
}

type Timer struct {
	ctx        context.Context
	operation  string
	startTime  time.Time
	perfLogger *PerformanceLogger
}

func NewPerformanceLogger(logger *slog.Logger) *PerformanceLogger {
	return &PerformanceLogger{
		contextLogger: NewContextLogger(logger),
	}
}

// StartTimer creates a new timer for measuring operation performance
func (pl *PerformanceLogger) StartTimer(ctx context.Context, operation string) *Timer {
	return &Timer{
		ctx:        ctx,
		operation:  operation,
		startTime:  time.Now(),
		perfLogger: pl,
	}
}

// End logs the duration and returns it.
func (t *Timer) End() time.Duration {
	duration := time.Since(t.startTime)
	t.perfLogger.contextLogger.LogDuration(t.ctx, t.operation, duration)
	return duration
}

// EndWithError logs the failure together with the elapsed time.
func (t *Timer) EndWithError(err error) time.Duration {
	duration := time.Since(t.startTime)
	t.perfLogger.contextLogger.WithContext(t.ctx).ErrorContext(t.ctx, "operation failed",
		"operation", t.operation,
		"duration_ms", duration.Milliseconds(),
		"error", err,
	)
	return duration
}

func (pl *PerformanceLogger) LogSlowOperation(ctx context.Context, operation string, duration, threshold time.Duration) {
	if duration > threshold {
		pl.contextLogger.WithContext(ctx).WarnContext(ctx, "slow operation detected",
			"operation", operation,
			"duration_ms", duration.Milliseconds(),
			"threshold_ms", threshold.Milliseconds(),
		)
	}
}
