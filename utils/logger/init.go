package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var Logger *slog.Logger

// InitLogger installs a text logger at info level. Tests and tools call this.
func InitLogger() *slog.Logger {
	return InitLoggerWithConfig("info", "text")
}

// InitLoggerWithConfig installs the process-wide logger from LOG_LEVEL / LOG_FORMAT values.
func InitLoggerWithConfig(level, format string) *slog.Logger {
	Logger = slog.New(NewHandler(os.Stdout, level, format))
	slog.SetDefault(Logger)

	Logger.Info("Logger initialized", "level", level, "format", format)

	return Logger
}

// NewHandler builds a text or JSON handler that also emits the context tags.
func NewHandler(w io.Writer, level, format string) slog.Handler {
	options := &slog.HandlerOptions{Level: ParseLevel(level)}
	if strings.EqualFold(format, "json") {
		return NewContextHandler(slog.NewJSONHandler(w, options))
	}
	return NewContextHandler(slog.NewTextHandler(w, options))
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
