package logger

import (
	"context"
	"log/slog"
)

var contextKeys = []ContextKey{RequestIDKey, UserIDKey, OperationKey, FeedIDKey}

// ContextHandler copies the request, user, operation and feed tags stored on
// the context onto every record handled with that context.
type ContextHandler struct {
	inner slog.Handler
	bound map[string]struct{}
}

func NewContextHandler(inner slog.Handler) *ContextHandler {
	return &ContextHandler{inner: inner, bound: map[string]struct{}{}}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle skips keys the caller already set on the record or bound through With.
func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx == nil {
		return h.inner.Handle(ctx, r)
	}

	present := make(map[string]struct{}, r.NumAttrs())
	r.Attrs(func(a slog.Attr) bool {
		present[a.Key] = struct{}{}
		return true
	})

	for _, key := range contextKeys {
		name := string(key)
		if _, ok := h.bound[name]; ok {
			continue
		}
		if _, ok := present[name]; ok {
			continue
		}
		if value, ok := ctx.Value(key).(string); ok && value != "" {
			r.AddAttrs(slog.String(name, value))
		}
	}
	return h.inner.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	bound := make(map[string]struct{}, len(h.bound)+len(attrs))
	for key := range h.bound {
		bound[key] = struct{}{}
	}
	for _, attr := range attrs {
		bound[attr.Key] = struct{}{}
	}
	return &ContextHandler{inner: h.inner.WithAttrs(attrs), bound: bound}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{inner: h.inner.WithGroup(name), bound: h.bound}
}
