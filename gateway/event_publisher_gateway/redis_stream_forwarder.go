package event_publisher_gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"feedhub/domain"
	"feedhub/driver/redis_stream"
	"feedhub/utils/logger"

	"github.com/google/uuid"
)

const (
	ForwarderName = "redis-stream"
	eventSource   = "feedhub"
)

type streamPublisher interface {
	Publish(ctx context.Context, stream string, msg *redis_stream.StreamMessage) (string, error)
}

type feedPayload struct {
	FeedID          string     `json:"feed_id"`
	OwnerID         string     `json:"owner_id"`
	Name            string     `json:"name"`
	URL             string     `json:"url"`
	LastProcessedAt *time.Time `json:"last_processed_at,omitempty"`
	ItemsProcessed  *int       `json:"items_processed,omitempty"`
}

// RedisStreamForwarder copies domain events onto a Redis stream for out-of-process consumers.
type RedisStreamForwarder struct {
	publisher streamPublisher
	stream    string
}

func NewRedisStreamForwarder(publisher streamPublisher, stream string) *RedisStreamForwarder {
	return &RedisStreamForwarder{publisher: publisher, stream: stream}
}

// Handle matches event_publisher_port.EventHandler.
func (f *RedisStreamForwarder) Handle(ctx context.Context, event domain.Event) error {
	var payload feedPayload
	switch e := event.(type) {
	case domain.FeedRegistered:
		payload = toFeedPayload(e.Feed)
	case domain.FeedProcessed:
		payload = toFeedPayload(e.Feed)
		n := e.ItemsProcessed
		payload.ItemsProcessed = &n
	default:
		return fmt.Errorf("unsupported event type %q", event.EventType())
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", event.EventType(), err)
	}

	msg := &redis_stream.StreamMessage{
		EventID:   uuid.NewString(),
		EventType: event.EventType(),
		Source:    eventSource,
		CreatedAt: event.OccurredAt(),
		Payload:   body,
		Metadata:  map[string]string{"feed_id": payload.FeedID},
	}

	id, err := f.publisher.Publish(ctx, f.stream, msg)
	if err != nil {
		return err
	}

	logger.Logger.DebugContext(ctx, "Event forwarded to stream",
		"event_type", event.EventType(),
		"stream", f.stream,
		"message_id", id)
	return nil
}

func toFeedPayload(feed domain.Feed) feedPayload {
	return feedPayload{
		FeedID:          feed.ID().String(),
		OwnerID:         feed.OwnerID.String(),
		Name:            feed.Name.String(),
		URL:             feed.URL.String(),
		LastProcessedAt: feed.LastProcessedAt,
	}
}
