// Package redis_stream publishes domain events to Redis Streams.
package redis_stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const createdAtLayout = "2006-01-02T15:04:05.000Z07:00"

// StreamMessage is the wire shape of one stream entry.
type StreamMessage struct {
	ID        string
	EventID   string
	EventType string
	Source    string
	CreatedAt time.Time
	Payload   []byte
	Metadata  map[string]string
}

type RedisStreamDriver struct {
	client *redis.Client
	maxLen int64
}

func NewRedisStreamDriver(client *redis.Client, maxLen int64) *RedisStreamDriver {
	return &RedisStreamDriver{client: client, maxLen: maxLen}
}

func NewRedisStreamDriverWithURL(url string, maxLen int64) (*RedisStreamDriver, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return NewRedisStreamDriver(redis.NewClient(opts), maxLen), nil
}

func (d *RedisStreamDriver) Close() error {
	return d.client.Close()
}

func (d *RedisStreamDriver) Ping(ctx context.Context) error {
	return d.client.Ping(ctx).Err()
}

// Publish appends msg to stream and returns the entry id. The stream is trimmed approximately to maxLen when set.
func (d *RedisStreamDriver) Publish(ctx context.Context, stream string, msg *StreamMessage) (string, error) {
	if msg == nil {
		return "", errors.New("message is nil")
	}

	args := &redis.XAddArgs{
		Stream: stream,
		Values: messageToValues(msg),
	}
	if d.maxLen > 0 {
		args.MaxLen = d.maxLen
		args.Approx = true
	}

	id, err := d.client.XAdd(ctx, args).Result()
	if err != nil {
		return "", fmt.Errorf("xadd %s: %w", stream, err)
	}
	return id, nil
}

// Latest returns up to count most recent entries, newest first.
func (d *RedisStreamDriver) Latest(ctx context.Context, stream string, count int64) ([]StreamMessage, error) {
	entries, err := d.client.XRevRangeN(ctx, stream, "+", "-", count).Result()
	if err != nil {
		return nil, fmt.Errorf("xrevrange %s: %w", stream, err)
	}

	messages := make([]StreamMessage, 0, len(entries))
	for _, entry := range entries {
		messages = append(messages, valuesToMessage(entry))
	}
	return messages, nil
}

func messageToValues(msg *StreamMessage) map[string]any {
	values := map[string]any{
		"event_id":   msg.EventID,
		"event_type": msg.EventType,
		"source":     msg.Source,
		"created_at": msg.CreatedAt.Format(createdAtLayout),
	}

	if len(msg.Payload) > 0 {
		values["payload"] = string(msg.Payload)
	}

	if len(msg.Metadata) > 0 {
		metadataJSON, _ := json.Marshal(msg.Metadata)
		values["metadata"] = string(metadataJSON)
	}

	return values
}

func valuesToMessage(entry redis.XMessage) StreamMessage {
	msg := StreamMessage{ID: entry.ID}

	if v, ok := entry.Values["event_id"].(string); ok {
		msg.EventID = v
	}
	if v, ok := entry.Values["event_type"].(string); ok {
		msg.EventType = v
	}
	if v, ok := entry.Values["source"].(string); ok {
		msg.Source = v
	}
	if v, ok := entry.Values["created_at"].(string); ok {
		if t, err := time.Parse(createdAtLayout, v); err == nil {
			msg.CreatedAt = t
		}
	}
	if v, ok := entry.Values["payload"].(string); ok {
		msg.Payload = []byte(v)
	}
	if v, ok := entry.Values["metadata"].(string); ok {
		_ = json.Unmarshal([]byte(v), &msg.Metadata)
	}

	return msg
}
