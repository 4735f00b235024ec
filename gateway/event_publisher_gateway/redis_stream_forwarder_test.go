package event_publisher_gateway

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"feedhub/domain"
	"feedhub/driver/redis_stream"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testStream = "feedhub:events:test"

func setupForwarder(t *testing.T) (*RedisStreamForwarder, *redis_stream.RedisStreamDriver) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	driver := redis_stream.NewRedisStreamDriver(client, 0)
	t.Cleanup(func() { _ = driver.Close() })
	return NewRedisStreamForwarder(driver, testStream), driver
}

func TestRedisStreamForwarder_FeedProcessed(t *testing.T) {
	forwarder, driver := setupForwarder(t)
	ctx := context.Background()

	feed := newTestFeed(t)
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	feed.MarkProcessed(at)

	require.NoError(t, forwarder.Handle(ctx, domain.FeedProcessed{Feed: feed, ItemsProcessed: 7, At: at}))

	msgs, err := driver.Latest(ctx, testStream, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	msg := msgs[0]
	assert.Equal(t, domain.EventTypeFeedProcessed, msg.EventType)
	assert.Equal(t, "feedhub", msg.Source)
	assert.True(t, msg.CreatedAt.Equal(at))
	_, err = uuid.Parse(msg.EventID)
	assert.NoError(t, err)
	assert.Equal(t, feed.ID().String(), msg.Metadata["feed_id"])

	var payload map[string]any
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))
	assert.Equal(t, feed.ID().String(), payload["feed_id"])
	assert.Equal(t, "https://example.com/rss.xml", payload["url"])
	assert.Equal(t, float64(7), payload["items_processed"])
}

func TestRedisStreamForwarder_FeedRegisteredOmitsCount(t *testing.T) {
	forwarder, driver := setupForwarder(t)
	ctx := context.Background()

	require.NoError(t, forwarder.Handle(ctx, domain.FeedRegistered{Feed: newTestFeed(t), At: time.Now()}))

	msgs, err := driver.Latest(ctx, testStream, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(msgs[0].Payload, &payload))
	assert.NotContains(t, payload, "items_processed")
	assert.NotContains(t, payload, "last_processed_at")
	assert.Equal(t, "Example", payload["name"])
}

func TestRedisStreamForwarder_ThroughBus(t *testing.T) {
	forwarder, driver := setupForwarder(t)
	bus := NewEventBus(4)
	bus.Subscribe(ForwarderName, forwarder.Handle)

	require.NoError(t, bus.Publish(context.Background(), domain.FeedRegistered{Feed: newTestFeed(t), At: time.Now()}))
	bus.Close()

	msgs, err := driver.Latest(context.Background(), testStream, 10)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}

type otherEvent struct{}

func (otherEvent) EventType() string     { return "Other" }
func (otherEvent) OccurredAt() time.Time { return time.Time{} }

func TestRedisStreamForwarder_UnsupportedEvent(t *testing.T) {
	forwarder, _ := setupForwarder(t)
	assert.Error(t, forwarder.Handle(context.Background(), otherEvent{}))
}
