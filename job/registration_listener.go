package job

import (
	"context"

	"feedhub/domain"
	"feedhub/port/event_publisher_port"
	"feedhub/port/ingestion_queue_port"
	"feedhub/utils/logger"
)

const RegistrationListenerName = "registration-listener"

// RegistrationListener queues the first ingestion of a newly registered feed.
type RegistrationListener struct {
	queue ingestion_queue_port.IngestionQueuePort
}

func NewRegistrationListener(queue ingestion_queue_port.IngestionQueuePort) *RegistrationListener {
	return &RegistrationListener{queue: queue}
}

// SubscribeTo registers the listener on subscriber.
func (l *RegistrationListener) SubscribeTo(subscriber event_publisher_port.EventSubscriberPort) {
	subscriber.Subscribe(RegistrationListenerName, l.Handle)
}

// Handle matches event_publisher_port.EventHandler; other event types are ignored.
func (l *RegistrationListener) Handle(ctx context.Context, event domain.Event) error {
	registered, ok := event.(domain.FeedRegistered)
	if !ok {
		return nil
	}

	if !registered.Feed.HasID() {
		logger.Logger.WarnContext(ctx, "Cannot queue feed processing: feed has no id",
			"feed_url", registered.Feed.URL.String())
		return nil
	}

	feedID := registered.Feed.ID()
	if _, err := l.queue.Enqueue(ctx, feedID); err != nil {
		return err
	}

	logger.Logger.InfoContext(ctx, "Queued feed processing after creation", "feed_id", feedID.String())
	return nil
}
