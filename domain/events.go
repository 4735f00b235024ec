package domain

import "time"

const (
	EventTypeFeedRegistered = "FeedRegistered"
	EventTypeFeedProcessed  = "FeedProcessed"
)

// Event is a plain record published on the process-wide event bus.
type Event interface {
	EventType() string
	OccurredAt() time.Time
}

// FeedRegistered is emitted after a new feed has been persisted.
type FeedRegistered struct {
	Feed Feed
	At   time.Time
}

func NewFeedRegistered(feed *Feed, at time.Time) FeedRegistered {
	return FeedRegistered{Feed: feed.Snapshot(), At: at}
}

func (e FeedRegistered) EventType() string     { return EventTypeFeedRegistered }
func (e FeedRegistered) OccurredAt() time.Time { return e.At }

// FeedProcessed is emitted after an ingestion run completed and the feed was marked processed.
type FeedProcessed struct {
	Feed           Feed
	ItemsProcessed int
	At             time.Time
}

func NewFeedProcessed(feed *Feed, itemsProcessed int, at time.Time) FeedProcessed {
	return FeedProcessed{Feed: feed.Snapshot(), ItemsProcessed: itemsProcessed, At: at}
}

func (e FeedProcessed) EventType() string     { return EventTypeFeedProcessed }
func (e FeedProcessed) OccurredAt() time.Time { return e.At }
