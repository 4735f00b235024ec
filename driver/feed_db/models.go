package feed_db

import (
	"time"

	"github.com/google/uuid"
)

const (
	FeedURLUniqueConstraint       = "feeds_url_key"
	FeedItemEntryUniqueConstraint = "feed_items_feed_id_entry_id_key"
)

type FeedRow struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Name            string
	URL             string
	LastProcessedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type FeedItemRow struct {
	ID          uuid.UUID
	FeedID      uuid.UUID
	Title       string
	Link        string
	EntryID     string
	PublishedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
