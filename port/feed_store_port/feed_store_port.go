package feed_store_port

import (
	"context"

	"feedhub/domain"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -source=feed_store_port.go -destination=../../mocks/mock_feed_store_port.go -package=mocks

// FeedRepositoryPort is the durable store for Feed aggregates.
// Lookups that miss return domain.ErrFeedNotFound.
type FeedRepositoryPort interface {
	// SaveFeed inserts a feed without an id (assigning id and timestamps) or updates an existing one.
	// A second feed with an already stored URL fails with domain.ErrDuplicateFeedURL.
	SaveFeed(ctx context.Context, feed *domain.Feed) (*domain.Feed, error)
	FindFeedByID(ctx context.Context, id uuid.UUID) (*domain.Feed, error)
	FindFeedByURL(ctx context.Context, url domain.FeedURL) (*domain.Feed, error)
	FindFeedsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Feed, error)
	FindAllFeeds(ctx context.Context) ([]*domain.Feed, error)
	DeleteFeed(ctx context.Context, feed *domain.Feed) error
}

// FeedItemRepositoryPort is the durable store for FeedItems, unique on (feed id, entry id).
// Lookups that miss return domain.ErrFeedItemNotFound.
type FeedItemRepositoryPort interface {
	// SaveFeedItem inserts or updates an item. Inserting a second item for the same
	// natural key fails with domain.ErrFeedItemConflict.
	SaveFeedItem(ctx context.Context, item *domain.FeedItem) (*domain.FeedItem, error)
	FindFeedItemByFeedAndEntryID(ctx context.Context, feedID uuid.UUID, entryID domain.EntryID) (*domain.FeedItem, error)
	FindFeedItemsByFeed(ctx context.Context, feedID uuid.UUID) ([]*domain.FeedItem, error)
	FindFeedItemsByFeeds(ctx context.Context, feedIDs []uuid.UUID) ([]*domain.FeedItem, error)
}
