package testutil

import (
	"context"
	"errors"
	"testing"
	"time"

	"feedhub/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Common error instances
var (
	ErrMockDatabase = errors.New("mock database error")
	ErrMockNetwork  = errors.New("mock network error")
)

func CreateCancelledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

// NewFeed builds an unsaved feed for ownerID.
func NewFeed(t *testing.T, ownerID uuid.UUID, name, rawURL string) *domain.Feed {
	t.Helper()
	feedName, err := domain.NewFeedName(name)
	require.NoError(t, err)
	feedURL, err := domain.NewFeedURL(rawURL)
	require.NoError(t, err)
	return domain.NewFeed(ownerID, feedName, feedURL)
}

// SeedFeed saves a new feed into store.
func SeedFeed(t *testing.T, store *MemoryStore, ownerID uuid.UUID, name, rawURL string) *domain.Feed {
	t.Helper()
	feed, err := store.SaveFeed(context.Background(), NewFeed(t, ownerID, name, rawURL))
	require.NoError(t, err)
	return feed
}

// SeedItem saves a new item into store.
func SeedItem(t *testing.T, store *MemoryStore, feedID uuid.UUID, entryID, title, link string, publishedAt time.Time) *domain.FeedItem {
	t.Helper()
	item, err := domain.NewFeedItem(feedID, title, link, Entry(t, entryID), publishedAt)
	require.NoError(t, err)
	saved, err := store.SaveFeedItem(context.Background(), item)
	require.NoError(t, err)
	return saved
}

func Entry(t *testing.T, raw string) domain.EntryID {
	t.Helper()
	id, err := domain.NewEntryID(raw)
	require.NoError(t, err)
	return id
}

// RSSEntry builds a parser result entry.
func RSSEntry(t *testing.T, entryID, title, link string, publishedAt time.Time) domain.RSSFeedEntry {
	t.Helper()
	return domain.RSSFeedEntry{
		Title:       title,
		Link:        link,
		EntryID:     Entry(t, entryID),
		PublishedAt: publishedAt,
	}
}
