package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFeed(t *testing.T) *Feed {
	t.Helper()
	name, err := NewFeedName("Example")
	require.NoError(t, err)
	url, err := NewFeedURL("https://example.com/feed.xml")
	require.NoError(t, err)
	return NewFeed(uuid.New(), name, url)
}

func TestFeed_AssignID(t *testing.T) {
	feed := newTestFeed(t)
	assert.False(t, feed.HasID())

	id := uuid.New()
	require.NoError(t, feed.AssignID(id))
	assert.Equal(t, id, feed.ID())

	// same id again is harmless
	require.NoError(t, feed.AssignID(id))

	err := feed.AssignID(uuid.New())
	assert.ErrorIs(t, err, ErrIDAlreadyAssigned)
	assert.Equal(t, id, feed.ID())
}

func TestFeed_BelongsTo(t *testing.T) {
	feed := newTestFeed(t)
	assert.True(t, feed.BelongsTo(feed.OwnerID))
	assert.False(t, feed.BelongsTo(uuid.New()))
}

func TestFeed_MarkProcessed(t *testing.T) {
	feed := newTestFeed(t)
	assert.False(t, feed.IsProcessed())

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	feed.MarkProcessed(at)

	require.NotNil(t, feed.LastProcessedAt)
	assert.True(t, feed.LastProcessedAt.Equal(at))
	assert.True(t, feed.IsProcessed())
}

func TestFeedItem_Update(t *testing.T) {
	entryID, err := NewEntryID("e1")
	require.NoError(t, err)
	published := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	item, err := NewFeedItem(uuid.New(), "Old", "https://example.com/1", entryID, published)
	require.NoError(t, err)
	itemID := uuid.New()
	require.NoError(t, item.AssignID(itemID))

	later := published.Add(time.Hour)
	require.NoError(t, item.Update("New", "https://example.com/1b", later))
	assert.Equal(t, itemID, item.ID())
	assert.Equal(t, "New", item.Title)
	assert.Equal(t, "https://example.com/1b", item.Link)
	assert.Equal(t, later, item.PublishedAt)

	err = item.Update("", "https://example.com/1", later)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)
	assert.Equal(t, "New", item.Title)
}

func TestNewFeedItem_Invalid(t *testing.T) {
	entryID, err := NewEntryID("e1")
	require.NoError(t, err)

	_, err = NewFeedItem(uuid.Nil, "t", "l", entryID, time.Now())
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewFeedItem(uuid.New(), "t", " ", entryID, time.Now())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "link", verr.Field)
}

func TestErrors_Classification(t *testing.T) {
	cause := context.DeadlineExceeded
	fetchErr := &FetchError{URL: "https://example.com", Cause: cause}
	assert.ErrorIs(t, fetchErr, ErrUnableToFetch)
	assert.ErrorIs(t, fetchErr, context.DeadlineExceeded)
	assert.Contains(t, fetchErr.Error(), "example.com")

	statusErr := &FetchError{URL: "https://example.com", StatusCode: 500}
	assert.ErrorIs(t, statusErr, ErrUnableToFetch)
	assert.Contains(t, statusErr.Error(), "500")

	formatErr := &FormatError{URL: "https://example.com", Cause: errors.New("EOF")}
	assert.ErrorIs(t, formatErr, ErrInvalidFormat)

	dup := &ValidationError{Field: "url", Rule: "unique", Message: "dup", Cause: ErrDuplicateFeedURL}
	assert.ErrorIs(t, dup, ErrValidation)
	assert.ErrorIs(t, dup, ErrDuplicateFeedURL)

	assert.True(t, IsRetryable(fetchErr))
	assert.True(t, IsRetryable(formatErr))
	assert.False(t, IsRetryable(ErrFeedNotFound))
	assert.False(t, IsRetryable(dup))
	assert.False(t, IsRetryable(nil))
}

func TestOwnerIDContext(t *testing.T) {
	_, err := GetOwnerID(context.Background())
	assert.ErrorIs(t, err, ErrOwnerNotInContext)

	owner := uuid.New()
	got, err := GetOwnerID(SetOwnerID(context.Background(), owner))
	require.NoError(t, err)
	assert.Equal(t, owner, got)
}

func TestFeed_Snapshot(t *testing.T) {
	feed := newTestFeed(t)
	require.NoError(t, feed.AssignID(uuid.New()))
	first := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	feed.MarkProcessed(first)

	registered := NewFeedRegistered(feed, first)
	processed := NewFeedProcessed(feed, 3, first)

	// later runs mutate the live feed in place
	*feed.LastProcessedAt = first.Add(time.Hour)
	feed.MarkProcessed(first.Add(2 * time.Hour))

	for _, snapshot := range []Feed{registered.Feed, processed.Feed} {
		assert.Equal(t, feed.ID(), snapshot.ID())
		require.NotNil(t, snapshot.LastProcessedAt)
		assert.True(t, snapshot.LastProcessedAt.Equal(first))
	}
	assert.NotSame(t, registered.Feed.LastProcessedAt, processed.Feed.LastProcessedAt)
	assert.Equal(t, 3, processed.ItemsProcessed)
}

func TestFeed_Snapshot_Unprocessed(t *testing.T) {
	feed := newTestFeed(t)
	snapshot := feed.Snapshot()
	assert.Nil(t, snapshot.LastProcessedAt)

	feed.MarkProcessed(time.Now())
	assert.Nil(t, snapshot.LastProcessedAt)
}
