package list_feed_items_usecase

import (
	"context"
	"testing"
	"time"

	"feedhub/domain"
	"feedhub/usecase/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestListFeedItemsUsecase_Execute(t *testing.T) {
	store := testutil.NewMemoryStore()
	owner := uuid.New()
	news := testutil.SeedFeed(t, store, owner, "News", "https://news.example.com/rss")
	blog := testutil.SeedFeed(t, store, owner, "Blog", "https://blog.example.com/rss")
	foreign := testutil.SeedFeed(t, store, uuid.New(), "Foreign", "https://foreign.example.com/rss")

	testutil.SeedItem(t, store, news.ID(), "n1", "Oldest", "https://news.example.com/1", base)
	testutil.SeedItem(t, store, blog.ID(), "b1", "Newest", "https://blog.example.com/1", base.Add(2*time.Hour))
	testutil.SeedItem(t, store, news.ID(), "n2", "Middle", "https://news.example.com/2", base.Add(time.Hour))
	testutil.SeedItem(t, store, foreign.ID(), "f1", "Not mine", "https://foreign.example.com/1", base.Add(3*time.Hour))

	items, err := NewListFeedItemsUsecase(store, store).Execute(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "Newest", items[0].Item.Title)
	assert.Equal(t, "Blog", items[0].FeedName)
	assert.Equal(t, "Middle", items[1].Item.Title)
	assert.Equal(t, "News", items[1].FeedName)
	assert.Equal(t, "Oldest", items[2].Item.Title)
}

func TestListFeedItemsUsecase_Execute_NoFeeds(t *testing.T) {
	store := testutil.NewMemoryStore()

	items, err := NewListFeedItemsUsecase(store, store).Execute(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestListFeedItemsUsecase_ExecuteForFeed(t *testing.T) {
	store := testutil.NewMemoryStore()
	owner := uuid.New()
	feed := testutil.SeedFeed(t, store, owner, "News", "https://news.example.com/rss")
	testutil.SeedItem(t, store, feed.ID(), "n1", "First", "https://news.example.com/1", base)
	testutil.SeedItem(t, store, feed.ID(), "n2", "Second", "https://news.example.com/2", base.Add(time.Minute))

	u := NewListFeedItemsUsecase(store, store)

	t.Run("owner sees items newest first", func(t *testing.T) {
		items, err := u.ExecuteForFeed(context.Background(), feed.ID(), owner)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Second", items[0].Item.Title)
		assert.Equal(t, "News", items[0].FeedName)
	})

	t.Run("other owner is denied", func(t *testing.T) {
		_, err := u.ExecuteForFeed(context.Background(), feed.ID(), uuid.New())
		assert.ErrorIs(t, err, domain.ErrFeedAccessDenied)
	})

	t.Run("unknown feed", func(t *testing.T) {
		_, err := u.ExecuteForFeed(context.Background(), uuid.New(), owner)
		assert.ErrorIs(t, err, domain.ErrFeedNotFound)
	})
}
