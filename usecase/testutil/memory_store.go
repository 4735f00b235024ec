package testutil

import (
	"context"
	"sync"
	"time"

	"feedhub/domain"

	"github.com/google/uuid"
)

// MemoryStore implements both feed store ports in memory, enforcing the same
// uniqueness rules as the database: feed url and (feed id, entry id).
type MemoryStore struct {
	mu        sync.Mutex
	feeds     map[uuid.UUID]domain.Feed
	feedOrder []uuid.UUID
	items     map[uuid.UUID]domain.FeedItem
	itemOrder []uuid.UUID
	now       func() time.Time

	// beforeItemInsert runs once, unlocked, before the next new item is inserted.
	beforeItemInsert func()
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		feeds: make(map[uuid.UUID]domain.Feed),
		items: make(map[uuid.UUID]domain.FeedItem),
		now:   time.Now,
	}
}

// BeforeNextItemInsert registers fn to run right before the next item insert,
// letting tests interleave a competing writer.
func (s *MemoryStore) BeforeNextItemInsert(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.beforeItemInsert = fn
}

func (s *MemoryStore) SaveFeed(_ context.Context, feed *domain.Feed) (*domain.Feed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, f := range s.feeds {
		if f.URL.Equal(feed.URL) && id != feed.ID() {
			return nil, domain.ErrDuplicateFeedURL
		}
	}

	stored := *feed
	now := s.now()
	if !stored.HasID() {
		if err := stored.AssignID(uuid.New()); err != nil {
			return nil, err
		}
		stored.CreatedAt = now
		s.feedOrder = append(s.feedOrder, stored.ID())
	} else {
		prev, ok := s.feeds[stored.ID()]
		if !ok {
			return nil, domain.ErrFeedNotFound
		}
		stored.CreatedAt = prev.CreatedAt
	}
	stored.UpdatedAt = now
	s.feeds[stored.ID()] = stored

	out := stored
	return &out, nil
}

func (s *MemoryStore) FindFeedByID(_ context.Context, id uuid.UUID) (*domain.Feed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.feeds[id]
	if !ok {
		return nil, domain.ErrFeedNotFound
	}
	return &f, nil
}

func (s *MemoryStore) FindFeedByURL(_ context.Context, url domain.FeedURL) (*domain.Feed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.feeds {
		if f.URL.Equal(url) {
			return &f, nil
		}
	}
	return nil, domain.ErrFeedNotFound
}

func (s *MemoryStore) FindFeedsByOwner(_ context.Context, ownerID uuid.UUID) ([]*domain.Feed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*domain.Feed
	for _, id := range s.feedOrder {
		f, ok := s.feeds[id]
		if ok && f.BelongsTo(ownerID) {
			out = append(out, &f)
		}
	}
	return out, nil
}

func (s *MemoryStore) FindAllFeeds(_ context.Context) ([]*domain.Feed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*domain.Feed
	for _, id := range s.feedOrder {
		if f, ok := s.feeds[id]; ok {
			out = append(out, &f)
		}
	}
	return out, nil
}

func (s *MemoryStore) DeleteFeed(_ context.Context, feed *domain.Feed) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.feeds[feed.ID()]; !ok {
		return domain.ErrFeedNotFound
	}
	delete(s.feeds, feed.ID())
	for id, item := range s.items {
		if item.FeedID == feed.ID() {
			delete(s.items, id)
		}
	}
	return nil
}

func (s *MemoryStore) SaveFeedItem(_ context.Context, item *domain.FeedItem) (*domain.FeedItem, error) {
	if !item.HasID() {
		s.mu.Lock()
		hook := s.beforeItemInsert
		s.beforeItemInsert = nil
		s.mu.Unlock()
		if hook != nil {
			hook()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *item
	now := s.now()
	if !stored.HasID() {
		if _, ok := s.findItemLocked(stored.FeedID, stored.EntryID); ok {
			return nil, domain.ErrFeedItemConflict
		}
		if err := stored.AssignID(uuid.New()); err != nil {
			return nil, err
		}
		stored.CreatedAt = now
		s.itemOrder = append(s.itemOrder, stored.ID())
	} else {
		prev, ok := s.items[stored.ID()]
		if !ok {
			return nil, domain.ErrFeedItemNotFound
		}
		stored.CreatedAt = prev.CreatedAt
	}
	stored.UpdatedAt = now
	s.items[stored.ID()] = stored

	out := stored
	return &out, nil
}

func (s *MemoryStore) FindFeedItemByFeedAndEntryID(_ context.Context, feedID uuid.UUID, entryID domain.EntryID) (*domain.FeedItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.findItemLocked(feedID, entryID)
	if !ok {
		return nil, domain.ErrFeedItemNotFound
	}
	return &item, nil
}

func (s *MemoryStore) FindFeedItemsByFeed(_ context.Context, feedID uuid.UUID) ([]*domain.FeedItem, error) {
	return s.FindFeedItemsByFeeds(context.Background(), []uuid.UUID{feedID})
}

func (s *MemoryStore) FindFeedItemsByFeeds(_ context.Context, feedIDs []uuid.UUID) ([]*domain.FeedItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := make(map[uuid.UUID]bool, len(feedIDs))
	for _, id := range feedIDs {
		wanted[id] = true
	}

	var out []*domain.FeedItem
	for _, id := range s.itemOrder {
		item, ok := s.items[id]
		if ok && wanted[item.FeedID] {
			out = append(out, &item)
		}
	}
	return out, nil
}

// ItemCount returns how many items are stored for feedID.
func (s *MemoryStore) ItemCount(feedID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, item := range s.items {
		if item.FeedID == feedID {
			n++
		}
	}
	return n
}

func (s *MemoryStore) findItemLocked(feedID uuid.UUID, entryID domain.EntryID) (domain.FeedItem, bool) {
	for _, item := range s.items {
		if item.FeedID == feedID && item.EntryID.Equal(entryID) {
			return item, true
		}
	}
	return domain.FeedItem{}, false
}
