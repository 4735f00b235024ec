package list_feed_items_usecase

import (
	"context"
	"fmt"
	"slices"

	"feedhub/domain"
	"feedhub/port/feed_store_port"

	"github.com/google/uuid"
)

type ListFeedItemsUsecase struct {
	feedRepo feed_store_port.FeedRepositoryPort
	itemRepo feed_store_port.FeedItemRepositoryPort
}

func NewListFeedItemsUsecase(feedRepo feed_store_port.FeedRepositoryPort, itemRepo feed_store_port.FeedItemRepositoryPort) *ListFeedItemsUsecase {
	return &ListFeedItemsUsecase{feedRepo: feedRepo, itemRepo: itemRepo}
}

// Execute returns the items of every feed owned by ownerID, newest first.
func (u *ListFeedItemsUsecase) Execute(ctx context.Context, ownerID uuid.UUID) ([]domain.FeedItemWithFeed, error) {
	feeds, err := u.feedRepo.FindFeedsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("find feeds by owner: %w", err)
	}
	if len(feeds) == 0 {
		return []domain.FeedItemWithFeed{}, nil
	}

	names := make(map[uuid.UUID]string, len(feeds))
	ids := make([]uuid.UUID, 0, len(feeds))
	for _, feed := range feeds {
		names[feed.ID()] = feed.Name.String()
		ids = append(ids, feed.ID())
	}

	items, err := u.itemRepo.FindFeedItemsByFeeds(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("find feed items: %w", err)
	}

	out := make([]domain.FeedItemWithFeed, 0, len(items))
	for _, item := range items {
		out = append(out, domain.FeedItemWithFeed{Item: item, FeedName: names[item.FeedID]})
	}
	sortNewestFirst(out)
	return out, nil
}

// ExecuteForFeed returns one feed's items, newest first. It fails with domain.ErrFeedNotFound
// or domain.ErrFeedAccessDenied when ownerID does not own the feed.
func (u *ListFeedItemsUsecase) ExecuteForFeed(ctx context.Context, feedID, ownerID uuid.UUID) ([]domain.FeedItemWithFeed, error) {
	feed, err := u.feedRepo.FindFeedByID(ctx, feedID)
	if err != nil {
		return nil, err
	}
	if !feed.BelongsTo(ownerID) {
		return nil, fmt.Errorf("feed %s: %w", feedID, domain.ErrFeedAccessDenied)
	}

	items, err := u.itemRepo.FindFeedItemsByFeed(ctx, feedID)
	if err != nil {
		return nil, fmt.Errorf("find feed items: %w", err)
	}

	out := make([]domain.FeedItemWithFeed, 0, len(items))
	for _, item := range items {
		out = append(out, domain.FeedItemWithFeed{Item: item, FeedName: feed.Name.String()})
	}
	sortNewestFirst(out)
	return out, nil
}

func sortNewestFirst(items []domain.FeedItemWithFeed) {
	slices.SortStableFunc(items, func(a, b domain.FeedItemWithFeed) int {
		return b.Item.PublishedAt.Compare(a.Item.PublishedAt)
	})
}
