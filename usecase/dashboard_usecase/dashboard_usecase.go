package dashboard_usecase

import (
	"context"
	"fmt"
	"time"

	"feedhub/domain"
	"feedhub/port/feed_store_port"

	"github.com/google/uuid"
)

type DashboardUsecase struct {
	feedRepo feed_store_port.FeedRepositoryPort
	itemRepo feed_store_port.FeedItemRepositoryPort
}

func NewDashboardUsecase(feedRepo feed_store_port.FeedRepositoryPort, itemRepo feed_store_port.FeedItemRepositoryPort) *DashboardUsecase {
	return &DashboardUsecase{feedRepo: feedRepo, itemRepo: itemRepo}
}

// Execute summarises ownerID's feeds. LatestFeedName is the most recently created feed.
func (u *DashboardUsecase) Execute(ctx context.Context, ownerID uuid.UUID) (domain.FeedStats, error) {
	var stats domain.FeedStats

	feeds, err := u.feedRepo.FindFeedsByOwner(ctx, ownerID)
	if err != nil {
		return stats, fmt.Errorf("find feeds by owner: %w", err)
	}
	if len(feeds) == 0 {
		return stats, nil
	}

	var latestCreated time.Time
	ids := make([]uuid.UUID, 0, len(feeds))
	for _, feed := range feeds {
		ids = append(ids, feed.ID())

		if stats.LatestFeedName == "" || feed.CreatedAt.After(latestCreated) {
			latestCreated = feed.CreatedAt
			stats.LatestFeedName = feed.Name.String()
		}
		if feed.LastProcessedAt != nil && (stats.LastProcessedAt == nil || feed.LastProcessedAt.After(*stats.LastProcessedAt)) {
			processed := *feed.LastProcessedAt
			stats.LastProcessedAt = &processed
		}
	}
	stats.FeedsCount = len(feeds)

	items, err := u.itemRepo.FindFeedItemsByFeeds(ctx, ids)
	if err != nil {
		return stats, fmt.Errorf("find feed items: %w", err)
	}
	stats.FeedItemsCount = len(items)

	return stats, nil
}
