package list_feeds_usecase

import (
	"context"
	"fmt"

	"feedhub/domain"
	"feedhub/port/feed_store_port"

	"github.com/google/uuid"
)

type ListFeedsUsecase struct {
	feedRepo feed_store_port.FeedRepositoryPort
}

func NewListFeedsUsecase(feedRepo feed_store_port.FeedRepositoryPort) *ListFeedsUsecase {
	return &ListFeedsUsecase{feedRepo: feedRepo}
}

func (u *ListFeedsUsecase) Execute(ctx context.Context, ownerID uuid.UUID) ([]*domain.Feed, error) {
	feeds, err := u.feedRepo.FindFeedsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("find feeds by owner: %w", err)
	}
	if feeds == nil {
		feeds = []*domain.Feed{}
	}
	return feeds, nil
}
