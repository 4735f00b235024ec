package feed_store_gateway

import (
	"context"
	"errors"
	"fmt"

	"feedhub/domain"
	"feedhub/driver/feed_db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// FeedStoreGateway implements the feed and feed item repository ports on PostgreSQL.
type FeedStoreGateway struct {
	repo *feed_db.FeedDBRepository
}

func NewFeedStoreGateway(pool feed_db.PgxIface) *FeedStoreGateway {
	return &FeedStoreGateway{repo: feed_db.NewFeedDBRepository(pool)}
}

func (g *FeedStoreGateway) SaveFeed(ctx context.Context, feed *domain.Feed) (*domain.Feed, error) {
	row := fromDomainFeed(feed)

	if !feed.HasID() {
		if err := g.repo.InsertFeed(ctx, row); err != nil {
			return nil, translate(err)
		}
		if err := feed.AssignID(row.ID); err != nil {
			return nil, err
		}
	} else if err := g.repo.UpdateFeed(ctx, row); err != nil {
		return nil, translate(err)
	}

	feed.CreatedAt = row.CreatedAt
	feed.UpdatedAt = row.UpdatedAt
	return feed, nil
}

func (g *FeedStoreGateway) FindFeedByID(ctx context.Context, id uuid.UUID) (*domain.Feed, error) {
	row, err := g.repo.FetchFeedByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toDomainFeed(row)
}

func (g *FeedStoreGateway) FindFeedByURL(ctx context.Context, url domain.FeedURL) (*domain.Feed, error) {
	row, err := g.repo.FetchFeedByURL(ctx, url.String())
	if err != nil {
		return nil, translate(err)
	}
	return toDomainFeed(row)
}

func (g *FeedStoreGateway) FindFeedsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Feed, error) {
	rows, err := g.repo.FetchFeedsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return toDomainFeeds(rows)
}

func (g *FeedStoreGateway) FindAllFeeds(ctx context.Context) ([]*domain.Feed, error) {
	rows, err := g.repo.FetchAllFeeds(ctx)
	if err != nil {
		return nil, err
	}
	return toDomainFeeds(rows)
}

func (g *FeedStoreGateway) DeleteFeed(ctx context.Context, feed *domain.Feed) error {
	if !feed.HasID() {
		return domain.ErrFeedNotFound
	}
	return translate(g.repo.DeleteFeed(ctx, feed.ID()))
}

func (g *FeedStoreGateway) SaveFeedItem(ctx context.Context, item *domain.FeedItem) (*domain.FeedItem, error) {
	row := fromDomainFeedItem(item)

	if !item.HasID() {
		if err := g.repo.InsertFeedItem(ctx, row); err != nil {
			return nil, translate(err)
		}
		if err := item.AssignID(row.ID); err != nil {
			return nil, err
		}
	} else if err := g.repo.UpdateFeedItem(ctx, row); err != nil {
		return nil, translateItem(err)
	}

	item.CreatedAt = row.CreatedAt
	item.UpdatedAt = row.UpdatedAt
	return item, nil
}

func (g *FeedStoreGateway) FindFeedItemByFeedAndEntryID(ctx context.Context, feedID uuid.UUID, entryID domain.EntryID) (*domain.FeedItem, error) {
	row, err := g.repo.FetchFeedItemByFeedAndEntryID(ctx, feedID, entryID.String())
	if err != nil {
		return nil, translateItem(err)
	}
	return toDomainFeedItem(row)
}

func (g *FeedStoreGateway) FindFeedItemsByFeed(ctx context.Context, feedID uuid.UUID) ([]*domain.FeedItem, error) {
	rows, err := g.repo.FetchFeedItemsByFeed(ctx, feedID)
	if err != nil {
		return nil, err
	}
	return toDomainFeedItems(rows)
}

func (g *FeedStoreGateway) FindFeedItemsByFeeds(ctx context.Context, feedIDs []uuid.UUID) ([]*domain.FeedItem, error) {
	rows, err := g.repo.FetchFeedItemsByFeeds(ctx, feedIDs)
	if err != nil {
		return nil, err
	}
	return toDomainFeedItems(rows)
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %v", domain.ErrFeedNotFound, err)
	}
	if constraint, ok := feed_db.UniqueViolation(err); ok {
		switch constraint {
		case feed_db.FeedItemEntryUniqueConstraint:
			return fmt.Errorf("%w: %v", domain.ErrFeedItemConflict, err)
		default:
			return fmt.Errorf("%w: %v", domain.ErrDuplicateFeedURL, err)
		}
	}
	return err
}

func translateItem(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %v", domain.ErrFeedItemNotFound, err)
	}
	return translate(err)
}
