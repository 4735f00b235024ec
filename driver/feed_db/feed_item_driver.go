package feed_db

import (
	"context"
	"fmt"

	"feedhub/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const feedItemColumns = `id, feed_id, title, link, entry_id, published_at, created_at, updated_at`

// InsertFeedItem fails with a 23505 error on feed_items_feed_id_entry_id_key when the natural key exists.
func (r *FeedDBRepository) InsertFeedItem(ctx context.Context, row *FeedItemRow) error {
	if r == nil || r.pool == nil {
		return ErrNilPool
	}

	query := `
		INSERT INTO feed_items (feed_id, title, link, entry_id, published_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query, row.FeedID, row.Title, row.Link, row.EntryID, row.PublishedAt).
		Scan(&row.ID, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		if _, ok := UniqueViolation(err); !ok {
			logger.Logger.ErrorContext(ctx, "Error inserting feed item", "error", err, "feed_id", row.FeedID, "entry_id", row.EntryID)
		}
		return fmt.Errorf("insert feed item: %w", err)
	}

	return nil
}

func (r *FeedDBRepository) UpdateFeedItem(ctx context.Context, row *FeedItemRow) error {
	if r == nil || r.pool == nil {
		return ErrNilPool
	}

	query := `
		UPDATE feed_items
		SET title = $2, link = $3, published_at = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query, row.ID, row.Title, row.Link, row.PublishedAt).
		Scan(&row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Error updating feed item", "error", err, "feed_item_id", row.ID)
		return fmt.Errorf("update feed item: %w", err)
	}

	return nil
}

func (r *FeedDBRepository) FetchFeedItemByFeedAndEntryID(ctx context.Context, feedID uuid.UUID, entryID string) (*FeedItemRow, error) {
	if r == nil || r.pool == nil {
		return nil, ErrNilPool
	}

	query := `SELECT ` + feedItemColumns + ` FROM feed_items WHERE feed_id = $1 AND entry_id = $2`
	row, err := scanFeedItem(r.pool.QueryRow(ctx, query, feedID, entryID))
	if err != nil {
		return nil, fmt.Errorf("fetch feed item by entry id: %w", err)
	}
	return row, nil
}

func (r *FeedDBRepository) FetchFeedItemsByFeed(ctx context.Context, feedID uuid.UUID) ([]*FeedItemRow, error) {
	if r == nil || r.pool == nil {
		return nil, ErrNilPool
	}

	query := `SELECT ` + feedItemColumns + ` FROM feed_items WHERE feed_id = $1 ORDER BY published_at DESC`
	rows, err := r.pool.Query(ctx, query, feedID)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Error fetching feed items", "error", err, "feed_id", feedID)
		return nil, fmt.Errorf("fetch feed items: %w", err)
	}
	return collectFeedItems(rows)
}

func (r *FeedDBRepository) FetchFeedItemsByFeeds(ctx context.Context, feedIDs []uuid.UUID) ([]*FeedItemRow, error) {
	if r == nil || r.pool == nil {
		return nil, ErrNilPool
	}
	if len(feedIDs) == 0 {
		return nil, nil
	}

	query := `SELECT ` + feedItemColumns + ` FROM feed_items WHERE feed_id = ANY($1) ORDER BY published_at DESC`
	rows, err := r.pool.Query(ctx, query, feedIDs)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Error fetching feed items for feeds", "error", err, "feed_count", len(feedIDs))
		return nil, fmt.Errorf("fetch feed items for feeds: %w", err)
	}
	return collectFeedItems(rows)
}

func scanFeedItem(row pgx.Row) (*FeedItemRow, error) {
	var i FeedItemRow
	if err := row.Scan(&i.ID, &i.FeedID, &i.Title, &i.Link, &i.EntryID, &i.PublishedAt, &i.CreatedAt, &i.UpdatedAt); err != nil {
		return nil, err
	}
	return &i, nil
}

func collectFeedItems(rows pgx.Rows) ([]*FeedItemRow, error) {
	defer rows.Close()

	var items []*FeedItemRow
	for rows.Next() {
		i, err := scanFeedItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan feed item: %w", err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feed items: %w", err)
	}
	return items, nil
}
