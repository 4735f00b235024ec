package feed_db

import (
	"context"
	"errors"
	"fmt"

	"feedhub/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const feedColumns = `id, owner_id, name, url, last_processed_at, created_at, updated_at`

func (r *FeedDBRepository) InsertFeed(ctx context.Context, row *FeedRow) error {
	if r == nil || r.pool == nil {
		return ErrNilPool
	}

	query := `
		INSERT INTO feeds (owner_id, name, url, last_processed_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query, row.OwnerID, row.Name, row.URL, row.LastProcessedAt).
		Scan(&row.ID, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Error inserting feed", "error", err, "url", row.URL)
		return fmt.Errorf("insert feed: %w", err)
	}

	return nil
}

// UpdateFeed writes the mutable columns and refreshes updated_at.
func (r *FeedDBRepository) UpdateFeed(ctx context.Context, row *FeedRow) error {
	if r == nil || r.pool == nil {
		return ErrNilPool
	}

	query := `
		UPDATE feeds
		SET name = $2, url = $3, last_processed_at = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query, row.ID, row.Name, row.URL, row.LastProcessedAt).
		Scan(&row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Error updating feed", "error", err, "feed_id", row.ID)
		return fmt.Errorf("update feed: %w", err)
	}

	return nil
}

func (r *FeedDBRepository) FetchFeedByID(ctx context.Context, id uuid.UUID) (*FeedRow, error) {
	if r == nil || r.pool == nil {
		return nil, ErrNilPool
	}

	query := `SELECT ` + feedColumns + ` FROM feeds WHERE id = $1`
	row, err := scanFeed(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("fetch feed by id: %w", err)
	}
	return row, nil
}

func (r *FeedDBRepository) FetchFeedByURL(ctx context.Context, url string) (*FeedRow, error) {
	if r == nil || r.pool == nil {
		return nil, ErrNilPool
	}

	query := `SELECT ` + feedColumns + ` FROM feeds WHERE url = $1`
	row, err := scanFeed(r.pool.QueryRow(ctx, query, url))
	if err != nil {
		return nil, fmt.Errorf("fetch feed by url: %w", err)
	}
	return row, nil
}

func (r *FeedDBRepository) FetchFeedsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*FeedRow, error) {
	if r == nil || r.pool == nil {
		return nil, ErrNilPool
	}

	query := `SELECT ` + feedColumns + ` FROM feeds WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Error fetching feeds by owner", "error", err, "owner_id", ownerID)
		return nil, fmt.Errorf("fetch feeds by owner: %w", err)
	}
	return collectFeeds(rows)
}

func (r *FeedDBRepository) FetchAllFeeds(ctx context.Context) ([]*FeedRow, error) {
	if r == nil || r.pool == nil {
		return nil, ErrNilPool
	}

	query := `SELECT ` + feedColumns + ` FROM feeds ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Error fetching all feeds", "error", err)
		return nil, fmt.Errorf("fetch all feeds: %w", err)
	}
	return collectFeeds(rows)
}

// DeleteFeed removes a feed and its items in one transaction.
func (r *FeedDBRepository) DeleteFeed(ctx context.Context, id uuid.UUID) error {
	if r == nil || r.pool == nil {
		return ErrNilPool
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Error starting transaction", "error", err)
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			logger.Logger.WarnContext(ctx, "Error rolling back transaction", "error", err)
		}
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM feed_items WHERE feed_id = $1`, id); err != nil {
		logger.Logger.ErrorContext(ctx, "Error deleting feed items", "error", err, "feed_id", id)
		return fmt.Errorf("delete feed items: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM feeds WHERE id = $1`, id)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Error deleting feed", "error", err, "feed_id", id)
		return fmt.Errorf("delete feed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete feed: %w", pgx.ErrNoRows)
	}

	if err := tx.Commit(ctx); err != nil {
		logger.Logger.ErrorContext(ctx, "Error committing transaction", "error", err)
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func scanFeed(row pgx.Row) (*FeedRow, error) {
	var f FeedRow
	if err := row.Scan(&f.ID, &f.OwnerID, &f.Name, &f.URL, &f.LastProcessedAt, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

func collectFeeds(rows pgx.Rows) ([]*FeedRow, error) {
	defer rows.Close()

	var feeds []*FeedRow
	for rows.Next() {
		f, err := scanFeed(rows)
		if err != nil {
			return nil, fmt.Errorf("scan feed: %w", err)
		}
		feeds = append(feeds, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feeds: %w", err)
	}
	return feeds, nil
}
