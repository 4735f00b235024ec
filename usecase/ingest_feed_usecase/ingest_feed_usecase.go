package ingest_feed_usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"feedhub/domain"
	"feedhub/port/event_publisher_port"
	"feedhub/port/feed_parser_port"
	"feedhub/port/feed_store_port"
	"feedhub/utils/logger"
	"feedhub/utils/metrics"

	"github.com/google/uuid"
)

type upsertAction int

const (
	actionCreated upsertAction = iota + 1
	actionUpdated
)

// defaultSlowParseThreshold is half the parser's fetch timeout.
const defaultSlowParseThreshold = 15 * time.Second

// IngestFeedUsecase runs one fetch, parse and merge cycle for a feed.
type IngestFeedUsecase struct {
	feedRepo       feed_store_port.FeedRepositoryPort
	itemRepo       feed_store_port.FeedItemRepositoryPort
	parser         feed_parser_port.FeedParserPort
	eventPublisher event_publisher_port.EventPublisherPort
	perfLogger     *logger.PerformanceLogger
	slowParse      time.Duration
	now            func() time.Time
}

func NewIngestFeedUsecase(
	feedRepo feed_store_port.FeedRepositoryPort,
	itemRepo feed_store_port.FeedItemRepositoryPort,
	parser feed_parser_port.FeedParserPort,
	eventPublisher event_publisher_port.EventPublisherPort,
) *IngestFeedUsecase {
	return &IngestFeedUsecase{
		feedRepo:       feedRepo,
		itemRepo:       itemRepo,
		parser:         parser,
		eventPublisher: eventPublisher,
		perfLogger:     logger.NewPerformanceLogger(logger.Logger),
		slowParse:      defaultSlowParseThreshold,
		now:            time.Now,
	}
}

// SetClock replaces the clock used for lastProcessedAt and event timestamps.
func (u *IngestFeedUsecase) SetClock(now func() time.Time) {
	u.now = now
}

// Execute merges the current upstream entries into the feed's stored items by (feed id, entry id).
// The feed is marked processed only after every entry of the run was handled; a failed
// or cancelled run leaves lastProcessedAt unchanged.
func (u *IngestFeedUsecase) Execute(ctx context.Context, feedID uuid.UUID) (domain.IngestionResult, error) {
	ctx = logger.WithFeedID(ctx, feedID.String())
	ctx = logger.WithOperation(ctx, "ingest_feed")

	timer := u.perfLogger.StartTimer(ctx, "ingest_feed")
	result, err := u.ingest(ctx, feedID)
	if err != nil {
		elapsed := timer.EndWithError(err)
		metrics.RecordIngestion("failed", elapsed.Seconds())
		return result, err
	}

	elapsed := timer.End()
	metrics.RecordIngestion("succeeded", elapsed.Seconds())
	metrics.RecordItems(result.Created, result.Updated, result.Skipped)
	return result, nil
}

func (u *IngestFeedUsecase) ingest(ctx context.Context, feedID uuid.UUID) (domain.IngestionResult, error) {
	result := domain.IngestionResult{FeedID: feedID}

	feed, err := u.feedRepo.FindFeedByID(ctx, feedID)
	if err != nil {
		return result, fmt.Errorf("load feed %s: %w", feedID, err)
	}

	parseStart := time.Now()
	entries, err := u.parser.ParseFeed(ctx, feed.URL)
	u.perfLogger.LogSlowOperation(ctx, "parse_feed", time.Since(parseStart), u.slowParse)
	if err != nil {
		return result, err
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		action, err := u.upsert(ctx, feedID, entry)
		if err != nil {
			if errors.Is(err, domain.ErrValidation) {
				result.Skipped++
				logger.Logger.WarnContext(ctx, "Skipping invalid feed entry",
					"entry_id", entry.EntryID.String(),
					"error", err)
				continue
			}
			return result, fmt.Errorf("upsert entry %q: %w", entry.EntryID.String(), err)
		}

		switch action {
		case actionCreated:
			result.Created++
		case actionUpdated:
			result.Updated++
		}
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	processedAt := u.now()
	feed.MarkProcessed(processedAt)
	saved, err := u.feedRepo.SaveFeed(ctx, feed)
	if err != nil {
		return result, fmt.Errorf("mark feed processed: %w", err)
	}

	logger.Logger.InfoContext(ctx, "Feed ingested",
		"feed_id", feedID.String(),
		"entries", len(entries),
		"created", result.Created,
		"updated", result.Updated,
		"skipped", result.Skipped)

	u.publishProcessed(ctx, saved, result.ItemsProcessed(), processedAt)
	return result, nil
}

// upsert writes one entry under its natural key. A create that loses a race with a
// concurrent writer is retried as an update of the winner's row.
func (u *IngestFeedUsecase) upsert(ctx context.Context, feedID uuid.UUID, entry domain.RSSFeedEntry) (upsertAction, error) {
	existing, err := u.itemRepo.FindFeedItemByFeedAndEntryID(ctx, feedID, entry.EntryID)
	switch {
	case err == nil:
		return actionUpdated, u.update(ctx, existing, entry)
	case !errors.Is(err, domain.ErrFeedItemNotFound):
		return 0, err
	}

	item, err := domain.NewFeedItem(feedID, entry.Title, entry.Link, entry.EntryID, entry.PublishedAt)
	if err != nil {
		return 0, err
	}

	_, err = u.itemRepo.SaveFeedItem(ctx, item)
	if err == nil {
		return actionCreated, nil
	}
	if !errors.Is(err, domain.ErrFeedItemConflict) {
		return 0, err
	}

	logger.Logger.InfoContext(ctx, "Concurrent insert detected, updating instead",
		"entry_id", entry.EntryID.String())

	existing, err = u.itemRepo.FindFeedItemByFeedAndEntryID(ctx, feedID, entry.EntryID)
	if err != nil {
		return 0, fmt.Errorf("re-read after conflict: %w", err)
	}
	return actionUpdated, u.update(ctx, existing, entry)
}

func (u *IngestFeedUsecase) update(ctx context.Context, item *domain.FeedItem, entry domain.RSSFeedEntry) error {
	if err := item.Update(entry.Title, entry.Link, entry.PublishedAt); err != nil {
		return err
	}
	_, err := u.itemRepo.SaveFeedItem(ctx, item)
	return err
}

func (u *IngestFeedUsecase) publishProcessed(ctx context.Context, feed *domain.Feed, itemsProcessed int, at time.Time) {
	if u.eventPublisher == nil {
		return
	}
	event := domain.NewFeedProcessed(feed, itemsProcessed, at)
	if err := u.eventPublisher.Publish(ctx, event); err != nil {
		logger.Logger.WarnContext(ctx, "failed to publish FeedProcessed event (non-fatal)",
			"feed_id", feed.ID().String(),
			"error", err)
	}
}
