package process_feeds_usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"feedhub/domain"
	"feedhub/port/feed_store_port"
	"feedhub/port/ingestion_queue_port"
	"feedhub/utils/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// NoFeedsMessage is reported when a trigger finds nothing to process.
const NoFeedsMessage = "No feeds to process."

var ErrQueueUnavailable = errors.New("ingestion queue not configured")

// FeedIngester runs one ingestion synchronously.
type FeedIngester interface {
	Execute(ctx context.Context, feedID uuid.UUID) (domain.IngestionResult, error)
}

// ProcessFeedsUsecase is the manual and scheduled trigger: it either ingests feeds in
// the caller's goroutine with bounded parallelism, or hands them to the retrying queue.
type ProcessFeedsUsecase struct {
	feedRepo    feed_store_port.FeedRepositoryPort
	ingester    FeedIngester
	queue       ingestion_queue_port.IngestionQueuePort
	concurrency int
	now         func() time.Time
}

func NewProcessFeedsUsecase(
	feedRepo feed_store_port.FeedRepositoryPort,
	ingester FeedIngester,
	queue ingestion_queue_port.IngestionQueuePort,
	concurrency int,
) *ProcessFeedsUsecase {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &ProcessFeedsUsecase{
		feedRepo:    feedRepo,
		ingester:    ingester,
		queue:       queue,
		concurrency: concurrency,
		now:         time.Now,
	}
}

// ProcessAll triggers every registered feed.
func (u *ProcessFeedsUsecase) ProcessAll(ctx context.Context, sync bool) (domain.ProcessReport, error) {
	feeds, err := u.feedRepo.FindAllFeeds(ctx)
	if err != nil {
		return domain.ProcessReport{Sync: sync}, fmt.Errorf("find all feeds: %w", err)
	}
	return u.run(ctx, feeds, sync)
}

// ProcessOwner triggers the feeds owned by ownerID.
func (u *ProcessFeedsUsecase) ProcessOwner(ctx context.Context, ownerID uuid.UUID, sync bool) (domain.ProcessReport, error) {
	feeds, err := u.feedRepo.FindFeedsByOwner(ctx, ownerID)
	if err != nil {
		return domain.ProcessReport{Sync: sync}, fmt.Errorf("find feeds by owner: %w", err)
	}
	return u.run(ctx, feeds, sync)
}

// ProcessFeed triggers a single feed owned by ownerID.
func (u *ProcessFeedsUsecase) ProcessFeed(ctx context.Context, feedID, ownerID uuid.UUID, sync bool) (domain.ProcessReport, error) {
	feed, err := u.feedRepo.FindFeedByID(ctx, feedID)
	if err != nil {
		return domain.ProcessReport{Sync: sync}, err
	}
	if !feed.BelongsTo(ownerID) {
		return domain.ProcessReport{Sync: sync}, fmt.Errorf("feed %s: %w", feedID, domain.ErrFeedAccessDenied)
	}
	return u.run(ctx, []*domain.Feed{feed}, sync)
}

func (u *ProcessFeedsUsecase) run(ctx context.Context, feeds []*domain.Feed, sync bool) (domain.ProcessReport, error) {
	report := domain.ProcessReport{Sync: sync, StartedAt: u.now()}
	if len(feeds) == 0 {
		logger.Logger.InfoContext(ctx, NoFeedsMessage)
		return report, nil
	}

	logger.Logger.InfoContext(ctx, "Starting feed processing", "feeds", len(feeds), "sync", sync)

	var err error
	if sync {
		report.Outcomes = u.runSync(ctx, feeds)
	} else {
		report.Outcomes, err = u.enqueue(ctx, feeds)
	}
	report.Duration = u.now().Sub(report.StartedAt)

	logger.Logger.InfoContext(ctx, "Feed processing finished",
		"sync", sync,
		"succeeded", report.Count(domain.ProcessStatusSucceeded),
		"failed", report.Count(domain.ProcessStatusFailed),
		"queued", report.Count(domain.ProcessStatusQueued))
	return report, err
}

// runSync ingests without retry; each feed's outcome is reported as-is.
func (u *ProcessFeedsUsecase) runSync(ctx context.Context, feeds []*domain.Feed) []domain.FeedProcessOutcome {
	outcomes := make([]domain.FeedProcessOutcome, len(feeds))

	var g errgroup.Group
	g.SetLimit(u.concurrency)

	for i, feed := range feeds {
		outcomes[i] = domain.FeedProcessOutcome{FeedID: feed.ID(), FeedName: feed.Name.String()}
		g.Go(func() error {
			result, err := u.ingester.Execute(ctx, feed.ID())
			if err != nil {
				logger.Logger.ErrorContext(ctx, "Error processing feed",
					"feed_id", feed.ID().String(),
					"error", err)
				outcomes[i].Status = domain.ProcessStatusFailed
				outcomes[i].Err = err
				return nil
			}
			outcomes[i].Status = domain.ProcessStatusSucceeded
			outcomes[i].ItemsProcessed = result.ItemsProcessed()
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

func (u *ProcessFeedsUsecase) enqueue(ctx context.Context, feeds []*domain.Feed) ([]domain.FeedProcessOutcome, error) {
	if u.queue == nil {
		return nil, ErrQueueUnavailable
	}

	outcomes := make([]domain.FeedProcessOutcome, 0, len(feeds))
	for _, feed := range feeds {
		outcome := domain.FeedProcessOutcome{FeedID: feed.ID(), FeedName: feed.Name.String()}

		enqueued, err := u.queue.Enqueue(ctx, feed.ID())
		switch {
		case err != nil:
			outcome.Status = domain.ProcessStatusFailed
			outcome.Err = err
			logger.Logger.WarnContext(ctx, "Failed to queue feed", "feed_id", feed.ID().String(), "error", err)
		case !enqueued:
			outcome.Status = domain.ProcessStatusQueued
			logger.Logger.DebugContext(ctx, "Feed already queued", "feed_id", feed.ID().String())
		default:
			outcome.Status = domain.ProcessStatusQueued
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}
