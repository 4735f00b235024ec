package job

import (
	"context"
	"sync"
	"time"

	"feedhub/config"
	"feedhub/domain"
	"feedhub/utils/logger"
	"feedhub/utils/metrics"

	"github.com/google/uuid"
)

// FeedIngester runs one ingestion attempt.
type FeedIngester interface {
	Execute(ctx context.Context, feedID uuid.UUID) (domain.IngestionResult, error)
}

type ingestJob struct {
	FeedID  uuid.UUID
	Attempt int
}

// IngestionQueue runs ingestions on a fixed worker pool. A feed is held from enqueue until
// its final attempt ends, so at most one run per feed is queued, running or awaiting retry.
type IngestionQueue struct {
	ingester     FeedIngester
	workers      int
	maxAttempts  int
	retryBackoff time.Duration
	runTimeout   time.Duration

	jobs chan ingestJob

	mu       sync.Mutex
	inFlight map[uuid.UUID]struct{}
	started  bool
	stopped  bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewIngestionQueue(ingester FeedIngester, cfg config.IngestionConfig) *IngestionQueue {
	ctx, cancel := context.WithCancel(context.Background())
	q := &IngestionQueue{
		ingester:     ingester,
		workers:      max(cfg.Workers, 1),
		maxAttempts:  max(cfg.MaxAttempts, 1),
		retryBackoff: cfg.RetryBackoff,
		runTimeout:   cfg.RunTimeout,
		jobs:         make(chan ingestJob, max(cfg.QueueSize, 1)),
		inFlight:     make(map[uuid.UUID]struct{}),
		ctx:          ctx,
		cancel:       cancel,
	}
	return q
}

// Start launches the workers. Calling it more than once has no effect.
func (q *IngestionQueue) Start() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.started || q.stopped {
		return
	}
	q.started = true

	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker(i)
	}
	logger.Logger.Info("Ingestion queue started", "workers", q.workers)
}

// Enqueue reports false when the feed is already held by the queue.
func (q *IngestionQueue) Enqueue(ctx context.Context, feedID uuid.UUID) (bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.stopped {
		return false, domain.ErrQueueStopped
	}
	if _, ok := q.inFlight[feedID]; ok {
		metrics.RecordJob("deduplicated")
		return false, nil
	}

	select {
	case q.jobs <- ingestJob{FeedID: feedID, Attempt: 1}:
	default:
		metrics.RecordJob("rejected")
		return false, domain.ErrQueueFull
	}

	q.inFlight[feedID] = struct{}{}
	metrics.QueueInFlight.Inc()
	metrics.RecordJob("enqueued")
	logger.Logger.DebugContext(ctx, "Feed queued for ingestion", "feed_id", feedID.String())
	return true, nil
}

// Stop cancels running attempts and pending retries and waits for the workers to exit.
func (q *IngestionQueue) Stop() {
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return
	}
	q.stopped = true
	q.cancel()
	q.mu.Unlock()

	q.wg.Wait()
	logger.Logger.Info("Ingestion queue stopped")
}

func (q *IngestionQueue) worker(id int) {
	defer q.wg.Done()
	for {
		select {
		case <-q.ctx.Done():
			return
		case job := <-q.jobs:
			q.process(job, id)
		}
	}
}

func (q *IngestionQueue) process(job ingestJob, workerID int) {
	ctx := logger.WithFeedID(q.ctx, job.FeedID.String())
	runCtx := ctx
	if q.runTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, q.runTimeout)
		defer cancel()
	}

	logger.Logger.InfoContext(ctx, "Processing feed job started",
		"feed_id", job.FeedID.String(),
		"attempt", job.Attempt,
		"worker", workerID)

	result, err := q.ingester.Execute(runCtx, job.FeedID)
	switch {
	case err == nil:
		metrics.RecordJob("succeeded")
		logger.Logger.InfoContext(ctx, "Processing feed job completed",
			"feed_id", job.FeedID.String(),
			"attempt", job.Attempt,
			"items_processed", result.ItemsProcessed())
		q.release(job.FeedID)

	case q.ctx.Err() != nil:
		q.release(job.FeedID)

	case !domain.IsRetryable(err):
		metrics.RecordJob("discarded")
		logger.Logger.WarnContext(ctx, "Processing feed job failed, not retrying",
			"feed_id", job.FeedID.String(),
			"attempt", job.Attempt,
			"error", err)
		q.release(job.FeedID)

	case job.Attempt >= q.maxAttempts:
		metrics.RecordJob("failed_permanently")
		logger.Logger.ErrorContext(ctx, "ingestion job permanently failed",
			"feed_id", job.FeedID.String(),
			"attempt", job.Attempt,
			"error", err)
		q.release(job.FeedID)

	default:
		metrics.RecordJob("retry_scheduled")
		logger.Logger.WarnContext(ctx, "Processing feed job failed, retrying",
			"feed_id", job.FeedID.String(),
			"attempt", job.Attempt,
			"backoff", q.retryBackoff,
			"error", err)
		q.scheduleRetry(ingestJob{FeedID: job.FeedID, Attempt: job.Attempt + 1})
	}
}

func (q *IngestionQueue) scheduleRetry(next ingestJob) {
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()

		timer := time.NewTimer(q.retryBackoff)
		defer timer.Stop()

		select {
		case <-q.ctx.Done():
			q.release(next.FeedID)
			return
		case <-timer.C:
		}

		select {
		case q.jobs <- next:
		case <-q.ctx.Done():
			q.release(next.FeedID)
		}
	}()
}

func (q *IngestionQueue) release(feedID uuid.UUID) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if _, ok := q.inFlight[feedID]; ok {
		delete(q.inFlight, feedID)
		metrics.QueueInFlight.Dec()
	}
}

// InFlight returns how many feeds are queued, running or awaiting retry.
func (q *IngestionQueue) InFlight() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.inFlight)
}
