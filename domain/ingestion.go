package domain

import (
	"time"

	"github.com/google/uuid"
)

// IngestionResult counts what one ingestion run did to the stored items of a feed.
type IngestionResult struct {
	FeedID  uuid.UUID
	Created int
	Updated int
	Skipped int
}

// ItemsProcessed is creates and updates combined.
func (r IngestionResult) ItemsProcessed() int {
	return r.Created + r.Updated
}

type ProcessStatus string

const (
	ProcessStatusSucceeded ProcessStatus = "succeeded"
	ProcessStatusFailed    ProcessStatus = "failed"
	ProcessStatusQueued    ProcessStatus = "queued"
)

// FeedProcessOutcome is one line of a process report.
type FeedProcessOutcome struct {
	FeedID         uuid.UUID
	FeedName       string
	Status         ProcessStatus
	ItemsProcessed int
	Err            error
}

// ProcessReport is the per-feed result of a manual or scheduled trigger.
type ProcessReport struct {
	Sync      bool
	Outcomes  []FeedProcessOutcome
	StartedAt time.Time
	Duration  time.Duration
}

func (r ProcessReport) Count(status ProcessStatus) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// FeedStats summarises an owner's subscriptions for the dashboard.
type FeedStats struct {
	FeedsCount      int
	FeedItemsCount  int
	LastProcessedAt *time.Time
	LatestFeedName  string
}
