package job

import (
	"context"

	"feedhub/domain"
	"feedhub/utils/logger"
)

const IngestionSweepJobName = "ingestion-sweep"

type feedTrigger interface {
	ProcessAll(ctx context.Context, sync bool) (domain.ProcessReport, error)
}

// IngestionSweepJob returns a function suitable for the JobScheduler that queues
// every registered feed.
func IngestionSweepJob(trigger feedTrigger) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		report, err := trigger.ProcessAll(ctx, false)
		if err != nil {
			return err
		}
		logger.Logger.InfoContext(ctx, "Ingestion sweep queued feeds",
			"queued", report.Count(domain.ProcessStatusQueued),
			"failed", report.Count(domain.ProcessStatusFailed))
		return nil
	}
}
