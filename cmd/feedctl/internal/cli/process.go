package cli

import (
	"context"
	"fmt"
	"time"

	"feedhub/cmd/feedctl/internal/output"
	"feedhub/domain"
	"feedhub/usecase/process_feeds_usecase"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const drainPollInterval = 200 * time.Millisecond

func newProcessCmd() *cobra.Command {
	var (
		sync  bool
		owner string
	)

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Ingest registered feeds",
		Long: `Fetch and ingest registered feeds.

With --sync every feed is ingested in this process and each outcome is printed.
Without it feeds go through the ingestion queue with retries, and the command
waits until the queue has drained.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var ownerID uuid.UUID
			if owner != "" {
				id, err := uuid.Parse(owner)
				if err != nil {
					return fmt.Errorf("invalid --user: %w", err)
				}
				ownerID = id
			}

			return withApplication(cmd, func(app *application, printer *output.Printer) error {
				return runProcess(cmd.Context(), app, printer, ownerID, sync)
			})
		},
	}

	cmd.Flags().BoolVar(&sync, "sync", false, "ingest in this process without the queue")
	cmd.Flags().StringVar(&owner, "user", "", "only process feeds owned by this user id")
	return cmd
}

func runProcess(ctx context.Context, app *application, printer *output.Printer, ownerID uuid.UUID, sync bool) error {
	if !sync {
		app.container.Start(ctx, false)
	}

	usecase := app.container.ProcessFeedsUsecase
	var (
		report domain.ProcessReport
		err    error
	)
	if ownerID != uuid.Nil {
		report, err = usecase.ProcessOwner(ctx, ownerID, sync)
	} else {
		report, err = usecase.ProcessAll(ctx, sync)
	}
	if err != nil {
		return err
	}

	if len(report.Outcomes) == 0 {
		printer.Info(process_feeds_usecase.NoFeedsMessage)
		return nil
	}

	if sync {
		printOutcomes(printer, report)
		if failed := report.Count(domain.ProcessStatusFailed); failed > 0 {
			return fmt.Errorf("%d of %d feeds failed", failed, len(report.Outcomes))
		}
		return nil
	}

	for _, o := range report.Outcomes {
		if o.Status == domain.ProcessStatusFailed {
			printer.Error("%s: could not be queued: %v", o.FeedName, o.Err)
		}
	}
	printer.Info("Queued %d feed(s); waiting for ingestion to finish", report.Count(domain.ProcessStatusQueued))

	if err := waitForDrain(ctx, app); err != nil {
		return err
	}
	printer.Success("Ingestion queue drained")
	return nil
}

func printOutcomes(printer *output.Printer, report domain.ProcessReport) {
	printer.Header("Feed processing")
	for _, o := range report.Outcomes {
		switch o.Status {
		case domain.ProcessStatusSucceeded:
			printer.Success("%s: %d item(s) processed", o.FeedName, o.ItemsProcessed)
		default:
			printer.Error("%s: %v", o.FeedName, o.Err)
		}
	}
	printer.Info("\n%d succeeded, %d failed in %s",
		report.Count(domain.ProcessStatusSucceeded),
		report.Count(domain.ProcessStatusFailed),
		report.Duration.Round(time.Millisecond))
}

func waitForDrain(ctx context.Context, app *application) error {
	ticker := time.NewTicker(drainPollInterval)
	defer ticker.Stop()

	for app.container.IngestionQueue.InFlight() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}
