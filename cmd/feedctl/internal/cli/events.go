package cli

import (
	"errors"
	"time"

	"feedhub/cmd/feedctl/internal/output"

	"github.com/spf13/cobra"
)

var errStreamDisabled = errors.New("event stream is disabled; set EVENTS_REDIS_ENABLED=true")

func newEventsCmd() *cobra.Command {
	var count int64

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Show recent feed events from the Redis stream",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApplication(cmd, func(app *application, printer *output.Printer) error {
				if app.stream == nil {
					return errStreamDisabled
				}

				messages, err := app.stream.Latest(cmd.Context(), app.cfg.Events.StreamKey, count)
				if err != nil {
					return err
				}
				if len(messages) == 0 {
					printer.Info("No events in %s.", app.cfg.Events.StreamKey)
					return nil
				}

				table := output.NewTable(printer.Out(), []string{"Stream ID", "Type", "Feed", "Created"})
				for _, msg := range messages {
					table.AddRow(msg.ID, msg.EventType, msg.Metadata["feed_id"], msg.CreatedAt.Format(time.RFC3339))
				}
				return table.Render()
			})
		},
	}

	cmd.Flags().Int64Var(&count, "count", 20, "number of events to show, newest first")
	return cmd
}
