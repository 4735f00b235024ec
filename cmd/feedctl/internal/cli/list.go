package cli

import (
	"fmt"
	"time"

	"feedhub/cmd/feedctl/internal/output"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List a user's feeds",
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, err := uuid.Parse(owner)
			if err != nil {
				return fmt.Errorf("invalid --user: %w", err)
			}

			return withApplication(cmd, func(app *application, printer *output.Printer) error {
				feeds, err := app.container.ListFeedsUsecase.Execute(cmd.Context(), ownerID)
				if err != nil {
					return err
				}
				if len(feeds) == 0 {
					printer.Info("No feeds registered.")
					return nil
				}

				stats, err := app.container.DashboardUsecase.Execute(cmd.Context(), ownerID)
				if err != nil {
					return err
				}

				table := output.NewTable(printer.Out(), []string{"ID", "Name", "URL", "Last Processed"})
				for _, feed := range feeds {
					lastProcessed := "never"
					if feed.LastProcessedAt != nil {
						lastProcessed = feed.LastProcessedAt.Format(time.RFC3339)
					}
					table.AddRow(feed.ID().String(), feed.Name.String(), feed.URL.String(), lastProcessed)
				}
				if err := table.Render(); err != nil {
					return err
				}

				printer.Info("\n%d feed(s), %d item(s)", stats.FeedsCount, stats.FeedItemsCount)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&owner, "user", "", "owner user id")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
