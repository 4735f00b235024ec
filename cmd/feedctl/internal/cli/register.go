package cli

import (
	"fmt"

	"feedhub/cmd/feedctl/internal/output"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newRegisterCmd() *cobra.Command {
	var owner, name, rawURL string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a feed for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, err := uuid.Parse(owner)
			if err != nil {
				return fmt.Errorf("invalid --user: %w", err)
			}

			return withApplication(cmd, func(app *application, printer *output.Printer) error {
				feed, err := app.container.RegisterFeedUsecase.Execute(cmd.Context(), ownerID, name, rawURL)
				if err != nil {
					return err
				}
				printer.Success("Registered %s (%s)", feed.Name.String(), feed.ID())
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&owner, "user", "", "owner user id")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&rawURL, "url", "", "feed url")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("url")
	return cmd
}
