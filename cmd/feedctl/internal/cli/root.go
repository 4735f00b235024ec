// Package cli implements the feedctl commands. They run against the database directly,
// not through the HTTP API.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"feedhub/cmd/feedctl/internal/output"
	"feedhub/config"
	"feedhub/di"
	"feedhub/driver/feed_db"
	"feedhub/driver/redis_stream"
	"feedhub/utils/logger"

	"github.com/spf13/cobra"
)

var (
	colorFlag string
	verbose   bool
	version   = "dev"
)

// application is what a command needs to run.
type application struct {
	cfg       *config.Config
	container *di.ApplicationComponents
	stream    *redis_stream.RedisStreamDriver
	close     func()
}

// openApplication is replaced in tests.
var openApplication = func(ctx context.Context) (*application, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	pool, err := feed_db.InitDBPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := feed_db.NewFeedDBRepository(pool).EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	stream, err := di.OpenEventStream(ctx, cfg.Events)
	if err != nil {
		pool.Close()
		return nil, err
	}

	container := di.NewApplicationComponents(cfg, pool, stream)
	return &application{
		cfg:       cfg,
		container: container,
		stream:    stream,
		close: func() {
			container.Shutdown()
			if stream != nil {
				_ = stream.Close()
			}
			pool.Close()
		},
	}, nil
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedctl",
		Short: "Operate the feedhub ingestion pipeline",
		Long: `feedctl registers, lists and processes RSS/Atom feeds against the feedhub database.

Example usage:
  feedctl process --sync              # Ingest every feed now and report per feed
  feedctl process                     # Queue every feed and wait for the queue to drain
  feedctl register --user <uuid> --name Example --url https://example.com/rss.xml
  feedctl list --user <uuid>          # Show a user's feeds
  feedctl events --count 20           # Show recent events from the Redis stream`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initLogger(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "color output: auto, always or never")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline activity to stderr")

	cmd.AddCommand(newProcessCmd(), newRegisterCmd(), newListCmd(), newEventsCmd(), newVersionCmd())
	return cmd
}

// Execute runs the root command; ctx cancellation aborts long-running commands.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func SetVersion(v string) {
	version = v
}

func initLogger(w io.Writer) error {
	level := "warn"
	if verbose {
		level = "debug"
	}
	logger.Logger = slog.New(logger.NewHandler(w, level, "text"))
	return nil
}

func newPrinter(cmd *cobra.Command) (*output.Printer, error) {
	mode, err := output.ParseColorMode(colorFlag)
	if err != nil {
		return nil, err
	}
	return output.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ResolveColors(mode)), nil
}

// withApplication opens the application for the duration of fn.
func withApplication(cmd *cobra.Command, fn func(app *application, printer *output.Printer) error) error {
	printer, err := newPrinter(cmd)
	if err != nil {
		return err
	}

	app, err := openApplication(cmd.Context())
	if err != nil {
		return err
	}
	defer app.close()

	return fn(app, printer)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the feedctl version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "feedctl "+version)
		},
	}
}
