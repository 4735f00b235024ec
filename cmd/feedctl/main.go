// Command feedctl operates the feedhub ingestion pipeline from the shell.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"feedhub/cmd/feedctl/internal/cli"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	if err := cli.Execute(ctx); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		stop()
		os.Exit(1)
	}
}
