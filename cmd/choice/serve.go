package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/praetorian-inc/choice/pkg/serve"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run as streaming server for editor and tool integrations",
	Long: `Run Choice as a long-lived streaming server that accepts selection requests
via stdin and answers via stdout using NDJSON format.

Request types are "parse", "contains", "expand" and "close". The process
answers with a "ready" line at startup and handles requests until stdin
closes or SIGTERM is received.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	// Create and run server
	srv := serve.NewServer(zlog.Named("serve"), cmd.InOrStdin(), cmd.OutOrStdout())
	return srv.Run(ctx)
}
