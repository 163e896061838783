// Package main is the entry point of the Payzee dashboard server.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"payzee/cmd/server/daemon"
)

func main() {
	a, err := daemon.New()
	if err != nil {
		slog.Error("failed to set up command", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil {
		slog.Error(err.Error())
		if a.UsageError() {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
