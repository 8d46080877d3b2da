package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/PAIR-Systems-Inc/cohere4go/cmd/cohere/commands"
	"github.com/PAIR-Systems-Inc/cohere4go/internal/signal"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	// Context cancellation on SIGINT/SIGTERM propagates to all commands.
	err := signal.SetUpHandler(context.Background(), os.Stderr, func(ctx context.Context) error {
		return commands.Execute(ctx, os.Args, version, commit)
	})
	if err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}
