package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tillerhq/tiller"
	"github.com/tillerhq/tiller/internal/platform"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the prompt directory and revalidate on change",
	Long: `Watch microagent documents for changes. Each change constructs a fresh
manager (full reload), so the running registry is always a consistent
snapshot. Press Ctrl-C to stop.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		logger := slog.Default()
		loader := platform.NewLoader(promptDir, platform.WithLogger(logger))

		events, err := loader.Watch(ctx)
		if err != nil {
			fatal("Failed to start watcher", err)
		}

		rebuild := func() {
			manager, err := tiller.New(ctx, promptDir, tiller.WithLogger(logger))
			if err != nil {
				logger.Error("reload failed", "error", err)
				return
			}
			fmt.Printf("reloaded: %d knowledge, %d repo microagent(s)\n",
				len(manager.KnowledgeMicroagents()), len(manager.RepoMicroagents()))
		}

		rebuild()
		for event := range events {
			logger.Info("microagent change", "type", string(event.Type), "path", event.Path)
			rebuild()
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
