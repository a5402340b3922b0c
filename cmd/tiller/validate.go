package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/tillerhq/tiller/internal/platform"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate every microagent document in the prompt directory",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		loader := platform.NewLoader(promptDir, platform.WithLogger(slog.Default()))

		agents, err := loader.Load(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid: %v\n", err)
			os.Exit(1)
		}

		for _, agent := range agents {
			fmt.Printf("ok: %s (%s)\n", agent.Source, agent.Name())
		}
		fmt.Printf("%d microagent(s) valid\n", len(agents))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
