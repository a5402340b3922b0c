package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/tillerhq/tiller"
	"github.com/tillerhq/tiller/pkg/core"
)

var (
	listJSON bool
	listKind string
)

// listEntry is the JSON shape for one microagent.
type listEntry struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Agent    string   `json:"agent,omitempty"`
	Triggers []string `json:"triggers,omitempty"`
	Source   string   `json:"source"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all loaded microagents",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		manager, err := tiller.New(context.Background(), promptDir,
			tiller.WithLogger(slog.Default()),
		)
		if err != nil {
			fatal("Failed to load microagents", err)
		}

		var agents []core.Microagent
		if listKind != "repo" {
			agents = append(agents, manager.KnowledgeMicroagents()...)
		}
		if listKind != "knowledge" {
			agents = append(agents, manager.RepoMicroagents()...)
		}

		if listJSON {
			entries := make([]listEntry, 0, len(agents))
			for _, agent := range agents {
				entries = append(entries, listEntry{
					Name:     agent.Name(),
					Type:     string(agent.Metadata.Kind),
					Agent:    agent.Metadata.Agent,
					Triggers: agent.Metadata.Triggers,
					Source:   agent.Source,
				})
			}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(entries); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, agent := range agents {
			line := fmt.Sprintf("%s [%s]", agent.Name(), agent.Metadata.Kind)
			if len(agent.Metadata.Triggers) > 0 {
				line += fmt.Sprintf(" triggers=%v", agent.Metadata.Triggers)
			}
			fmt.Println(line)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listKind, "kind", "", "Filter by kind (knowledge|repo)")
}
