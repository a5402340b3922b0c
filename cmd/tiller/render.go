package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/tillerhq/tiller"
)

var (
	renderRepo    string
	renderRepoDir string
)

var renderCmd = &cobra.Command{
	Use:   "render [system|example]",
	Short: "Render a prompt template",
	Long: `Render the system or example prompt template from the prompt directory.
Pass --repo and --repo-dir to render with a repository context.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"system", "example"},
	Run: func(cmd *cobra.Command, args []string) {
		manager, err := tiller.New(context.Background(), promptDir,
			tiller.WithMicroagentDir(""), // rendering needs no microagents
			tiller.WithLogger(slog.Default()),
		)
		if err != nil {
			fatal("Failed to initialize manager", err)
		}

		if renderRepo != "" || renderRepoDir != "" {
			manager.SetRepositoryInfo(renderRepo, renderRepoDir)
		}

		var out string
		switch args[0] {
		case "system":
			out, err = manager.GetSystemMessage()
		case "example":
			out, err = manager.GetExampleUserMessage()
		default:
			fatal("Unknown template", fmt.Errorf("%q is not one of: system, example", args[0]))
		}
		if err != nil {
			fatal("Failed to render template", err)
		}

		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVar(&renderRepo, "repo", "", "Repository name (e.g. owner/repo)")
	renderCmd.Flags().StringVar(&renderRepoDir, "repo-dir", "", "Local repository directory")
}
