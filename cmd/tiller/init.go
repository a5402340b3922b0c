package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tillerhq/tiller/pkg/adapters/fs"
	"github.com/tillerhq/tiller/pkg/core"
)

const defaultSystemTemplate = `You are a helpful AI agent that can interact with a computer to solve tasks.
{{- if .RepositoryInfo}}

<REPOSITORY_INFO>
At the user's request, repository {{.RepositoryInfo.RepoName}} has been cloned to directory {{.RepositoryInfo.RepoDirectory}}.
</REPOSITORY_INFO>
{{- end}}
`

const defaultExampleTemplate = `Here is an example of how you can interact with the environment for task solving:

--- START OF EXAMPLE ---
USER: Please write a small hello-world HTTP server and run it.
ASSISTANT: Sure! Let me create the file and start the server.
--- END OF EXAMPLE ---
`

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a prompt directory",
	Long: `Create the prompt templates and a sample knowledge microagent in the
prompt directory. Existing files are left untouched.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := os.MkdirAll(filepath.Join(promptDir, fs.MicroDir), 0755); err != nil {
			fatal("Failed to create prompt directory", err)
		}

		wrote, err := writeIfAbsent(filepath.Join(promptDir, fs.SystemTemplateFile), []byte(defaultSystemTemplate))
		if err != nil {
			fatal("Failed to write system template", err)
		}
		report(fs.SystemTemplateFile, wrote)

		wrote, err = writeIfAbsent(filepath.Join(promptDir, fs.ExampleTemplateFile), []byte(defaultExampleTemplate))
		if err != nil {
			fatal("Failed to write example template", err)
		}
		report(fs.ExampleTemplateFile, wrote)

		sample := core.Microagent{
			Metadata: core.Metadata{
				Name:     "sample",
				Kind:     core.KindKnowledge,
				Agent:    "TillerAgent",
				Triggers: []string{"tiller"},
			},
			Body: "The user mentioned tiller. Tiller is this project's prompt engine;\nremind them that `tiller list` shows every loaded microagent.",
		}
		data, err := fs.Serialize(sample)
		if err != nil {
			fatal("Failed to serialize sample microagent", err)
		}
		samplePath := filepath.Join(promptDir, fs.MicroDir, "sample.md")
		wrote, err = writeIfAbsent(samplePath, data)
		if err != nil {
			fatal("Failed to write sample microagent", err)
		}
		report(filepath.Join(fs.MicroDir, "sample.md"), wrote)

		fmt.Println("Initialized prompt directory in", promptDir)
	},
}

func writeIfAbsent(path string, data []byte) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}
	return true, os.WriteFile(path, data, 0644)
}

func report(name string, wrote bool) {
	if wrote {
		fmt.Println("  created", name)
	} else {
		fmt.Println("  skipped", name, "(already exists)")
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
