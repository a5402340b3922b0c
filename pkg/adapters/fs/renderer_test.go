package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tillerhq/tiller/pkg/adapters/fs"
	"github.com/tillerhq/tiller/pkg/core"
)

func setupTemplates(t *testing.T, system, example string) string {
	t.Helper()
	dir := t.TempDir()
	if system != "" {
		if err := os.WriteFile(filepath.Join(dir, fs.SystemTemplateFile), []byte(system), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if example != "" {
		if err := os.WriteFile(filepath.Join(dir, fs.ExampleTemplateFile), []byte(example), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestRenderer(t *testing.T) {
	t.Run("Plain Templates", func(t *testing.T) {
		dir := setupTemplates(t, "System prompt: bar", "User prompt: foo")
		r := fs.NewRenderer(dir)

		system, err := r.RenderSystem(core.RenderContext{})
		if err != nil {
			t.Fatalf("RenderSystem failed: %v", err)
		}
		if system != "System prompt: bar" {
			t.Errorf("unexpected output: %q", system)
		}

		example, err := r.RenderExample(core.RenderContext{})
		if err != nil {
			t.Fatalf("RenderExample failed: %v", err)
		}
		if example != "User prompt: foo" {
			t.Errorf("unexpected output: %q", example)
		}
	})

	t.Run("Repository Section Renders Empty Without Context", func(t *testing.T) {
		tmpl := "base{{if .RepositoryInfo}} repo={{.RepositoryInfo.RepoName}} dir={{.RepositoryInfo.RepoDirectory}}{{end}}"
		dir := setupTemplates(t, tmpl, "")
		r := fs.NewRenderer(dir)

		out, err := r.RenderSystem(core.RenderContext{})
		if err != nil {
			t.Fatalf("RenderSystem failed: %v", err)
		}
		if out != "base" {
			t.Errorf("repository section should render empty, got %q", out)
		}

		out, err = r.RenderSystem(core.RenderContext{
			RepositoryInfo: &core.RepositoryInfo{RepoName: "owner/repo", RepoDirectory: "/workspace/repo"},
		})
		if err != nil {
			t.Fatalf("RenderSystem failed: %v", err)
		}
		if !strings.Contains(out, "repo=owner/repo") || !strings.Contains(out, "dir=/workspace/repo") {
			t.Errorf("expected repository fields in output, got %q", out)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		dir := setupTemplates(t, "stable output", "")
		r := fs.NewRenderer(dir)

		rc := core.RenderContext{RepositoryInfo: &core.RepositoryInfo{RepoName: "a/b", RepoDirectory: "/w"}}
		first, err := r.RenderSystem(rc)
		if err != nil {
			t.Fatal(err)
		}
		second, err := r.RenderSystem(rc)
		if err != nil {
			t.Fatal(err)
		}
		if first != second {
			t.Errorf("rendering is not idempotent: %q vs %q", first, second)
		}
	})

	t.Run("Missing Template", func(t *testing.T) {
		r := fs.NewRenderer(t.TempDir())

		if _, err := r.RenderSystem(core.RenderContext{}); !errors.Is(err, core.ErrTemplateNotFound) {
			t.Fatalf("expected ErrTemplateNotFound, got %v", err)
		}
		if _, err := r.RenderExample(core.RenderContext{}); !errors.Is(err, core.ErrTemplateNotFound) {
			t.Fatalf("expected ErrTemplateNotFound, got %v", err)
		}
	})
}
