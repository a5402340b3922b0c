package tiller

import (
	"context"
	"log/slog"

	"github.com/tillerhq/tiller/internal/platform"
	"github.com/tillerhq/tiller/pkg/core"
)

// Version exposes the version of the library.
// See version.go for the implementation using go:embed.

// --- Types ---

// Manager is a public alias for the prompt manager.
type Manager = core.Manager

// Microagent is a public alias for the microagent model.
type Microagent = core.Microagent

// RepositoryInfo is a public alias for the repository context record.
type RepositoryInfo = core.RepositoryInfo

// Message, TextContent and ImageContent are public aliases for the
// conversation message collaborator types.
type (
	Message      = core.Message
	TextContent  = core.TextContent
	ImageContent = core.ImageContent
)

// --- Configuration ---

// Option defines a functional option for configuring the manager.
type Option = platform.Option

// WithMicroagentDir sets the microagent directory. The empty string
// disables microagent loading. Defaults to the prompt directory.
func WithMicroagentDir(dir string) Option {
	return platform.WithMicroagentDir(dir)
}

// WithDisabledMicroagents filters out microagents by display name at load
// time.
func WithDisabledMicroagents(names []string) Option {
	return platform.WithDisabledMicroagents(names)
}

// WithLogger sets the logger for the loader.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithLoader allows injecting a custom microagent source.
func WithLoader(loader core.Loader) Option {
	return platform.WithLoader(loader)
}

// WithRenderer allows injecting a custom template renderer.
func WithRenderer(renderer core.Renderer) Option {
	return platform.WithRenderer(renderer)
}

// --- Factory ---

// New creates a prompt manager for one agent session. Microagents are
// loaded eagerly; a load failure means no manager.
func New(ctx context.Context, promptDir string, opts ...Option) (*core.Manager, error) {
	return platform.New(ctx, promptDir, opts...)
}
