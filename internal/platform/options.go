package platform

import (
	"log/slog"

	"github.com/tillerhq/tiller/pkg/core"
)

// options holds the internal configuration for the prompt manager.
type options struct {
	loader        core.Loader
	renderer      core.Renderer
	logger        *slog.Logger
	microagentDir *string
	disabled      []string
}

// Option defines a functional option for configuring the manager.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{}
}

// WithMicroagentDir sets the microagent directory. The empty string
// disables microagent loading entirely. Defaults to the prompt directory.
func WithMicroagentDir(dir string) Option {
	return func(o *options) {
		o.microagentDir = &dir
	}
}

// WithDisabledMicroagents filters out microagents by display name at load
// time.
func WithDisabledMicroagents(names []string) Option {
	return func(o *options) {
		o.disabled = names
	}
}

// WithLogger sets the logger for the loader.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLoader allows injecting a custom microagent source (e.g. mock,
// embedded). If provided, the default filesystem loader is skipped.
func WithLoader(loader core.Loader) Option {
	return func(o *options) {
		o.loader = loader
	}
}

// WithRenderer allows injecting a custom template renderer.
func WithRenderer(renderer core.Renderer) Option {
	return func(o *options) {
		o.renderer = renderer
	}
}
