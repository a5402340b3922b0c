package platform

import (
	"context"

	"github.com/tillerhq/tiller/pkg/adapters/fs"
	"github.com/tillerhq/tiller/pkg/core"
)

// New wires the default filesystem adapters into a prompt manager.
//
//	manager, err := tiller.New(ctx, "./prompts", tiller.WithMicroagentDir("./prompts/micro"))
//
// Construction loads every microagent eagerly; any parse failure aborts and
// no partially-initialized manager escapes.
func New(ctx context.Context, promptDir string, opts ...Option) (*core.Manager, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	renderer := o.renderer
	if renderer == nil {
		renderer = fs.NewRenderer(promptDir)
	}

	loader := o.loader
	if loader == nil {
		dir := promptDir
		if o.microagentDir != nil {
			dir = *o.microagentDir
		}
		if dir != "" {
			loader = fs.NewLoader(fs.Config{Dir: dir, Logger: o.logger})
		}
	}

	return core.NewManager(ctx, loader, renderer, o.disabled)
}

// NewLoader exposes the default filesystem loader for callers that manage
// reload themselves (e.g. the watch command).
func NewLoader(dir string, opts ...Option) *fs.Loader {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return fs.NewLoader(fs.Config{Dir: dir, Logger: o.logger})
}
