package fs

import (
	"github.com/aretw0/introspection"
)

// LoaderState exposes internal state for observability.
type LoaderState struct {
	Dir           string `json:"dir"`
	WatcherActive bool   `json:"watcher_active"`
	LastLoadCount int    `json:"last_load_count"`
}

// State implements introspection.Introspectable.
func (l *Loader) State() any {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return LoaderState{
		Dir:           l.config.Dir,
		WatcherActive: l.watcherActive,
		LastLoadCount: l.lastLoadCount,
	}
}

// ComponentType implements introspection.Component.
func (l *Loader) ComponentType() string {
	return "microagent-loader"
}

var _ introspection.Introspectable = (*Loader)(nil)
var _ introspection.Component = (*Loader)(nil)

func (l *Loader) setWatcherActive(active bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.watcherActive = active
}
