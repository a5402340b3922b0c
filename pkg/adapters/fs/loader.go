package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/tillerhq/tiller/pkg/core"
)

// MicroDir is the conventional subdirectory scanned recursively for
// knowledge microagents.
const MicroDir = "micro"

// Loader implements core.Loader over a directory of microagent documents.
type Loader struct {
	config Config

	mu            sync.RWMutex
	watcherActive bool
	lastLoadCount int
}

// Config holds the configuration for the filesystem loader.
type Config struct {
	// Dir is the microagent directory. Documents directly under it are
	// loaded, plus everything under Dir/micro recursively.
	Dir    string
	Logger *slog.Logger
}

// NewLoader creates a new filesystem-backed microagent loader.
func NewLoader(config Config) *Loader {
	return &Loader{config: config}
}

// Load enumerates and parses every microagent document.
//
// Workflow:
//  1. List *.md files directly under Dir (lexical order).
//  2. Glob Dir/micro/**/*.md recursively (lexical order).
//  3. Parse each file; the first malformed document aborts the load.
//
// A missing directory yields zero microagents so sessions without
// repository customization keep working.
func (l *Loader) Load(ctx context.Context) ([]core.Microagent, error) {
	if l.config.Dir == "" {
		return nil, nil
	}
	if _, err := os.Stat(l.config.Dir); os.IsNotExist(err) {
		return nil, nil
	}

	paths, err := l.documentPaths()
	if err != nil {
		return nil, err
	}

	var agents []core.Microagent
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		agent, err := ParseFile(path)
		if err != nil {
			return nil, err
		}
		if l.config.Logger != nil {
			l.config.Logger.Debug("loaded microagent",
				"name", agent.Name(),
				"type", string(agent.Metadata.Kind),
				"path", path,
			)
		}
		agents = append(agents, agent)
	}

	l.mu.Lock()
	l.lastLoadCount = len(agents)
	l.mu.Unlock()

	return agents, nil
}

// documentPaths returns every candidate document path in deterministic
// lexical order: direct children first, then the recursive micro tree.
func (l *Loader) documentPaths() ([]string, error) {
	entries, err := os.ReadDir(l.config.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read microagent directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		paths = append(paths, filepath.Join(l.config.Dir, entry.Name()))
	}

	pattern := filepath.Join(l.config.Dir, MicroDir, "**", "*.md")
	nested, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to glob %s: %w", pattern, err)
	}
	sort.Strings(nested)

	return append(paths, nested...), nil
}
