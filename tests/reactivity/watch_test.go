package reactivity_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tillerhq/tiller/pkg/adapters/fs"
	"github.com/tillerhq/tiller/pkg/core"
)

const sampleDoc = `---
name: sample
type: knowledge
triggers:
- sample
---

Sample content.
`

func waitForEvent(t *testing.T, events <-chan core.Event, timeout time.Duration) core.Event {
	t.Helper()
	select {
	case e, ok := <-events:
		require.True(t, ok, "event channel closed before an event arrived")
		return e
	case <-time.After(timeout):
		t.Fatal("timed out waiting for a watch event")
		return core.Event{}
	}
}

func TestWatchEmitsOnDocumentCreate(t *testing.T) {
	dir := t.TempDir()
	loader := fs.NewLoader(fs.Config{Dir: dir})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := loader.Watch(ctx)
	require.NoError(t, err)

	path := filepath.Join(dir, "sample.md")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0644))

	e := waitForEvent(t, events, 5*time.Second)
	assert.Equal(t, path, e.Path)
	assert.NotZero(t, e.Timestamp)
}

func TestWatchIgnoresNonMarkdown(t *testing.T) {
	dir := t.TempDir()
	loader := fs.NewLoader(fs.Config{Dir: dir})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := loader.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))

	select {
	case e, ok := <-events:
		if ok {
			t.Fatalf("unexpected event for non-markdown file: %+v", e)
		}
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatchCoversNewSubdirectories(t *testing.T) {
	dir := t.TempDir()
	loader := fs.NewLoader(fs.Config{Dir: dir})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := loader.Watch(ctx)
	require.NoError(t, err)

	microDir := filepath.Join(dir, "micro")
	require.NoError(t, os.MkdirAll(microDir, 0755))

	// Give the watcher a beat to register the new directory.
	time.Sleep(200 * time.Millisecond)

	path := filepath.Join(microDir, "sample.md")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0644))

	e := waitForEvent(t, events, 5*time.Second)
	assert.Equal(t, path, e.Path)
}

func TestWatchClosesOnContextCancel(t *testing.T) {
	dir := t.TempDir()
	loader := fs.NewLoader(fs.Config{Dir: dir})

	ctx, cancel := context.WithCancel(context.Background())

	events, err := loader.Watch(ctx)
	require.NoError(t, err)

	cancel()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("event channel did not close after cancellation")
		}
	}
}
