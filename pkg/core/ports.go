package core

import "context"

// Loader defines the contract for sourcing microagents.
// Adhering to this interface keeps the core independent of the underlying
// storage mechanism (filesystem today, anything else tomorrow).
type Loader interface {
	// Load returns all microagents in deterministic order.
	// A missing source is zero microagents, not an error; a malformed
	// document aborts the whole load.
	Load(ctx context.Context) ([]Microagent, error)
}

// RenderContext carries the variables recognized by prompt templates.
// A nil RepositoryInfo renders repository sections empty.
type RenderContext struct {
	RepositoryInfo *RepositoryInfo
}

// Renderer defines the contract for rendering the prompt templates.
type Renderer interface {
	// RenderSystem renders the system prompt template.
	RenderSystem(rc RenderContext) (string, error)

	// RenderExample renders the example user prompt template.
	RenderExample(rc RenderContext) (string, error)
}

// Watchable is implemented by loaders that can observe source changes.
type Watchable interface {
	// Watch emits an event per (debounced) change to a microagent
	// document until ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}

// EventType represents the type of change in the microagent source.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a microagent document.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}
