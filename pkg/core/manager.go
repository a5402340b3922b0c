package core

import (
	"context"
	"fmt"
	"sync"
)

// Marker tags for the repository-info block injected into the initial
// user message.
const (
	RepoInfoOpenTag  = "<REPOSITORY_INFO>"
	RepoInfoCloseTag = "</REPOSITORY_INFO>"
)

// Tags framing microagent content appended by EnhanceMessage.
const (
	extraInfoOpenTag  = "<EXTRA_INFO>"
	extraInfoCloseTag = "</EXTRA_INFO>"
)

// RepositoryInfo names the active repository and its local clone directory.
// Both fields are set together; the record is never partially populated.
type RepositoryInfo struct {
	RepoName      string
	RepoDirectory string
}

// Manager orchestrates the microagent registry, the template renderer and
// the optional repository context. It is constructed once per agent
// session; the registry is loaded eagerly and a load failure leaves no
// usable manager behind.
type Manager struct {
	registry *Registry
	renderer Renderer

	mu             sync.RWMutex
	repositoryInfo *RepositoryInfo
}

// NewManager loads all microagents through the loader and wires the
// renderer. loader may be nil for sessions without microagents.
func NewManager(ctx context.Context, loader Loader, renderer Renderer, disabled []string) (*Manager, error) {
	var agents []Microagent
	if loader != nil {
		var err error
		agents, err = loader.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load microagents: %w", err)
		}
	}

	registry, err := NewRegistry(agents, disabled)
	if err != nil {
		return nil, err
	}

	return &Manager{
		registry: registry,
		renderer: renderer,
	}, nil
}

// KnowledgeMicroagents returns the loaded knowledge microagents in
// insertion order.
func (m *Manager) KnowledgeMicroagents() []Microagent {
	return m.registry.Knowledge()
}

// RepoMicroagents returns the loaded repo microagents in insertion order.
func (m *Manager) RepoMicroagents() []Microagent {
	return m.registry.Repo()
}

// Registry exposes the read-only registry.
func (m *Manager) Registry() *Registry {
	return m.registry
}

// SetRepositoryInfo attaches the repository context for this session.
// Calling it again replaces both fields atomically. The path is not
// validated. Callers are expected to set it once, early, and serialize
// writes relative to renders.
func (m *Manager) SetRepositoryInfo(repoName, repoDirectory string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.repositoryInfo = &RepositoryInfo{
		RepoName:      repoName,
		RepoDirectory: repoDirectory,
	}
}

// RepositoryInfo returns the current repository context, or nil when none
// has been set.
func (m *Manager) RepositoryInfo() *RepositoryInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.repositoryInfo
}

// GetSystemMessage renders the system prompt with the current repository
// context (or its absence).
func (m *Manager) GetSystemMessage() (string, error) {
	return m.renderer.RenderSystem(RenderContext{RepositoryInfo: m.RepositoryInfo()})
}

// GetExampleUserMessage renders the example user prompt.
func (m *Manager) GetExampleUserMessage() (string, error) {
	return m.renderer.RenderExample(RenderContext{RepositoryInfo: m.RepositoryInfo()})
}

// AddInfoToInitialMessage appends the repository-info block to the payload
// of the first text segment of msg. Without a repository context, or on a
// message with no text segment, it is a no-op.
//
// The block is merged into the existing segment rather than appended as a
// new one; downstream consumers depend on the initial message keeping its
// segment count.
func (m *Manager) AddInfoToInitialMessage(msg *Message) {
	info := m.RepositoryInfo()
	if info == nil || msg == nil {
		return
	}

	seg, ok := msg.FirstText()
	if !ok {
		return
	}

	block := fmt.Sprintf(
		"%s\nAt the user's request, repository %s has been cloned to directory %s.\n%s",
		RepoInfoOpenTag, info.RepoName, info.RepoDirectory, RepoInfoCloseTag,
	)
	seg.Text = seg.Text + "\n\n" + block
}

// EnhanceMessage scans the last text segment of msg (skipping trailing
// media segments) against every knowledge microagent's triggers and
// appends one text segment per match, in registry insertion order. The
// microagent body is included verbatim. Media segments are never inspected
// or mutated and existing segments are never removed or reordered.
func (m *Manager) EnhanceMessage(msg *Message) {
	if msg == nil {
		return
	}

	seg, ok := msg.LastText()
	if !ok {
		return
	}

	for _, agent := range m.registry.Knowledge() {
		trigger, matched := agent.MatchTrigger(seg.Text)
		if !matched {
			continue
		}
		msg.Content = append(msg.Content, &TextContent{
			Text: frameExtraInfo(agent, trigger),
		})
	}
}

// frameExtraInfo wraps a microagent body with a traceability header naming
// the microagent and the matched trigger. The body itself is unmodified.
func frameExtraInfo(agent Microagent, trigger string) string {
	return fmt.Sprintf(
		"%s\nThe following information (microagent %q) has been included based on a keyword match for %q. It may or may not be relevant to the user's request.\n\n%s\n%s",
		extraInfoOpenTag, agent.Name(), trigger, agent.Body, extraInfoCloseTag,
	)
}
