package core

import (
	"github.com/aretw0/introspection"
)

// ManagerState exposes internal state for observability.
type ManagerState struct {
	KnowledgeMicroagents int  `json:"knowledge_microagents"`
	RepoMicroagents      int  `json:"repo_microagents"`
	RepositoryInfoSet    bool `json:"repository_info_set"`
}

// State implements introspection.Introspectable.
func (m *Manager) State() any {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return ManagerState{
		KnowledgeMicroagents: m.registry.KnowledgeCount(),
		RepoMicroagents:      m.registry.RepoCount(),
		RepositoryInfoSet:    m.repositoryInfo != nil,
	}
}

// ComponentType implements introspection.Component.
func (m *Manager) ComponentType() string {
	return "prompt-manager"
}

var _ introspection.Introspectable = (*Manager)(nil)
var _ introspection.Component = (*Manager)(nil)
