package core

import "fmt"

// Registry partitions loaded microagents by kind, keyed by display name.
// Insertion order is preserved so trigger matching stays deterministic.
// The registry is read-only after construction; content changes are handled
// by building a new manager.
type Registry struct {
	knowledgeNames []string
	knowledge      map[string]Microagent
	repoNames      []string
	repo           map[string]Microagent
}

// NewRegistry builds a registry from microagents in load order, discarding
// any whose display name appears in disabled. A duplicate name within a
// partition is an error rather than a silent overwrite.
func NewRegistry(agents []Microagent, disabled []string) (*Registry, error) {
	off := make(map[string]bool, len(disabled))
	for _, name := range disabled {
		off[name] = true
	}

	r := &Registry{
		knowledge: make(map[string]Microagent),
		repo:      make(map[string]Microagent),
	}

	for _, agent := range agents {
		name := agent.Name()
		if off[name] {
			continue
		}
		switch agent.Metadata.Kind {
		case KindKnowledge:
			if _, exists := r.knowledge[name]; exists {
				return nil, fmt.Errorf("duplicate knowledge microagent %q (from %s)", name, agent.Source)
			}
			r.knowledge[name] = agent
			r.knowledgeNames = append(r.knowledgeNames, name)
		case KindRepo:
			if _, exists := r.repo[name]; exists {
				return nil, fmt.Errorf("duplicate repo microagent %q (from %s)", name, agent.Source)
			}
			r.repo[name] = agent
			r.repoNames = append(r.repoNames, name)
		default:
			return nil, fmt.Errorf("%w: unknown microagent type %q", ErrMalformedMetadata, agent.Metadata.Kind)
		}
	}

	return r, nil
}

// Knowledge returns the knowledge microagents in insertion order.
func (r *Registry) Knowledge() []Microagent {
	out := make([]Microagent, 0, len(r.knowledgeNames))
	for _, name := range r.knowledgeNames {
		out = append(out, r.knowledge[name])
	}
	return out
}

// Repo returns the repo microagents in insertion order.
func (r *Registry) Repo() []Microagent {
	out := make([]Microagent, 0, len(r.repoNames))
	for _, name := range r.repoNames {
		out = append(out, r.repo[name])
	}
	return out
}

// KnowledgeByName looks up a knowledge microagent by display name.
func (r *Registry) KnowledgeByName(name string) (Microagent, bool) {
	m, ok := r.knowledge[name]
	return m, ok
}

// RepoByName looks up a repo microagent by display name.
func (r *Registry) RepoByName(name string) (Microagent, bool) {
	m, ok := r.repo[name]
	return m, ok
}

// KnowledgeCount returns the number of knowledge microagents.
func (r *Registry) KnowledgeCount() int { return len(r.knowledgeNames) }

// RepoCount returns the number of repo microagents.
func (r *Registry) RepoCount() int { return len(r.repoNames) }
