// Microagent is the central entity of the domain.
package core

import (
	"fmt"
	"strings"
)

// Kind partitions microagents by how they participate in prompting.
type Kind string

const (
	// KindKnowledge marks trigger-activated microagents.
	KindKnowledge Kind = "knowledge"
	// KindRepo marks always-relevant, repository-scoped microagents.
	KindRepo Kind = "repo"
)

// Metadata is the structured header of a microagent document.
type Metadata struct {
	Name     string   `yaml:"name"`
	Kind     Kind     `yaml:"type"`
	Agent    string   `yaml:"agent,omitempty"`
	Triggers []string `yaml:"triggers,omitempty"`
}

// Microagent is a named, loadable unit of prompt content.
// It is immutable after load and owned by the registry that loaded it.
type Microagent struct {
	Metadata Metadata
	// Body is the document content after the metadata block,
	// preserved byte-for-byte apart from the leading/trailing trim.
	Body string
	// Source is the originating file path, kept for traceability.
	Source string
}

// Name returns the display name declared in the metadata.
func (m Microagent) Name() string {
	return m.Metadata.Name
}

// MatchTrigger reports the first trigger that occurs as a case-sensitive
// substring of text, in declaration order. Repo microagents never match.
func (m Microagent) MatchTrigger(text string) (string, bool) {
	if m.Metadata.Kind != KindKnowledge {
		return "", false
	}
	for _, trigger := range m.Metadata.Triggers {
		if trigger != "" && strings.Contains(text, trigger) {
			return trigger, true
		}
	}
	return "", false
}

// Validate checks the metadata invariants shared by the parser and the
// validate command.
func (m Metadata) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("%w: missing required field 'name'", ErrMalformedMetadata)
	}
	switch m.Kind {
	case KindKnowledge:
		if len(m.Triggers) == 0 {
			return fmt.Errorf("%w: knowledge microagent %q declares no triggers", ErrMalformedMetadata, m.Name)
		}
	case KindRepo:
		// Triggers are ignored for repo microagents.
	case "":
		return fmt.Errorf("%w: missing required field 'type'", ErrMalformedMetadata)
	default:
		return fmt.Errorf("%w: unknown microagent type %q", ErrMalformedMetadata, m.Kind)
	}
	return nil
}
