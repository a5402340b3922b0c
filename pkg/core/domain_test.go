package core_test

import (
	"errors"
	"testing"

	"github.com/tillerhq/tiller/pkg/core"
)

func knowledgeAgent(name string, triggers ...string) core.Microagent {
	return core.Microagent{
		Metadata: core.Metadata{
			Name:     name,
			Kind:     core.KindKnowledge,
			Agent:    "TillerAgent",
			Triggers: triggers,
		},
		Body: "body of " + name,
	}
}

func repoAgent(name string) core.Microagent {
	return core.Microagent{
		Metadata: core.Metadata{
			Name:  name,
			Kind:  core.KindRepo,
			Agent: "TillerAgent",
		},
		Body: "body of " + name,
	}
}

func TestMatchTrigger(t *testing.T) {
	t.Run("Substring Match", func(t *testing.T) {
		agent := knowledgeAgent("magic", "flarglebargle")

		trigger, ok := agent.MatchTrigger("Hello, flarglebargle!")
		if !ok {
			t.Fatal("expected a match")
		}
		if trigger != "flarglebargle" {
			t.Errorf("expected trigger 'flarglebargle', got %q", trigger)
		}
	})

	t.Run("Case Sensitive", func(t *testing.T) {
		agent := knowledgeAgent("magic", "Git")

		if _, ok := agent.MatchTrigger("tell me about git rebase"); ok {
			t.Error("lowercase text must not match uppercase trigger")
		}
		if _, ok := agent.MatchTrigger("tell me about Git rebase"); !ok {
			t.Error("exact case should match")
		}
	})

	t.Run("Declaration Order Wins", func(t *testing.T) {
		agent := knowledgeAgent("multi", "beta", "alpha")

		trigger, ok := agent.MatchTrigger("alpha and beta are both here")
		if !ok {
			t.Fatal("expected a match")
		}
		if trigger != "beta" {
			t.Errorf("expected first declared trigger to win, got %q", trigger)
		}
	})

	t.Run("Repo Agents Never Match", func(t *testing.T) {
		agent := repoAgent("setup")
		agent.Metadata.Triggers = []string{"anything"}

		if _, ok := agent.MatchTrigger("anything at all"); ok {
			t.Error("repo microagents must not participate in trigger matching")
		}
	})

	t.Run("No Match", func(t *testing.T) {
		agent := knowledgeAgent("magic", "flarglebargle")

		if _, ok := agent.MatchTrigger("a perfectly normal sentence"); ok {
			t.Error("expected no match")
		}
	})
}

func TestMetadataValidate(t *testing.T) {
	cases := []struct {
		name    string
		meta    core.Metadata
		wantErr bool
	}{
		{"valid knowledge", core.Metadata{Name: "a", Kind: core.KindKnowledge, Triggers: []string{"x"}}, false},
		{"valid repo", core.Metadata{Name: "b", Kind: core.KindRepo}, false},
		{"missing name", core.Metadata{Kind: core.KindRepo}, true},
		{"missing type", core.Metadata{Name: "c"}, true},
		{"unknown type", core.Metadata{Name: "d", Kind: "task"}, true},
		{"knowledge without triggers", core.Metadata{Name: "e", Kind: core.KindKnowledge}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.meta.Validate()
			if tc.wantErr {
				if !errors.Is(err, core.ErrMalformedMetadata) {
					t.Errorf("expected ErrMalformedMetadata, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestMessageTextLookup(t *testing.T) {
	t.Run("Last Text Skips Trailing Media", func(t *testing.T) {
		msg := &core.Message{
			Role: "user",
			Content: []core.Content{
				&core.ImageContent{ImageURLs: []string{"https://example.com/1.jpg"}},
				&core.TextContent{Text: "the only text"},
				&core.ImageContent{ImageURLs: []string{"https://example.com/2.jpg"}},
			},
		}

		seg, ok := msg.LastText()
		if !ok {
			t.Fatal("expected a text segment")
		}
		if seg.Text != "the only text" {
			t.Errorf("unexpected segment: %q", seg.Text)
		}
	})

	t.Run("No Text", func(t *testing.T) {
		msg := &core.Message{
			Role: "user",
			Content: []core.Content{
				&core.ImageContent{ImageURLs: []string{"https://example.com/1.jpg"}},
			},
		}

		if _, ok := msg.LastText(); ok {
			t.Error("expected no text segment")
		}
		if _, ok := msg.FirstText(); ok {
			t.Error("expected no text segment")
		}
	})
}
