package core_test

import (
	"testing"

	"github.com/tillerhq/tiller/pkg/core"
)

func TestNewRegistry(t *testing.T) {
	t.Run("Partitions By Kind", func(t *testing.T) {
		reg, err := core.NewRegistry([]core.Microagent{
			knowledgeAgent("k1", "t1"),
			repoAgent("r1"),
			knowledgeAgent("k2", "t2"),
		}, nil)
		if err != nil {
			t.Fatalf("NewRegistry failed: %v", err)
		}

		if reg.KnowledgeCount() != 2 {
			t.Errorf("expected 2 knowledge microagents, got %d", reg.KnowledgeCount())
		}
		if reg.RepoCount() != 1 {
			t.Errorf("expected 1 repo microagent, got %d", reg.RepoCount())
		}
	})

	t.Run("Preserves Insertion Order", func(t *testing.T) {
		reg, err := core.NewRegistry([]core.Microagent{
			knowledgeAgent("zulu", "z"),
			knowledgeAgent("alpha", "a"),
			knowledgeAgent("mike", "m"),
		}, nil)
		if err != nil {
			t.Fatalf("NewRegistry failed: %v", err)
		}

		got := reg.Knowledge()
		want := []string{"zulu", "alpha", "mike"}
		for i, name := range want {
			if got[i].Name() != name {
				t.Errorf("position %d: expected %q, got %q", i, name, got[i].Name())
			}
		}
	})

	t.Run("Disabled Names Are Filtered", func(t *testing.T) {
		reg, err := core.NewRegistry([]core.Microagent{
			knowledgeAgent("keep", "t"),
			knowledgeAgent("drop", "t"),
		}, []string{"drop"})
		if err != nil {
			t.Fatalf("NewRegistry failed: %v", err)
		}

		if _, ok := reg.KnowledgeByName("drop"); ok {
			t.Error("disabled microagent should be absent")
		}
		if _, ok := reg.KnowledgeByName("keep"); !ok {
			t.Error("enabled microagent should be present")
		}
	})

	t.Run("Duplicate Name Fails", func(t *testing.T) {
		_, err := core.NewRegistry([]core.Microagent{
			knowledgeAgent("dup", "a"),
			knowledgeAgent("dup", "b"),
		}, nil)
		if err == nil {
			t.Fatal("expected an error for duplicate names")
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		reg, err := core.NewRegistry(nil, nil)
		if err != nil {
			t.Fatalf("NewRegistry failed: %v", err)
		}
		if reg.KnowledgeCount() != 0 || reg.RepoCount() != 0 {
			t.Error("expected empty registry")
		}
	})
}
