// Package tiller is the Composition Root for the Tiller prompt engine.
//
// It connects the core prompting logic (Domain Layer) with the filesystem
// adapters (Persistence Layer) using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// Tiller is a prompt-augmentation engine for conversational AI agents. It
// loads reusable knowledge snippets ("microagents") from a directory of
// markdown documents with YAML frontmatter, renders the system and example
// prompt templates, and scans outgoing messages for trigger keywords,
// appending matching snippet content at dispatch time. The core is agnostic
// to where microagents come from; the default adapter reads them from the
// local filesystem.
//
// Features:
//
//   - **Hexagonal Architecture**: Core domain is isolated from storage details.
//   - **Frontmatter Native**: Microagents are markdown + YAML frontmatter documents.
//   - **Deterministic Matching**: Trigger matches follow registry insertion order.
//   - **Session Scoped**: One manager per agent session; repository context is set once.
//   - **Watchable**: The loader can observe document changes so callers can rebuild.
//
// Usage:
//
//	manager, err := tiller.New(ctx, "./prompts",
//		tiller.WithMicroagentDir("./prompts/micro"),
//		tiller.WithLogger(logger),
//	)
//
//	manager.SetRepositoryInfo("owner/repo", "/workspace/repo")
//	system, err := manager.GetSystemMessage()
//	manager.EnhanceMessage(msg)
package tiller
