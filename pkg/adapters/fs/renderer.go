package fs

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/tillerhq/tiller/pkg/core"
)

// Template file names expected in the prompt directory.
const (
	SystemTemplateFile  = "system_prompt.tmpl"
	ExampleTemplateFile = "user_prompt.tmpl"
)

// Renderer implements core.Renderer by loading text/template files from a
// prompt directory. Templates are re-read on every call; rendering has no
// side effects and repeated calls with the same context yield identical
// output.
type Renderer struct {
	dir string
}

// NewRenderer creates a renderer rooted at the given prompt directory.
func NewRenderer(dir string) *Renderer {
	return &Renderer{dir: dir}
}

// RenderSystem renders the system prompt template.
func (r *Renderer) RenderSystem(rc core.RenderContext) (string, error) {
	return r.render(SystemTemplateFile, rc)
}

// RenderExample renders the example user prompt template.
func (r *Renderer) RenderExample(rc core.RenderContext) (string, error) {
	return r.render(ExampleTemplateFile, rc)
}

func (r *Renderer) render(name string, rc core.RenderContext) (string, error) {
	path := filepath.Join(r.dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", core.ErrTemplateNotFound, path)
		}
		return "", err
	}

	tmpl, err := template.New(name).Parse(string(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, rc); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", path, err)
	}

	return buf.String(), nil
}

var _ core.Renderer = (*Renderer)(nil)
