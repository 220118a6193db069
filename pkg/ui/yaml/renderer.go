// Package yaml provides machine-readable YAML output
package yaml

import (
	"io"

	"github.com/arthur-debert/branchswitch/pkg/types"
	"gopkg.in/yaml.v3"
)

// Renderer writes each rendered value as its own YAML document
type Renderer struct {
	output io.Writer
}

// New creates a new YAML renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

func (r *Renderer) encode(v interface{}) error {
	enc := yaml.NewEncoder(r.output)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// RenderReport renders the report summary as YAML
func (r *Renderer) RenderReport(report *types.Report) error {
	return r.encode(report.Summarize())
}

// RenderDefinitions renders the registry as a YAML sequence
func (r *Renderer) RenderDefinitions(defs []types.ManifestDefinition) error {
	if defs == nil {
		defs = []types.ManifestDefinition{}
	}
	return r.encode(defs)
}

// RenderError renders an error as YAML
func (r *Renderer) RenderError(err error) error {
	return r.encode(map[string]string{"error": err.Error()})
}

// RenderMessage renders a simple message as YAML
func (r *Renderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": msg})
}
