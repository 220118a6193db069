// Package ui provides a unified interface for rendering output in different formats.
// It supports terminal (rich), text (plain), JSON and YAML output formats.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/branchswitch/pkg/types"
	"github.com/arthur-debert/branchswitch/pkg/ui/json"
	"github.com/arthur-debert/branchswitch/pkg/ui/terminal"
	"github.com/arthur-debert/branchswitch/pkg/ui/text"
	"github.com/arthur-debert/branchswitch/pkg/ui/yaml"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderReport renders the end-of-run report
	RenderReport(report *types.Report) error

	// RenderDefinitions renders the manifest registry
	RenderDefinitions(defs []types.ManifestDefinition) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		// Detect terminal capabilities and choose appropriate format
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		// If not a file, default to plain text
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	case FormatYAML:
		return yaml.New(output)
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}

// NewProgressRenderer returns the renderer for progress messages. For
// machine-readable formats progress goes to errOutput as plain text so the
// structured document on output stays parseable.
func NewProgressRenderer(format Format, output, errOutput io.Writer) (Renderer, error) {
	if format.IsMachineReadable() {
		if file, ok := errOutput.(*os.File); ok {
			return NewRenderer(DetectFormat(file), errOutput)
		}
		return NewRenderer(FormatText, errOutput)
	}
	return NewRenderer(format, output)
}
