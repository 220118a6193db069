// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/branchswitch/pkg/types"
	"github.com/arthur-debert/branchswitch/pkg/ui/summary"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderReport prints the headline, then either the all-clear line or the
// failure count followed by one line per failure.
func (r *Renderer) RenderReport(report *types.Report) error {
	if _, err := fmt.Fprintln(r.output, summary.Headline(report)); err != nil {
		return err
	}

	failures := report.Failures()
	if len(failures) == 0 {
		_, err := fmt.Fprintln(r.output, summary.MsgAllUpdated)
		return err
	}

	if _, err := fmt.Fprintln(r.output, summary.FailureHeader(len(failures))); err != nil {
		return err
	}
	for _, f := range failures {
		if _, err := fmt.Fprintf(r.output, "  %s\n", summary.FailureLine(f)); err != nil {
			return err
		}
	}
	return nil
}

// RenderDefinitions prints the registry one manifest per line.
func (r *Renderer) RenderDefinitions(defs []types.ManifestDefinition) error {
	for _, def := range defs {
		if _, err := fmt.Fprintf(r.output, "%s\t%s\n", def.Path, def.Install.String()); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
