// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/branchswitch/pkg/types"
	"github.com/arthur-debert/branchswitch/pkg/ui/markdown"
	"github.com/arthur-debert/branchswitch/pkg/ui/styles"
	"github.com/arthur-debert/branchswitch/pkg/ui/summary"
	"github.com/pterm/pterm"
)

// Renderer provides rich terminal output
type Renderer struct {
	output   io.Writer
	styles   styles.Registry
	markdown *markdown.Renderer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{
		output:   w,
		styles:   styles.Default,
		markdown: markdown.New(),
	}, nil
}

// KindStyle returns the badge style for an outcome kind
func KindStyle(kind types.OutcomeKind) *pterm.Style {
	switch kind {
	case types.OutcomeReinstalled:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case types.OutcomeIOError, types.OutcomeRunFailure:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// RenderReport prints a badge per manifest followed by the summary.
func (r *Renderer) RenderReport(report *types.Report) error {
	if _, err := fmt.Fprintln(r.output, r.styles.Render("Heading", summary.Headline(report))); err != nil {
		return err
	}

	for _, o := range report.Outcomes {
		badge := KindStyle(o.Kind).Sprintf(" %s ", o.Kind.Label())
		line := fmt.Sprintf("%s %s", badge, r.styles.Render("Path", o.Path))
		if o.Command != "" {
			line += " " + r.styles.Render("Muted", o.Command)
		}
		if _, err := fmt.Fprintln(r.output, r.styles.Render("Indent", line)); err != nil {
			return err
		}
	}

	failures := report.Failures()
	if len(failures) == 0 {
		_, err := fmt.Fprintln(r.output, r.styles.Render("Success", summary.MsgAllUpdated))
		return err
	}

	if _, err := fmt.Fprintln(r.output, r.styles.Render("Error", summary.FailureHeader(len(failures)))); err != nil {
		return err
	}
	for _, f := range failures {
		if _, err := fmt.Fprintln(r.output, r.styles.Render("Indent", summary.FailureLine(f))); err != nil {
			return err
		}
	}
	return nil
}

// RenderDefinitions renders the registry as a markdown table.
func (r *Renderer) RenderDefinitions(defs []types.ManifestDefinition) error {
	_, err := fmt.Fprint(r.output, r.markdown.Render(summary.DefinitionsMarkdown(defs)))
	return err
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintln(r.output, r.styles.Render("Error", "Error: ")+err.Error())
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, r.styles.Render("Muted", msg))
	return err
}
