// Package markdown renders markdown documents for the terminal with glamour.
package markdown

import (
	"github.com/charmbracelet/glamour"
)

// Renderer uses the glamour library for rich markdown rendering
type Renderer struct {
	Style string // Style name: "dark", "light", "notty", "auto", or path to custom style
	Width int    // Word wrap width (0 = glamour default)
}

// New creates a markdown renderer using glamour with auto-detection
func New() *Renderer {
	return &Renderer{Style: "auto"}
}

// Render converts markdown to terminal output. On any glamour error the
// content is returned unchanged.
func (r *Renderer) Render(content string) string {
	var options []glamour.TermRendererOption

	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStandardStyle(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}

	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return rendered
}
