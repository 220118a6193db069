package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_NoTTYStyle(t *testing.T) {
	r := &Renderer{Style: "notty", Width: 80}
	out := r.Render("# Title\n\nSome `code` here.\n")

	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "code")
}

func TestRender_Table(t *testing.T) {
	r := &Renderer{Style: "notty", Width: 100}
	out := r.Render("| a | b |\n|---|---|\n| yarn.lock | yarn install |\n")

	assert.Contains(t, out, "yarn.lock")
	assert.Contains(t, out, "yarn install")
}
