package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStylesLoaded(t *testing.T) {
	for _, name := range []string{"Heading", "Success", "Error", "Warning", "Path", "Muted", "Indent"} {
		_, ok := Default[name]
		assert.True(t, ok, "style %s should be defined", name)
	}
}

func TestParse(t *testing.T) {
	reg, err := Parse([]byte(`
colors:
  red:
    light: "#ff0000"
    dark: "#aa0000"
styles:
  Alert:
    bold: true
    foreground: red
`))
	require.NoError(t, err)

	style := reg.Get("Alert")
	assert.True(t, style.GetBold())
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#ff0000", Dark: "#aa0000"}, style.GetForeground())
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("colors: [unterminated"))
	assert.Error(t, err)
}

func TestGet_Unknown(t *testing.T) {
	assert.Equal(t, "plain", Default.Render("NoSuchStyle", "plain"))
}
