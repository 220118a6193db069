package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/branchswitch/pkg/types"
	"github.com/arthur-debert/branchswitch/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleReport() *types.Report {
	return &types.Report{
		Branch: "feature",
		Outcomes: []types.ManifestOutcome{
			{Path: "Gemfile.lock", Kind: types.OutcomeUnchanged},
			{Path: "yarn.lock", Kind: types.OutcomeRunFailure, Command: "yarn install", Message: "command exited unsuccessfully (exit status 1)"},
		},
	}
}

func sampleDefinitions() []types.ManifestDefinition {
	return []types.ManifestDefinition{
		types.NewManifestDefinition("Gemfile.lock", types.NewCommand("bundle", "install")),
		types.NewManifestDefinition("yarn.lock", types.NewCommand("yarn", "install")),
	}
}

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		name        string
		format      ui.Format
		expectError bool
	}{
		{name: "create terminal renderer", format: ui.FormatTerminal},
		{name: "create text renderer", format: ui.FormatText},
		{name: "create json renderer", format: ui.FormatJSON},
		{name: "create yaml renderer", format: ui.FormatYAML},
		{name: "create auto renderer with buffer", format: ui.FormatAuto},
		{name: "invalid format", format: ui.Format(999), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			renderer, err := ui.NewRenderer(tt.format, buf)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, renderer)
				assert.Contains(t, err.Error(), "unknown format")
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, renderer)
			}
		})
	}
}

func TestRendererInterface(t *testing.T) {
	formats := []ui.Format{
		ui.FormatTerminal,
		ui.FormatText,
		ui.FormatJSON,
		ui.FormatYAML,
	}

	for _, format := range formats {
		t.Run(format.String()+" renderer implements interface", func(t *testing.T) {
			buf := &bytes.Buffer{}
			renderer, err := ui.NewRenderer(format, buf)
			require.NoError(t, err)

			assert.NoError(t, renderer.RenderMessage("test message"))
			assert.NoError(t, renderer.RenderError(assert.AnError))
			assert.NoError(t, renderer.RenderReport(sampleReport()))
			assert.NoError(t, renderer.RenderDefinitions(sampleDefinitions()))
			assert.NotEmpty(t, buf.String())
		})
	}
}

func TestJSONRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatJSON, buf)
	require.NoError(t, err)

	t.Run("render message", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderMessage("hello world"))

		var result map[string]string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		assert.Equal(t, "hello world", result["message"])
	})

	t.Run("render error", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderError(assert.AnError))

		var result map[string]string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		assert.Equal(t, assert.AnError.Error(), result["error"])
	})

	t.Run("render report", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderReport(sampleReport()))

		var result types.Summary
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		assert.Equal(t, "feature", result.Branch)
		assert.Equal(t, 2, result.Processed)
		assert.Equal(t, 1, result.Unchanged)
		assert.Equal(t, 1, result.Failed)
		require.Len(t, result.Failures, 1)
		assert.Equal(t, "yarn.lock", result.Failures[0].Path)
		assert.Equal(t, types.OutcomeRunFailure, result.Failures[0].Kind)
	})

	t.Run("render clean report has empty failure list", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderReport(&types.Report{Branch: "main"}))
		assert.Contains(t, buf.String(), `"failures": []`)
	})

	t.Run("render definitions", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderDefinitions(sampleDefinitions()))

		var result []types.ManifestDefinition
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		assert.Equal(t, sampleDefinitions(), result)
	})
}

func TestYAMLRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatYAML, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderReport(sampleReport()))

	var result types.Summary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "feature", result.Branch)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, "yarn install", result.Failures[0].Command)
}

func TestTextRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatText, buf)
	require.NoError(t, err)

	t.Run("render message", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderMessage("hello world"))
		assert.Equal(t, "hello world\n", buf.String())
	})

	t.Run("render error", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderError(assert.AnError))
		assert.Equal(t, "Error: assert.AnError general error for testing\n", buf.String())
	})

	t.Run("render report with failures", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderReport(sampleReport()))
		assert.Equal(t,
			"switched to feature: 2 checked, 0 reinstalled, 1 unchanged\n"+
				"1 failed:\n"+
				"  yarn.lock (ran and failed): yarn install: command exited unsuccessfully (exit status 1)\n",
			buf.String())
	})

	t.Run("render clean report", func(t *testing.T) {
		buf.Reset()
		report := &types.Report{
			Branch:   "main",
			Outcomes: []types.ManifestOutcome{{Path: "yarn.lock", Kind: types.OutcomeReinstalled, Command: "yarn install"}},
		}
		require.NoError(t, renderer.RenderReport(report))
		assert.Equal(t,
			"switched to main: 1 checked, 1 reinstalled, 0 unchanged\nupdated all successfully\n",
			buf.String())
	})

	t.Run("render definitions", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderDefinitions(sampleDefinitions()))
		assert.Equal(t, "Gemfile.lock\tbundle install\nyarn.lock\tyarn install\n", buf.String())
	})
}

func TestTerminalRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatTerminal, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderReport(sampleReport()))
	out := buf.String()
	assert.Contains(t, out, "Gemfile.lock")
	assert.Contains(t, out, "1 failed:")
	assert.Contains(t, out, "yarn.lock (ran and failed)")
}

func TestNewProgressRenderer(t *testing.T) {
	t.Run("machine readable formats write progress to the error stream", func(t *testing.T) {
		out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
		renderer, err := ui.NewProgressRenderer(ui.FormatJSON, out, errOut)
		require.NoError(t, err)

		require.NoError(t, renderer.RenderMessage("found 2 dependency definitions"))
		assert.Empty(t, out.String())
		assert.Equal(t, "found 2 dependency definitions\n", errOut.String())
	})

	t.Run("text format writes progress to output", func(t *testing.T) {
		out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
		renderer, err := ui.NewProgressRenderer(ui.FormatText, out, errOut)
		require.NoError(t, err)

		require.NoError(t, renderer.RenderMessage("hello"))
		assert.Equal(t, "hello\n", out.String())
		assert.Empty(t, errOut.String())
	})
}
