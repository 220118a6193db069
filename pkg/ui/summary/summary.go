// Package summary holds the wording of the end-of-run report shared by the
// human-readable renderers.
package summary

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/branchswitch/pkg/types"
)

// MsgAllUpdated is printed when no manifest failed.
const MsgAllUpdated = "updated all successfully"

// Headline describes the run in one line.
func Headline(r *types.Report) string {
	return fmt.Sprintf("switched to %s: %d checked, %d reinstalled, %d unchanged",
		r.Branch, r.Processed(), r.Count(types.OutcomeReinstalled), r.Count(types.OutcomeUnchanged))
}

// FailureHeader introduces the failure list.
func FailureHeader(n int) string {
	return fmt.Sprintf("%d failed:", n)
}

// FailureLine describes one failed manifest, e.g.
// "yarn.lock (ran and failed): yarn install: command exited unsuccessfully (exit status 1)".
func FailureLine(o types.ManifestOutcome) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)", o.Path, o.Kind.Label())
	if o.Command != "" {
		fmt.Fprintf(&b, ": %s", o.Command)
	}
	if o.Message != "" {
		fmt.Fprintf(&b, ": %s", o.Message)
	}
	return b.String()
}

// DefinitionsMarkdown renders the registry as a markdown table.
func DefinitionsMarkdown(defs []types.ManifestDefinition) string {
	var b strings.Builder
	b.WriteString("# Tracked manifests\n\n")
	if len(defs) == 0 {
		b.WriteString("No manifests are configured.\n")
		return b.String()
	}
	b.WriteString("| # | Manifest | Install command |\n")
	b.WriteString("|---|----------|-----------------|\n")
	for i, def := range defs {
		fmt.Fprintf(&b, "| %d | `%s` | `%s` |\n", i+1, def.Path, def.Install.String())
	}
	return b.String()
}
