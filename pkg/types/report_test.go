package types_test

import (
	"testing"

	"github.com/arthur-debert/branchswitch/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestOutcomeKindIsFailure(t *testing.T) {
	assert.False(t, types.OutcomeUnchanged.IsFailure())
	assert.False(t, types.OutcomeReinstalled.IsFailure())
	assert.True(t, types.OutcomeIOError.IsFailure())
	assert.True(t, types.OutcomeRunFailure.IsFailure())
}

func TestReportCounts(t *testing.T) {
	report := &types.Report{
		Branch: "feature",
		Outcomes: []types.ManifestOutcome{
			{Path: "requirements.txt", Kind: types.OutcomeUnchanged},
			{Path: "Gemfile.lock", Kind: types.OutcomeRunFailure, Command: "bundle install"},
			{Path: "yarn.lock", Kind: types.OutcomeReinstalled, Command: "yarn install"},
			{Path: "db/structure.sql", Kind: types.OutcomeIOError, Message: "no such file or directory"},
		},
	}

	assert.Equal(t, 4, report.Processed())
	assert.True(t, report.HasFailures())

	failures := report.Failures()
	if assert.Len(t, failures, 2) {
		assert.Equal(t, "Gemfile.lock", failures[0].Path)
		assert.Equal(t, "db/structure.sql", failures[1].Path)
	}

	summary := report.Summarize()
	assert.Equal(t, "feature", summary.Branch)
	assert.Equal(t, 4, summary.Processed)
	assert.Equal(t, 1, summary.Unchanged)
	assert.Equal(t, 1, summary.Reinstalled)
	assert.Equal(t, 2, summary.Failed)
}

func TestEmptyReportSummary(t *testing.T) {
	report := &types.Report{Branch: "main"}

	assert.False(t, report.HasFailures())
	summary := report.Summarize()
	assert.NotNil(t, summary.Outcomes)
	assert.NotNil(t, summary.Failures)
	assert.Equal(t, 0, summary.Failed)
}
