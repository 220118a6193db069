package types

// Report is the aggregate result of one completed run. A run whose switch
// step failed never produces a Report.
type Report struct {
	Branch   string            `json:"branch" yaml:"branch"`
	Outcomes []ManifestOutcome `json:"outcomes" yaml:"outcomes"`
}

// Processed is the number of manifests that took part in the post-switch phase.
func (r *Report) Processed() int {
	return len(r.Outcomes)
}

// Failures returns the failed outcomes in processing order.
func (r *Report) Failures() []ManifestOutcome {
	var failures []ManifestOutcome
	for _, o := range r.Outcomes {
		if o.Failed() {
			failures = append(failures, o)
		}
	}
	return failures
}

// Count returns how many outcomes have the given kind.
func (r *Report) Count(kind OutcomeKind) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Kind == kind {
			n++
		}
	}
	return n
}

// HasFailures reports whether any manifest failed.
func (r *Report) HasFailures() bool {
	for _, o := range r.Outcomes {
		if o.Failed() {
			return true
		}
	}
	return false
}

// Summary is the serializable view of a Report used by machine-readable renderers.
type Summary struct {
	Branch      string            `json:"branch" yaml:"branch"`
	Processed   int               `json:"processed" yaml:"processed"`
	Unchanged   int               `json:"unchanged" yaml:"unchanged"`
	Reinstalled int               `json:"reinstalled" yaml:"reinstalled"`
	Failed      int               `json:"failed" yaml:"failed"`
	Outcomes    []ManifestOutcome `json:"outcomes" yaml:"outcomes"`
	Failures    []ManifestOutcome `json:"failures" yaml:"failures"`
}

// Summarize builds the serializable view of r.
func (r *Report) Summarize() Summary {
	failures := r.Failures()
	outcomes := r.Outcomes
	if outcomes == nil {
		outcomes = []ManifestOutcome{}
	}
	if failures == nil {
		failures = []ManifestOutcome{}
	}
	return Summary{
		Branch:      r.Branch,
		Processed:   r.Processed(),
		Unchanged:   r.Count(OutcomeUnchanged),
		Reinstalled: r.Count(OutcomeReinstalled),
		Failed:      len(failures),
		Outcomes:    outcomes,
		Failures:    failures,
	}
}
