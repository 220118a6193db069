package types

// OutcomeKind classifies what happened to one manifest after the switch.
type OutcomeKind string

const (
	// OutcomeUnchanged means the digest matched and nothing ran.
	OutcomeUnchanged OutcomeKind = "unchanged"
	// OutcomeReinstalled means the digest changed and the install command succeeded.
	OutcomeReinstalled OutcomeKind = "reinstalled"
	// OutcomeIOError means the manifest could not be read or the install
	// command could not be launched.
	OutcomeIOError OutcomeKind = "io_error"
	// OutcomeRunFailure means the install command ran and exited non-zero.
	OutcomeRunFailure OutcomeKind = "run_failure"
)

// IsFailure reports whether the outcome belongs in the failure list.
func (k OutcomeKind) IsFailure() bool {
	return k == OutcomeIOError || k == OutcomeRunFailure
}

// Label is a short human description of the kind.
func (k OutcomeKind) Label() string {
	switch k {
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeReinstalled:
		return "reinstalled"
	case OutcomeIOError:
		return "could not read/launch"
	case OutcomeRunFailure:
		return "ran and failed"
	default:
		return string(k)
	}
}

// ManifestOutcome is the recorded result for one fingerprinted manifest.
type ManifestOutcome struct {
	Path    string      `json:"path" yaml:"path"`
	Kind    OutcomeKind `json:"kind" yaml:"kind"`
	Command string      `json:"command,omitempty" yaml:"command,omitempty"`
	Message string      `json:"message,omitempty" yaml:"message,omitempty"`
	Err     error       `json:"-" yaml:"-"`
}

// Failed reports whether this outcome is a failure.
func (o ManifestOutcome) Failed() bool {
	return o.Kind.IsFailure()
}
