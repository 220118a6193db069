package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootUse         = "branchswitch <branch>"
	MsgRootShort       = "Switch git branches and reinstall dependencies that changed"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgConfigShort     = "Print the effective configuration as TOML"
	MsgManifestsShort  = "List the tracked dependency manifests"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Status messages
	MsgVersionFormat = "branchswitch version %s\n  commit: %s\n  built:  %s\n"
	MsgManWritten    = "Man pages written to %s"

	// Error messages
	MsgErrMissingBranch  = "a branch name is required"
	MsgErrTooManyArgs    = "expected exactly one branch name, got %d arguments"
	MsgErrInvalidFormat  = "invalid --format %q (want auto, term, text, json or yaml)"
	MsgErrStrictFailures = "%d manifest(s) failed"
	MsgErrRenderReport   = "failed to render report"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default is ./.branchswitch.toml when present)"
	MsgFlagFormat  = "Report format: auto, term, text, json or yaml"
	MsgFlagStrict  = "Exit non-zero when any manifest failed"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/manifests-long.txt
	msgManifestsLongRaw string
	MsgManifestsLong    = strings.TrimSpace(msgManifestsLongRaw)
)
