package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/branchswitch/pkg/errors"
	"github.com/arthur-debert/branchswitch/pkg/ui"
)

// Process exit statuses.
const (
	ExitOK             = 0
	ExitError          = 1
	ExitUsage          = 2
	ExitConfig         = 3
	ExitFatalSwitch    = 4
	ExitStrictFailures = 5
)

// ExitCode maps an error returned by the root command to an exit status.
// A nil error, including a complete run with manifest failures outside
// strict mode, exits 0.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	switch errors.GetErrorCode(err) {
	case errors.ErrUsage:
		return ExitUsage
	case errors.ErrConfigLoad, errors.ErrConfigParse, errors.ErrConfigValid:
		return ExitConfig
	case errors.ErrFatalSwitch:
		return ExitFatalSwitch
	case errors.ErrManifestFailures:
		return ExitStrictFailures
	default:
		return ExitError
	}
}

// UserMessage renders err for humans: the messages along the wrap chain
// joined with ": ", without error codes.
func UserMessage(err error) string {
	var parts []string
	for err != nil {
		var bsErr *errors.BranchSwitchError
		if !stderrors.As(err, &bsErr) {
			parts = append(parts, err.Error())
			break
		}
		if bsErr.Message != "" {
			parts = append(parts, bsErr.Message)
		}
		err = bsErr.Wrapped
	}
	return strings.Join(parts, ": ")
}

// PrintError writes err to w, styled when w is a color terminal.
func PrintError(w io.Writer, err error) {
	renderer, rerr := ui.NewRenderer(ui.FormatAuto, w)
	if rerr != nil {
		_, _ = fmt.Fprintf(w, "Error: %s\n", UserMessage(err))
		return
	}
	_ = renderer.RenderError(stderrors.New(UserMessage(err)))
}
