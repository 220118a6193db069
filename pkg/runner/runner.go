// Package runner launches external programs with the invoking terminal's
// standard streams attached and classifies how they ended.
//
// Only the termination status is observed. Output is never captured, so
// progress bars and prompts from tools like bundler or yarn stay live.
package runner

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"

	"github.com/arthur-debert/branchswitch/pkg/errors"
	"github.com/arthur-debert/branchswitch/pkg/logging"
	"github.com/arthur-debert/branchswitch/pkg/types"
	"github.com/rs/zerolog"
)

// Runner executes a command and blocks until it terminates.
//
// A nil error means the program exited zero. Otherwise the error carries
// errors.ErrIO when the program could not be launched or waited on, and
// errors.ErrRunFailure when it ran and exited non-zero.
type Runner interface {
	Run(ctx context.Context, cmd types.Command) error
}

// ProcessRunner implements Runner with os/exec.
type ProcessRunner struct {
	logger zerolog.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// New creates a ProcessRunner wired to the process's own stdin, stdout and stderr.
func New() *ProcessRunner {
	return NewWithStreams(os.Stdin, os.Stdout, os.Stderr)
}

// NewWithStreams creates a ProcessRunner with explicit streams.
func NewWithStreams(stdin io.Reader, stdout, stderr io.Writer) *ProcessRunner {
	return &ProcessRunner{
		logger: logging.GetLogger("runner"),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// Run launches cmd and waits for it. The child inherits the parent's
// environment and working directory. No timeout is applied.
func (r *ProcessRunner) Run(ctx context.Context, cmd types.Command) error {
	if cmd.IsZero() {
		return errors.New(errors.ErrIO, "cannot launch empty command")
	}

	logging.LogCommand(r.logger, cmd.Program, cmd.Args)

	c := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	c.Stdin = r.stdin
	c.Stdout = r.stdout
	c.Stderr = r.stderr

	if err := c.Start(); err != nil {
		r.logger.Debug().Err(err).Str("command", cmd.String()).Msg("Command could not be launched")
		return errors.Wrapf(err, errors.ErrIO, "failed to launch %s", cmd.Program).
			WithDetail("command", cmd.String())
	}

	if err := c.Wait(); err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			r.logger.Debug().
				Str("command", cmd.String()).
				Int("exitCode", exitErr.ExitCode()).
				Msg("Command exited unsuccessfully")
			return errors.Newf(errors.ErrRunFailure, "%s exited unsuccessfully", cmd.Program).
				WithDetail("command", cmd.String()).
				WithDetail("exit_code", exitErr.ExitCode())
		}
		return errors.Wrapf(err, errors.ErrIO, "failed waiting for %s", cmd.Program).
			WithDetail("command", cmd.String())
	}

	r.logger.Debug().Str("command", cmd.String()).Msg("Command executed successfully")
	return nil
}

// Classify maps a Run error to the outcome kind it represents.
// A nil error yields the empty kind.
func Classify(err error) types.OutcomeKind {
	switch {
	case err == nil:
		return ""
	case errors.HasErrorCode(err, errors.ErrRunFailure):
		return types.OutcomeRunFailure
	default:
		return types.OutcomeIOError
	}
}

// ExitCode returns the child's exit status recorded on a run failure, or -1.
func ExitCode(err error) int {
	for err != nil {
		if code, ok := errors.GetErrorDetails(err)["exit_code"].(int); ok {
			return code
		}
		var bsErr *errors.BranchSwitchError
		if !stderrors.As(err, &bsErr) {
			break
		}
		err = bsErr.Wrapped
	}
	return -1
}

var _ Runner = (*ProcessRunner)(nil)
