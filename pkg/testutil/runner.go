package testutil

import (
	"context"
	"sync"

	"github.com/arthur-debert/branchswitch/pkg/errors"
	"github.com/arthur-debert/branchswitch/pkg/types"
)

// RunFunc scripts the behavior of one command.
type RunFunc func(ctx context.Context, cmd types.Command) error

// FakeRunner is a scripted runner.Runner. Commands are matched by their
// String() form. Unmatched commands succeed.
type FakeRunner struct {
	mu       sync.Mutex
	scripts  map[string]RunFunc
	commands []types.Command
}

// NewFakeRunner creates an empty FakeRunner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{scripts: make(map[string]RunFunc)}
}

// On scripts the behavior of cmd.
func (f *FakeRunner) On(cmd types.Command, fn RunFunc) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scripts[cmd.String()] = fn
	return f
}

// FailWith makes cmd exit non-zero with the given status.
func (f *FakeRunner) FailWith(cmd types.Command, exitCode int) *FakeRunner {
	return f.On(cmd, func(context.Context, types.Command) error {
		return RunFailure(cmd, exitCode)
	})
}

// FailLaunch makes cmd fail to launch with cause.
func (f *FakeRunner) FailLaunch(cmd types.Command, cause error) *FakeRunner {
	return f.On(cmd, func(context.Context, types.Command) error {
		return LaunchFailure(cmd, cause)
	})
}

// Run implements runner.Runner
func (f *FakeRunner) Run(ctx context.Context, cmd types.Command) error {
	f.mu.Lock()
	f.commands = append(f.commands, cmd)
	fn := f.scripts[cmd.String()]
	f.mu.Unlock()

	if fn == nil {
		return nil
	}
	return fn(ctx, cmd)
}

// Commands returns every command run so far, in order.
func (f *FakeRunner) Commands() []types.Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]types.Command, len(f.commands))
	copy(out, f.commands)
	return out
}

// CommandStrings returns Commands in their String() form.
func (f *FakeRunner) CommandStrings() []string {
	cmds := f.Commands()
	out := make([]string, len(cmds))
	for i, c := range cmds {
		out[i] = c.String()
	}
	return out
}

// RunFailure builds the error a real runner returns when cmd exits non-zero.
func RunFailure(cmd types.Command, exitCode int) error {
	return errors.Newf(errors.ErrRunFailure, "%s exited unsuccessfully", cmd.Program).
		WithDetail("command", cmd.String()).
		WithDetail("exit_code", exitCode)
}

// LaunchFailure builds the error a real runner returns when cmd cannot start.
func LaunchFailure(cmd types.Command, cause error) error {
	return errors.Wrapf(cause, errors.ErrIO, "failed to launch %s", cmd.Program).
		WithDetail("command", cmd.String())
}

// RecordingNotifier captures progress messages.
type RecordingNotifier struct {
	mu       sync.Mutex
	Messages []string
}

// RenderMessage implements pipeline.Notifier
func (n *RecordingNotifier) RenderMessage(msg string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Messages = append(n.Messages, msg)
	return nil
}
