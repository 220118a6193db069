package cli

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/arthur-debert/branchswitch/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil", err: nil, expected: ExitOK},
		{name: "usage", err: errors.New(errors.ErrUsage, "x"), expected: ExitUsage},
		{name: "config load", err: errors.New(errors.ErrConfigLoad, "x"), expected: ExitConfig},
		{name: "config parse", err: errors.New(errors.ErrConfigParse, "x"), expected: ExitConfig},
		{name: "config invalid", err: errors.New(errors.ErrConfigValid, "x"), expected: ExitConfig},
		{name: "fatal switch", err: errors.New(errors.ErrFatalSwitch, "x"), expected: ExitFatalSwitch},
		{name: "strict failures", err: errors.New(errors.ErrManifestFailures, "x"), expected: ExitStrictFailures},
		{name: "internal", err: errors.New(errors.ErrInternal, "x"), expected: ExitError},
		{name: "plain error", err: fmt.Errorf("boom"), expected: ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExitCode(tt.err))
		})
	}
}

func TestUserMessage(t *testing.T) {
	inner := errors.Wrap(os.ErrNotExist, errors.ErrIO, "failed to launch git")
	err := errors.Wrapf(inner, errors.ErrFatalSwitch, "failed to switch to branch %q", "main")

	assert.Equal(t, `failed to switch to branch "main": failed to launch git: file does not exist`, UserMessage(err))
	assert.Equal(t, "boom", UserMessage(fmt.Errorf("boom")))
}

func TestPrintError(t *testing.T) {
	buf := &bytes.Buffer{}
	PrintError(buf, errors.New(errors.ErrUsage, "a branch name is required"))

	assert.Equal(t, "Error: a branch name is required\n", buf.String())
}
