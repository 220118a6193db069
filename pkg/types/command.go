package types

import "strings"

// Command is an external program invocation: a program name resolved
// through PATH plus an ordered argument list.
type Command struct {
	Program string   `json:"program" yaml:"program" koanf:"program" toml:"program"`
	Args    []string `json:"args,omitempty" yaml:"args,omitempty" koanf:"args" toml:"args"`
}

// NewCommand builds a Command, copying args.
func NewCommand(program string, args ...string) Command {
	return Command{Program: program, Args: append([]string(nil), args...)}
}

// WithArgs returns a copy of c with extra appended to its arguments.
// The receiver is left untouched.
func (c Command) WithArgs(extra ...string) Command {
	args := make([]string, 0, len(c.Args)+len(extra))
	args = append(args, c.Args...)
	args = append(args, extra...)
	return Command{Program: c.Program, Args: args}
}

// String renders the command the way a user would type it.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Program
	}
	return c.Program + " " + strings.Join(c.Args, " ")
}

// IsZero reports whether the command has no program.
func (c Command) IsZero() bool {
	return strings.TrimSpace(c.Program) == ""
}
