package config

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/branchswitch/pkg/errors"
	"github.com/arthur-debert/branchswitch/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
)

// Config is the effective configuration of one run.
type Config struct {
	Switch    SwitchConfig     `koanf:"switch" toml:"switch"`
	Output    OutputConfig     `koanf:"output" toml:"output"`
	Manifests []ManifestConfig `koanf:"manifests" toml:"manifests"`
}

// SwitchConfig is the branch-switch command, minus the branch name.
type SwitchConfig struct {
	Program string   `koanf:"program" toml:"program"`
	Args    []string `koanf:"args" toml:"args"`
}

// OutputConfig controls how the final report is rendered.
type OutputConfig struct {
	Format string `koanf:"format" toml:"format"`
	// Strict turns manifest failures into a non-zero exit status.
	Strict bool `koanf:"strict" toml:"strict"`
}

// ManifestConfig is one registry entry as written in TOML.
type ManifestConfig struct {
	Path    string   `koanf:"path" toml:"path"`
	Program string   `koanf:"program" toml:"program"`
	Args    []string `koanf:"args" toml:"args"`
}

// SwitchCommand returns the command that switches to branch.
func (c *Config) SwitchCommand(branch string) types.Command {
	return types.NewCommand(c.Switch.Program, c.Switch.Args...).WithArgs(branch)
}

// Definitions converts the configured manifests into definitions, in order.
func (c *Config) Definitions() []types.ManifestDefinition {
	defs := make([]types.ManifestDefinition, 0, len(c.Manifests))
	for _, m := range c.Manifests {
		defs = append(defs, types.NewManifestDefinition(m.Path, types.NewCommand(m.Program, m.Args...)))
	}
	return defs
}

// Validate checks the fields every run depends on.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Switch.Program) == "" {
		return errors.New(errors.ErrConfigValid, "switch.program must not be empty")
	}
	for i, m := range c.Manifests {
		if strings.TrimSpace(m.Path) == "" {
			return errors.Newf(errors.ErrConfigValid, "manifests[%d].path must not be empty", i)
		}
		if strings.TrimSpace(m.Program) == "" {
			return errors.Newf(errors.ErrConfigValid, "manifests[%d].program must not be empty", i).
				WithDetail("path", m.Path)
		}
	}
	return nil
}

// GenerateTOML renders cfg as a TOML document suitable for .branchswitch.toml.
func GenerateTOML(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to encode configuration: %w", err)
	}
	return string(data), nil
}
