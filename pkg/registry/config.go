package registry

import (
	"github.com/arthur-debert/branchswitch/pkg/config"
	"github.com/arthur-debert/branchswitch/pkg/errors"
)

// FromConfig builds the registry from the configured manifests. Invalid
// definitions are reported as configuration errors.
func FromConfig(cfg *config.Config) (*Registry, error) {
	reg, err := New(cfg.Definitions())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid manifest registry")
	}
	return reg, nil
}
