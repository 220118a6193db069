package registry

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/branchswitch/pkg/errors"
	"github.com/arthur-debert/branchswitch/pkg/types"
)

// Registry is an ordered, read-only list of manifest definitions.
type Registry struct {
	defs   []types.ManifestDefinition
	byPath map[string]int
}

// New validates defs and returns a Registry preserving their order.
// Every definition needs a path and an install program, and paths must be
// unique after cleaning.
func New(defs []types.ManifestDefinition) (*Registry, error) {
	r := &Registry{
		defs:   make([]types.ManifestDefinition, 0, len(defs)),
		byPath: make(map[string]int, len(defs)),
	}

	for i, def := range defs {
		if strings.TrimSpace(def.Path) == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "manifest %d has no path", i+1)
		}
		if def.Install.IsZero() {
			return nil, errors.Newf(errors.ErrInvalidInput, "manifest %q has no install program", def.Path).
				WithDetail("path", def.Path)
		}

		key := filepath.Clean(def.Path)
		if prev, exists := r.byPath[key]; exists {
			return nil, errors.Newf(errors.ErrInvalidInput,
				"manifest %q is declared twice (entries %d and %d)", def.Path, prev+1, i+1).
				WithDetail("path", def.Path)
		}

		r.byPath[key] = len(r.defs)
		r.defs = append(r.defs, types.NewManifestDefinition(def.Path, def.Install))
	}

	return r, nil
}

// Definitions returns a copy of the definitions in declaration order.
func (r *Registry) Definitions() []types.ManifestDefinition {
	out := make([]types.ManifestDefinition, len(r.defs))
	for i, def := range r.defs {
		out[i] = types.NewManifestDefinition(def.Path, def.Install)
	}
	return out
}

// Get looks up a definition by manifest path.
func (r *Registry) Get(path string) (types.ManifestDefinition, bool) {
	i, ok := r.byPath[filepath.Clean(path)]
	if !ok {
		return types.ManifestDefinition{}, false
	}
	def := r.defs[i]
	return types.NewManifestDefinition(def.Path, def.Install), true
}

// Paths returns the manifest paths in declaration order.
func (r *Registry) Paths() []string {
	paths := make([]string, len(r.defs))
	for i, def := range r.defs {
		paths[i] = def.Path
	}
	return paths
}

// Len returns the number of tracked manifests.
func (r *Registry) Len() int {
	return len(r.defs)
}
