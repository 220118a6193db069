package registry

import (
	"testing"

	"github.com/arthur-debert/branchswitch/pkg/errors"
	"github.com/arthur-debert/branchswitch/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDefinitions() []types.ManifestDefinition {
	return []types.ManifestDefinition{
		types.NewManifestDefinition("requirements.txt", types.NewCommand("pip", "install", "-r", "requirements.txt")),
		types.NewManifestDefinition("Gemfile.lock", types.NewCommand("bundle", "install")),
		types.NewManifestDefinition("yarn.lock", types.NewCommand("yarn", "install")),
		types.NewManifestDefinition("db/structure.sql", types.NewCommand("bundle", "exec", "rails", "db:migrate")),
	}
}

func TestNewPreservesOrder(t *testing.T) {
	reg, err := New(sampleDefinitions())
	require.NoError(t, err)

	assert.Equal(t, 4, reg.Len())
	assert.Equal(t, []string{"requirements.txt", "Gemfile.lock", "yarn.lock", "db/structure.sql"}, reg.Paths())
}

func TestDefinitionsReturnsCopy(t *testing.T) {
	reg, err := New(sampleDefinitions())
	require.NoError(t, err)

	defs := reg.Definitions()
	defs[0].Path = "mutated"
	defs[1].Install.Args[0] = "mutated"

	again := reg.Definitions()
	assert.Equal(t, "requirements.txt", again[0].Path)
	assert.Equal(t, "install", again[1].Install.Args[0])
}

func TestNewCopiesInput(t *testing.T) {
	defs := sampleDefinitions()
	reg, err := New(defs)
	require.NoError(t, err)

	defs[2].Install.Program = "npm"

	def, ok := reg.Get("yarn.lock")
	require.True(t, ok)
	assert.Equal(t, "yarn", def.Install.Program)
}

func TestGet(t *testing.T) {
	reg, err := New(sampleDefinitions())
	require.NoError(t, err)

	def, ok := reg.Get("./db/structure.sql")
	require.True(t, ok)
	assert.Equal(t, "bundle exec rails db:migrate", def.Install.String())

	_, ok = reg.Get("package-lock.json")
	assert.False(t, ok)
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		defs    []types.ManifestDefinition
		wantMsg string
	}{
		{
			name:    "missing path",
			defs:    []types.ManifestDefinition{{Install: types.NewCommand("yarn", "install")}},
			wantMsg: "manifest 1 has no path",
		},
		{
			name:    "missing program",
			defs:    []types.ManifestDefinition{{Path: "yarn.lock"}},
			wantMsg: "has no install program",
		},
		{
			name: "duplicate path",
			defs: []types.ManifestDefinition{
				types.NewManifestDefinition("yarn.lock", types.NewCommand("yarn", "install")),
				types.NewManifestDefinition("./yarn.lock", types.NewCommand("yarn")),
			},
			wantMsg: "declared twice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := New(tt.defs)
			require.Error(t, err)
			assert.Nil(t, reg)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestNewEmpty(t *testing.T) {
	reg, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, reg.Len())
	assert.Empty(t, reg.Definitions())
}
