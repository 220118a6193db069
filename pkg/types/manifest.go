package types

// Digest is a content fingerprint in the form "<algorithm>:<hex>".
// Two digests are equal iff the sampled bytes were identical.
type Digest string

// String implements fmt.Stringer
func (d Digest) String() string {
	return string(d)
}

// ManifestDefinition pairs a dependency manifest with the command that
// brings installed dependencies in line with it.
type ManifestDefinition struct {
	Path    string  `json:"path" yaml:"path"`
	Install Command `json:"install" yaml:"install"`
}

// NewManifestDefinition builds a definition, copying the install arguments.
func NewManifestDefinition(path string, install Command) ManifestDefinition {
	return ManifestDefinition{
		Path:    path,
		Install: NewCommand(install.Program, install.Args...),
	}
}

// FingerprintedManifest is a definition whose manifest was readable before
// the switch, together with the digest observed at that time.
type FingerprintedManifest struct {
	Definition ManifestDefinition
	Before     Digest
}
