// Package fingerprint computes content digests of manifest files.
//
// A digest is a pure function of the file's bytes: the whole file is read
// into memory and hashed with SHA-256, rendered as "sha256:<hex>". Nothing is
// cached, so two calls observe the file as it is at that moment.
package fingerprint

import (
	"crypto/sha256"
	"fmt"
	"io/fs"

	"github.com/arthur-debert/branchswitch/pkg/errors"
	"github.com/arthur-debert/branchswitch/pkg/types"
	"github.com/spf13/afero"
)

// Algorithm is the digest prefix.
const Algorithm = "sha256"

// Fingerprinter reads files from a filesystem and digests them.
type Fingerprinter struct {
	fs afero.Fs
}

// New creates a Fingerprinter over the given filesystem.
func New(fsys afero.Fs) *Fingerprinter {
	return &Fingerprinter{fs: fsys}
}

// NewOS creates a Fingerprinter over the real filesystem, resolving
// relative paths against the process working directory.
func NewOS() *Fingerprinter {
	return New(afero.NewOsFs())
}

// Fingerprint returns the digest of the file at path. Any failure to open or
// fully read the file is returned as an ErrIO error carrying the OS detail.
func (f *Fingerprinter) Fingerprint(path string) (types.Digest, error) {
	info, err := f.fs.Stat(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrIO, "failed to read %s", path).
			WithDetail("path", path)
	}
	if info.IsDir() {
		return "", errors.Wrapf(&fs.PathError{Op: "read", Path: path, Err: fs.ErrInvalid},
			errors.ErrIO, "failed to read %s", path).
			WithDetail("path", path)
	}

	data, err := afero.ReadFile(f.fs, path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrIO, "failed to read %s", path).
			WithDetail("path", path)
	}

	return Sum(data), nil
}

// Sum digests an in-memory byte slice.
func Sum(data []byte) types.Digest {
	hash := sha256.Sum256(data)
	return types.Digest(fmt.Sprintf("%s:%x", Algorithm, hash))
}
