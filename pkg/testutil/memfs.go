package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// NewMemFS creates an in-memory filesystem seeded with files (path → content).
func NewMemFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for path, content := range files {
		WriteMemFile(t, fs, path, content)
	}
	return fs
}

// WriteMemFile writes content to path on fs, creating parent directories.
func WriteMemFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()

	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

// RemoveMemFile deletes path from fs.
func RemoveMemFile(t *testing.T, fs afero.Fs, path string) {
	t.Helper()

	if err := fs.Remove(path); err != nil {
		t.Fatalf("Failed to remove %s: %v", path, err)
	}
}
