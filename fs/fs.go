// Package fs writes files atomically: data goes to a temporary sibling that
// is renamed over the target, so readers never observe a partial file.
package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/parley"
)

// WriteAtomic writes data to path, creating parent directories as needed.
func WriteAtomic(path string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// SaveExport writes f into dir and returns the full path.
func SaveExport(dir string, f parley.ExportFile) (string, error) {
	if f.Filename == "" || filepath.Base(f.Filename) != f.Filename {
		return "", fmt.Errorf("invalid export filename %q: %w", f.Filename, parley.ErrValidation)
	}
	path := filepath.Join(dir, f.Filename)
	if err := WriteAtomic(path, []byte(f.Content), 0o644); err != nil {
		return "", fmt.Errorf("save export: %w", err)
	}
	return path, nil
}
