// Package fs provides target-path validation and atomic file writes.
package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/codinganovel/texty/internal/domain"
)

// NormalizeDir resolves dir to an absolute, cleaned path.
// A leading "~" expands to the user home directory.
func NormalizeDir(dir string) (string, error) {
	if dir == "~" || len(dir) > 1 && dir[0] == '~' && os.IsPathSeparator(dir[1]) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrInvalidPath, err)
		}
		dir = filepath.Join(home, dir[1:])
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", domain.ErrInvalidPath, dir, err)
	}
	return filepath.Clean(abs), nil
}

// EnsureDir creates the directory tree if it is missing.
// An existing non-directory at the path is a path error, not a create error.
func EnsureDir(dir string) error {
	if info, err := os.Stat(dir); err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%w: %s is not a directory", domain.ErrInvalidPath, dir)
		}
		return nil
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("%w %s: %v", domain.ErrDirectoryCreate, dir, err)
	}
	return nil
}

// Exists reports whether a file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// WriteAtomic writes content to path via a temp file and rename, so a
// failed write never leaves a partial file behind. Content goes out
// verbatim: no BOM, no appended newline, empty content makes a
// zero-length file.
func WriteAtomic(path string, content []byte) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o644); err != nil { //nolint:gosec // Created file is user content
		return fmt.Errorf("%w: %v", domain.ErrWriteFailed, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", domain.ErrWriteFailed, err)
	}
	return nil
}
