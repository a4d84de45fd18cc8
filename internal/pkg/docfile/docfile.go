// Package docfile reads and writes the JSON document files that back the
// application's collections. Writes go through a temp file and an atomic
// rename so readers never observe a partially written document.
package docfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Read returns the raw contents of the document file at path.
func Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document file %s: %w", path, err)
	}
	return data, nil
}

// Exists reports whether a document file is present at path.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat document file %s: %w", path, err)
	}
	return true, nil
}

// WriteAtomic replaces the document file at path with data.
// The parent directory is created if it does not exist yet. The data is
// written to a temp file, fsynced and renamed over the target, so a crash
// mid-write leaves the previous document intact.
func WriteAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create document directory %s: %w", dir, err)
	}

	tmpPath := path + ".tmp"

	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create temp document file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp document file: %w", err)
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync temp document file: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp document file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp document file: %w", err)
	}

	return nil
}
