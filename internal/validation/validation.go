// Package validation checks user supplied paths before commands touch them.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
)

// IsValidInputFile checks that path names an existing regular file.
func IsValidInputFile(path string) error {
	if path == "" {
		return fmt.Errorf("input path is empty")
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("path %s is a directory, expected a file", path)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("path %s is not a regular file", path)
	}
	return nil
}

// IsValidOutputPath checks that path can be created or overwritten as a
// file: it must not be a directory and its nearest existing parent must be
// a directory.
func IsValidOutputPath(path string) error {
	if path == "" {
		return fmt.Errorf("output path is empty")
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("output path %s is a directory", path)
	}

	dir := filepath.Dir(path)
	for {
		info, err := os.Stat(dir)
		if err == nil {
			if !info.IsDir() {
				return fmt.Errorf("output parent %s is not a directory", dir)
			}
			return nil
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("error checking path %s: %w", dir, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil
		}
		dir = parent
	}
}

// IsValidFilePermissions checks that a file holding user configuration
// cannot be modified by other users.
func IsValidFilePermissions(mode os.FileMode) error {
	if mode&0022 != 0 {
		return fmt.Errorf("file permissions are too permissive: %s. Recommended 0600 or 0644", mode.String())
	}
	return nil
}
