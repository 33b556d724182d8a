// Package fileutil provides file system helpers for locating scripts.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrFileNotFound is returned when no directory entry matches.
var ErrFileNotFound = errors.New("file not found")

// FindFileCaseInsensitive searches dir for a regular file named filename,
// ignoring letter case. An exact match wins over a case-folded one.
//
// Example:
//
//	path, err := FindFileCaseInsensitive("/path/to/scripts", "main.mb")
//	// finds "main.mb", "MAIN.MB", "Main.mb", ...
func FindFileCaseInsensitive(dir, filename string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var folded string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if entry.Name() == filename {
			return filepath.Join(dir, entry.Name()), nil
		}
		if folded == "" && strings.EqualFold(entry.Name(), filename) {
			folded = entry.Name()
		}
	}

	if folded != "" {
		return filepath.Join(dir, folded), nil
	}
	return "", fmt.Errorf("%w: %s (searched in %s)", ErrFileNotFound, filename, dir)
}
