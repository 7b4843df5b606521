// Package filex contains small filesystem helpers.
package filex

import (
	"fmt"
	"os"
)

// DirExists reports whether path names an existing directory.
func DirExists(path string) bool {
	if path == "" {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// FirstExistingDir returns the first candidate that is an existing
// directory, or an empty string.
func FirstExistingDir(candidates ...string) string {
	for _, c := range candidates {
		if DirExists(c) {
			return c
		}
	}
	return ""
}
