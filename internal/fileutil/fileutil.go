// Package fileutil provides small file and path helper functions.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Exists returns true if the path exists and is a regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Stem returns the base name of path without its extension.
//
// Examples:
//   - "course/chapter/intro.xml" -> "intro"
//   - "overview.html" -> "overview"
//   - "noext" -> "noext"
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// EnsureDir creates the directory and any missing parents.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}

// IsURL returns true if the string looks like a URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
