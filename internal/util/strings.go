// Package util provides shared utility functions used across the application.
package util

import (
	"os"
	"path/filepath"
	"strings"
)

// SanitiseName normalises a colour name into a form usable as a CSS or
// SCSS variable name: lowercase, spaces and underscores become hyphens,
// anything else outside [a-z0-9-] is dropped.
func SanitiseName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ' || r == '_':
			b.WriteByte('-')
		}
	}
	return b.String()
}

// ExpandHome expands a leading ~/ in a path to the user's home
// directory. Paths without the prefix are returned unchanged.
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[2:]), nil
}
