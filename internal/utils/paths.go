package utils

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrOutsideRoot is returned when a resolved path escapes its confinement root.
var ErrOutsideRoot = errors.New("path resolves outside of root directory")

// ResolveUnder joins elems onto root, canonicalizes the result and verifies it
// is still a descendant of root. Every boundary that accepts a user-supplied
// path segment must go through this instead of joining strings itself.
func ResolveUnder(root string, elems ...string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	joined := filepath.Join(append([]string{absRoot}, elems...)...)
	joined = filepath.Clean(joined)

	rel, err := filepath.Rel(absRoot, joined)
	if err != nil {
		return "", ErrOutsideRoot
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrOutsideRoot
	}
	return joined, nil
}
