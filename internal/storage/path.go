package storage

import (
	"strings"

	"github.com/retrograde-labs/pixelforge/internal/apperr"
)

// normalize validates and cleans a VFS name: forward-slash, case
// sensitive, no ".." traversal, never absolute.
func normalize(name string) (string, error) {
	if name == "" {
		return "", apperr.Wrap(apperr.ErrNotFound, "empty name", nil)
	}
	if strings.ContainsRune(name, '\\') {
		return "", apperr.Wrap(apperr.ErrNotFound, "backslash not allowed in "+name, nil)
	}
	if strings.HasPrefix(name, "/") {
		return "", apperr.Wrap(apperr.ErrNotFound, "absolute path not allowed: "+name, nil)
	}
	parts := strings.Split(name, "/")
	clean := make([]string, 0, len(parts))
	for _, p := range parts {
		switch p {
		case "", ".":
			continue
		case "..":
			return "", apperr.Wrap(apperr.ErrNotFound, "traversal not allowed: "+name, nil)
		default:
			clean = append(clean, p)
		}
	}
	if len(clean) == 0 {
		return "", apperr.Wrap(apperr.ErrNotFound, "empty name", nil)
	}
	return strings.Join(clean, "/"), nil
}
