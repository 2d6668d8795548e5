package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// IdentityMode selects how a document path is turned into a cache key.
type IdentityMode string

const (
	// IdentityBasename keys documents by file name only. Two documents with the
	// same name in different directories share one cache entry.
	IdentityBasename IdentityMode = "basename"
	// IdentityPath keys documents by their slash-separated path relative to the content root.
	IdentityPath IdentityMode = "path"
)

// ParseIdentityMode validates s. An empty string selects IdentityBasename.
func ParseIdentityMode(s string) (IdentityMode, error) {
	switch IdentityMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", IdentityBasename:
		return IdentityBasename, nil
	case IdentityPath:
		return IdentityPath, nil
	default:
		return "", zerr.With(ErrInvalidIdentityMode, "identity", s)
	}
}

// Identity returns the cache key of path, a document under root.
func (m IdentityMode) Identity(root, path string) string {
	if m != IdentityPath {
		return filepath.Base(path)
	}

	absRoot, errRoot := filepath.Abs(root)
	absPath, errPath := filepath.Abs(path)
	if errRoot == nil && errPath == nil {
		if rel, err := filepath.Rel(absRoot, absPath); err == nil && !escapesRoot(rel) {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.ToSlash(filepath.Clean(path))
}

func escapesRoot(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
