package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// HashAlgorithm names the digest used for document bodies.
type HashAlgorithm string

const (
	// HashXXHash is the 64-bit xxHash, rendered as 16 hex characters.
	HashXXHash HashAlgorithm = "xxhash"
	// HashMD5 is MD5, rendered as 32 hex characters. It reads caches written by
	// earlier versions of the pipeline without invalidating every entry.
	HashMD5 HashAlgorithm = "md5"
)

// ParseHashAlgorithm validates s. An empty string selects HashXXHash.
func ParseHashAlgorithm(s string) (HashAlgorithm, error) {
	switch HashAlgorithm(strings.ToLower(strings.TrimSpace(s))) {
	case "", HashXXHash:
		return HashXXHash, nil
	case HashMD5:
		return HashMD5, nil
	default:
		return "", zerr.With(ErrInvalidHashAlgorithm, "hash", s)
	}
}
