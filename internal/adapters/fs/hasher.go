package fs

import (
	"crypto/md5" //nolint:gosec // Change detection only, matches caches written by earlier tooling
	"encoding/hex"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes body digests with the configured algorithm.
type Hasher struct {
	algorithm domain.HashAlgorithm
}

// NewHasher creates a Hasher for algorithm. Unknown algorithms fall back to xxHash.
func NewHasher(algorithm domain.HashAlgorithm) *Hasher {
	if algorithm != domain.HashMD5 {
		algorithm = domain.HashXXHash
	}
	return &Hasher{algorithm: algorithm}
}

// Algorithm reports the digest algorithm.
func (h *Hasher) Algorithm() domain.HashAlgorithm {
	return h.algorithm
}

// Sum returns the hex digest of data.
func (h *Hasher) Sum(data []byte) string {
	if h.algorithm == domain.HashMD5 {
		sum := md5.Sum(data) //nolint:gosec // See import
		return hex.EncodeToString(sum[:])
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
