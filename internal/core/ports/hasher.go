// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/stamp/internal/core/domain"

// Hasher computes the digest of a document body.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Sum returns the hex digest of data. The same input always yields the same digest.
	Sum(data []byte) string
	// Algorithm reports which digest Sum computes.
	Algorithm() domain.HashAlgorithm
}
