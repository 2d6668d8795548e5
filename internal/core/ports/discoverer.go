package ports

import (
	"context"

	"go.trai.ch/stamp/internal/core/domain"
)

// Discoverer enumerates the documents of a content tree.
//
//go:generate mockgen -source=discoverer.go -destination=mocks/mock_discoverer.go -package=mocks
type Discoverer interface {
	// Discover returns the paths of all documents under cfg.Root matching
	// cfg.Extensions, in lexical order.
	Discover(ctx context.Context, cfg domain.Config) ([]string, error)
}
