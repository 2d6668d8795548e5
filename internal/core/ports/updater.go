package ports

import "context"

// UpdateOptions tunes a single document update.
type UpdateOptions struct {
	// Force rewrites the header even when nothing changed.
	Force bool
	// DryRun computes the decision without writing the document or the cache.
	DryRun bool
}

// DocumentUpdater refreshes the update timestamp of one document.
//
//go:generate mockgen -source=updater.go -destination=mocks/mock_updater.go -package=mocks
type DocumentUpdater interface {
	// Update processes the document at path and reports whether its header was rewritten.
	Update(ctx context.Context, path string, opts UpdateOptions) (bool, error)
}
