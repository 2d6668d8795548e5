package ports

import "go.trai.ch/stamp/internal/core/domain"

// CacheStore persists the content cache.
//
//go:generate mockgen -source=cache_store.go -destination=mocks/mock_cache_store.go -package=mocks
type CacheStore interface {
	// Load reads the persisted cache. A missing, empty, or unreadable backing
	// file yields an empty cache; Load never fails.
	Load() domain.Cache

	// Save overwrites the backing file with cache.
	Save(cache domain.Cache) error

	// Update loads the cache, applies fn, and saves the result if fn reports a
	// change. Calls are serialized so concurrent callers never lose each
	// other's entries.
	Update(fn func(cache domain.Cache) bool) error

	// Path returns the location of the backing file.
	Path() string

	// Remove deletes the backing file. A missing file is not an error.
	Remove() error
}
