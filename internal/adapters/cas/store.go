// Package cas implements the persisted content cache.
package cas

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheStore = (*Store)(nil)

// Store implements ports.CacheStore using a single flat JSON file.
type Store struct {
	path   string
	logger ports.Logger
	mu     sync.Mutex
}

// NewStore creates a Store backed by the file at path. The file is not read
// until Load or Update is called.
func NewStore(path string, logger ports.Logger) *Store {
	return &Store{
		path:   filepath.Clean(path),
		logger: logger,
	}
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the cache file. Any failure degrades to an empty cache.
func (s *Store) Load() domain.Cache {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Save overwrites the cache file with cache.
func (s *Store) Save(cache domain.Cache) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(cache)
}

// Update runs fn against a freshly loaded cache and saves the result when fn
// reports a change. The whole cycle holds the store lock.
func (s *Store) Update(fn func(cache domain.Cache) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cache := s.load()
	if !fn(cache) {
		return nil
	}
	return s.save(cache)
}

// Remove deletes the cache file.
func (s *Store) Remove() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheRemoveFailed.Error()), "path", s.path)
	}
	return nil
}

func (s *Store) load() domain.Cache {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.warn(fmt.Sprintf("cache %s is unreadable, starting empty: %v", s.path, err))
		}
		return domain.NewCache()
	}

	if len(data) == 0 {
		return domain.NewCache()
	}

	var cache domain.Cache
	if err := json.Unmarshal(data, &cache); err != nil || cache == nil {
		s.warn(fmt.Sprintf("cache %s is corrupt, starting empty", s.path))
		return domain.NewCache()
	}

	return cache
}

func (s *Store) save(cache domain.Cache) error {
	if cache == nil {
		cache = domain.NewCache()
	}

	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheMarshalFailed.Error())
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrCacheCreateFailed.Error()), "path", dir)
		}
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", s.path)
	}

	return nil
}

func (s *Store) warn(msg string) {
	if s.logger != nil {
		s.logger.Warn(msg)
	}
}
