package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// Config is the resolved configuration of a run.
type Config struct {
	// Root is the content directory scanned for documents.
	Root string
	// CachePath is the cache file location.
	CachePath string
	// Extensions lists the document file extensions, including the dot.
	Extensions []string
	// Exclude lists file or directory name globs skipped during discovery.
	Exclude []string
	// Field is the header field that receives the update timestamp.
	Field string
	// Identity selects the cache key derivation.
	Identity IdentityMode
	// Hash selects the body digest.
	Hash HashAlgorithm
	// Workers is the number of documents processed concurrently.
	Workers int
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Root:       ContentDirName,
		CachePath:  CacheFileName,
		Extensions: DefaultExtensions(),
		Exclude:    DefaultExcludes(),
		Field:      DefaultField,
		Identity:   IdentityBasename,
		Hash:       HashXXHash,
		Workers:    1,
	}
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c Config) Validate() error {
	if _, err := ParseIdentityMode(string(c.Identity)); err != nil {
		return err
	}
	if _, err := ParseHashAlgorithm(string(c.Hash)); err != nil {
		return err
	}
	if c.Workers < 1 {
		return zerr.With(ErrInvalidWorkers, "workers", c.Workers)
	}
	if c.Field == "" {
		return ErrEmptyField
	}
	return nil
}

// MatchesExtension reports whether ext is one of the configured extensions.
func (c Config) MatchesExtension(ext string) bool {
	return slices.Contains(c.Extensions, ext)
}
