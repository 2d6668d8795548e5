// Package fs provides file system adapters for discovering and hashing documents.
package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Discoverer = (*Walker)(nil)

// Walker discovers documents by walking the content root.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Discover returns every file under cfg.Root whose extension is in
// cfg.Extensions, skipping names matched by cfg.Exclude, in lexical order.
func (w *Walker) Discover(ctx context.Context, cfg domain.Config) ([]string, error) {
	info, err := os.Stat(cfg.Root)
	if err != nil || !info.IsDir() {
		if err == nil {
			err = zerr.New("not a directory")
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrContentRootNotFound.Error()), "root", cfg.Root)
	}

	var files []string
	err = filepath.WalkDir(cfg.Root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if path != cfg.Root && w.shouldSkip(d.Name(), cfg.Exclude) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		if cfg.MatchesExtension(filepath.Ext(path)) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDiscoveryFailed.Error()), "root", cfg.Root)
	}

	slices.Sort(files)
	return files, nil
}

// shouldSkip reports whether name matches one of the exclude globs.
func (w *Walker) shouldSkip(name string, excludes []string) bool {
	for _, pattern := range excludes {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
