// Package batch drives document updates over a set of paths.
package batch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Summary counts the outcome of a batch.
type Summary struct {
	Total   int
	Updated int
	Failed  int
}

// Runner applies a DocumentUpdater to many documents. A failing document is
// logged and counted; it never stops the batch.
type Runner struct {
	updater  ports.DocumentUpdater
	logger   ports.Logger
	workers  int
	base     string
	identity func(path string) string
}

// New creates a Runner processing up to workers documents at once.
func New(updater ports.DocumentUpdater, logger ports.Logger, workers int) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{
		updater: updater,
		logger:  logger,
		workers: workers,
	}
}

// WithBase makes logged paths relative to dir.
func (r *Runner) WithBase(dir string) *Runner {
	r.base = dir
	return r
}

// WithIdentity enables warnings for documents that share a cache key.
func (r *Runner) WithIdentity(fn func(path string) string) *Runner {
	r.identity = fn
	return r
}

// Run updates every document in paths. The returned error is non-nil only
// when ctx is canceled before all documents were scheduled.
func (r *Runner) Run(ctx context.Context, paths []string, opts ports.UpdateOptions) (Summary, error) {
	summary := Summary{Total: len(paths)}
	r.warnCollisions(paths)

	var mu sync.Mutex
	g := &errgroup.Group{}
	g.SetLimit(r.workers)

	for _, path := range paths {
		if ctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			changed, err := r.updater.Update(ctx, path, opts)
			if err != nil && ctx.Err() != nil && errors.Is(err, ctx.Err()) {
				return nil
			}

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				summary.Failed++
				r.logger.Error(zerr.With(
					zerr.Wrap(err, fmt.Sprintf("failed to process %s", r.display(path))),
					"path", path,
				))
				return nil
			}
			if changed {
				summary.Updated++
				if !opts.DryRun {
					r.logger.Info("Updated: " + r.display(path))
				}
			}
			return nil
		})
	}

	_ = g.Wait()

	return summary, ctx.Err()
}

func (r *Runner) display(path string) string {
	if r.base == "" {
		return path
	}
	rel, err := filepath.Rel(r.base, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

func (r *Runner) warnCollisions(paths []string) {
	if r.identity == nil {
		return
	}

	byID := make(map[string][]string)
	for _, p := range paths {
		id := r.identity(p)
		byID[id] = append(byID[id], p)
	}

	ids := make([]string, 0, len(byID))
	for id, group := range byID {
		if len(group) > 1 {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	for _, id := range ids {
		shown := make([]string, len(byID[id]))
		for i, p := range byID[id] {
			shown[i] = r.display(p)
		}
		r.logger.Warn(fmt.Sprintf("documents share the cache key %q: %s", id, strings.Join(shown, ", ")))
	}
}
