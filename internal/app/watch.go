package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/stamp/internal/adapters/watcher"
	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
)

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	ConfigOptions
	// Debounce is the quiet period before changed documents are processed.
	Debounce time.Duration
}

// Watch processes every document once, then keeps processing documents as
// they change until ctx is done.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	cfg, err := a.loadConfig(opts.ConfigOptions)
	if err != nil {
		return err
	}

	files, err := a.resolveDocuments(ctx, cfg, nil)
	if err != nil {
		return err
	}
	if _, err := a.runBatch(ctx, cfg, files, ports.UpdateOptions{}); err != nil {
		return err
	}

	w, err := watcher.NewWatcher(a.logger, cfg.Exclude)
	if err != nil {
		return err
	}
	defer func() {
		_ = w.Stop()
	}()

	if err := w.Start(ctx, cfg.Root); err != nil {
		return err
	}

	window := opts.Debounce
	if window <= 0 {
		window = watcher.DefaultDebounceWindow
	}
	debouncer := watcher.NewDebouncer(window, func(paths []string) {
		if ctx.Err() != nil {
			return
		}
		if _, err := a.runBatch(ctx, cfg, paths, ports.UpdateOptions{}); err != nil && ctx.Err() == nil {
			a.logger.Error(err)
		}
	})
	defer debouncer.Stop()

	a.logger.Info(fmt.Sprintf("Watching %s for changes...", cfg.Root))

	for event := range w.Events() {
		if isDocumentEvent(cfg, event) {
			debouncer.Add(event.Path)
		}
	}

	return nil
}

// isDocumentEvent reports whether event concerns an existing document under the content root.
func isDocumentEvent(cfg domain.Config, event ports.WatchEvent) bool {
	if event.Operation == ports.OpRemove || event.Operation == ports.OpRename {
		return false
	}
	if !cfg.MatchesExtension(filepath.Ext(event.Path)) {
		return false
	}
	if filepath.Clean(event.Path) == filepath.Clean(cfg.CachePath) {
		return false
	}
	info, err := os.Stat(event.Path)
	return err == nil && info.Mode().IsRegular()
}
