// Package app implements the application layer for stamp.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/stamp/internal/adapters/cas"
	"go.trai.ch/stamp/internal/adapters/fs"
	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/stamp/internal/engine/batch"
	"go.trai.ch/stamp/internal/engine/updater"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	discoverer   ports.Discoverer
	codec        ports.DocumentCodec
	previewer    ports.Previewer
	logger       ports.Logger
	clock        clockwork.Clock
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	discoverer ports.Discoverer,
	codec ports.DocumentCodec,
	previewer ports.Previewer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		discoverer:   discoverer,
		codec:        codec,
		previewer:    previewer,
		logger:       log,
		clock:        clockwork.NewRealClock(),
	}
}

// WithClock sets the clock used for update timestamps.
// This is primarily used for testing.
func (a *App) WithClock(clock clockwork.Clock) *App {
	a.clock = clock
	return a
}

// logConfigurer is implemented by loggers whose format and level can change at runtime.
type logConfigurer interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// ConfigureLogging switches the logger to JSON output and debug level when requested.
func (a *App) ConfigureLogging(jsonLog, verbose bool) {
	if lc, ok := a.logger.(logConfigurer); ok {
		lc.SetJSON(jsonLog)
		lc.SetVerbose(verbose)
	}
}

// ConfigOptions locates the configuration and overrides single values.
// Zero values keep what the configuration file says.
type ConfigOptions struct {
	ConfigPath string
	Root       string
	Cache      string
	Identity   string
	Hash       string
	Workers    int
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	ConfigOptions
	Force  bool
	DryRun bool
}

// Run updates the given documents, or every document under the content root
// when paths is empty, and logs a summary. Failing documents are logged and
// counted but do not make Run fail.
func (a *App) Run(ctx context.Context, paths []string, opts RunOptions) error {
	cfg, err := a.loadConfig(opts.ConfigOptions)
	if err != nil {
		return err
	}

	files, err := a.resolveDocuments(ctx, cfg, paths)
	if err != nil {
		return err
	}

	_, err = a.runBatch(ctx, cfg, files, ports.UpdateOptions{Force: opts.Force, DryRun: opts.DryRun})
	return err
}

// StatusOptions configuration for the Status method.
type StatusOptions struct {
	ConfigOptions
	Force bool
}

// Status logs the decision each document would get without writing anything.
func (a *App) Status(ctx context.Context, paths []string, opts StatusOptions) error {
	cfg, err := a.loadConfig(opts.ConfigOptions)
	if err != nil {
		return err
	}

	files, err := a.resolveDocuments(ctx, cfg, paths)
	if err != nil {
		return err
	}

	upd := a.newUpdater(cfg)
	a.logger.Debug(fmt.Sprintf("Comparing %s digests against %s", upd.Algorithm(), cfg.CachePath))
	base := workingDir()
	counts := make(map[domain.Action]int)

	for _, file := range files {
		decision, err := upd.Inspect(ctx, file, opts.Force)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			a.logger.Error(zerr.With(zerr.Wrap(err, "failed to inspect "+relTo(base, file)), "path", file))
			continue
		}
		counts[decision.Action]++
		a.logger.Info(fmt.Sprintf("%-12s %s (%s)", decision.Action, relTo(base, file), decision.Reason))
	}

	a.logger.Info(fmt.Sprintf(
		"\nStatus: %d to rewrite, %d to cache, %d unchanged, out of %d",
		counts[domain.ActionRewrite], counts[domain.ActionUpdateCache], counts[domain.ActionSkip], len(files),
	))
	return nil
}

// Clean removes the cache file.
func (a *App) Clean(_ context.Context, opts ConfigOptions) error {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	store := cas.NewStore(cfg.CachePath, a.logger)
	a.logger.Info(fmt.Sprintf("removing %s...", store.Path()))
	if err := store.Remove(); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("removed %s", store.Path()))
	return nil
}

func (a *App) loadConfig(opts ConfigOptions) (domain.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = domain.ConfigFileName
	}

	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.Root != "" {
		cfg.Root = filepath.Clean(opts.Root)
	}
	if opts.Cache != "" {
		cfg.CachePath = filepath.Clean(opts.Cache)
	}
	if opts.Identity != "" {
		if cfg.Identity, err = domain.ParseIdentityMode(opts.Identity); err != nil {
			return domain.Config{}, err
		}
	}
	if opts.Hash != "" {
		if cfg.Hash, err = domain.ParseHashAlgorithm(opts.Hash); err != nil {
			return domain.Config{}, err
		}
	}
	if opts.Workers != 0 {
		cfg.Workers = opts.Workers
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

func (a *App) resolveDocuments(ctx context.Context, cfg domain.Config, paths []string) ([]string, error) {
	if len(paths) > 0 {
		files := make([]string, len(paths))
		for i, p := range paths {
			files[i] = filepath.Clean(p)
		}
		return files, nil
	}

	a.logger.Info(fmt.Sprintf("Processing documents under %s...", cfg.Root))
	files, err := a.discoverer.Discover(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a.logger.Info(fmt.Sprintf("Found %d document(s) to process", len(files)))
	return files, nil
}

func (a *App) newUpdater(cfg domain.Config) *updater.Updater {
	store := cas.NewStore(cfg.CachePath, a.logger)
	return updater.New(cfg, store, fs.NewHasher(cfg.Hash), a.codec, a.logger).
		WithClock(a.clock).
		WithPreviewer(a.previewer)
}

func (a *App) runBatch(
	ctx context.Context,
	cfg domain.Config,
	files []string,
	opts ports.UpdateOptions,
) (batch.Summary, error) {
	upd := a.newUpdater(cfg)
	runner := batch.New(upd, a.logger, cfg.Workers).
		WithBase(workingDir()).
		WithIdentity(upd.Identity)

	summary, err := runner.Run(ctx, files, opts)

	verb := "updated"
	if opts.DryRun {
		verb = "would be updated"
	}
	line := fmt.Sprintf("\nSummary: %d file(s) %s out of %d", summary.Updated, verb, summary.Total)
	if summary.Failed > 0 {
		line += fmt.Sprintf(", %d failed", summary.Failed)
	}
	a.logger.Info(line)

	return summary, err
}

func workingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}

func relTo(base, path string) string {
	if base == "" {
		return path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(base, abs)
	if err != nil {
		return path
	}
	return rel
}
