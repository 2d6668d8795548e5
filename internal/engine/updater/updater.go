// Package updater refreshes the update timestamp of documents whose body changed.
package updater

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/stamp/internal/engine/detector"
	"go.trai.ch/zerr"
)

var _ ports.DocumentUpdater = (*Updater)(nil)

// Updater implements ports.DocumentUpdater on top of a cache store, a body
// hasher, and a header codec.
type Updater struct {
	store     ports.CacheStore
	hasher    ports.Hasher
	codec     ports.DocumentCodec
	logger    ports.Logger
	previewer ports.Previewer
	clock     clockwork.Clock

	root     string
	field    string
	identity domain.IdentityMode
}

// New creates an Updater for the documents under cfg.Root.
func New(
	cfg domain.Config,
	store ports.CacheStore,
	hasher ports.Hasher,
	codec ports.DocumentCodec,
	logger ports.Logger,
) *Updater {
	field := cfg.Field
	if field == "" {
		field = domain.DefaultField
	}
	return &Updater{
		store:    store,
		hasher:   hasher,
		codec:    codec,
		logger:   logger,
		clock:    clockwork.NewRealClock(),
		root:     cfg.Root,
		field:    field,
		identity: cfg.Identity,
	}
}

// WithClock sets the clock used for update timestamps.
func (u *Updater) WithClock(clock clockwork.Clock) *Updater {
	u.clock = clock
	return u
}

// WithPreviewer sets the previewer used to log dry-run rewrites.
func (u *Updater) WithPreviewer(p ports.Previewer) *Updater {
	u.previewer = p
	return u
}

// Identity returns the cache key used for path.
func (u *Updater) Identity(path string) string {
	return u.identity.Identity(u.root, path)
}

// Algorithm reports the digest algorithm used for document bodies.
func (u *Updater) Algorithm() domain.HashAlgorithm {
	return u.hasher.Algorithm()
}

// inspection is the state gathered while deciding about one document.
type inspection struct {
	id       string
	decision domain.Decision
	mode     fs.FileMode
	data     []byte
	doc      domain.Document
}

// Update processes the document at path and reports whether its header was
// rewritten. With opts.DryRun it reports whether the header would be rewritten.
func (u *Updater) Update(ctx context.Context, path string, opts ports.UpdateOptions) (bool, error) {
	in, err := u.inspect(ctx, path, opts.Force)
	if err != nil {
		return false, err
	}

	d := in.decision
	if !d.TouchesCache() {
		u.logger.Debug(fmt.Sprintf("Skipped: %s (%s)", path, d.Reason))
		return false, nil
	}

	if d.Rewrites() {
		if err := u.rewrite(path, in, opts.DryRun); err != nil {
			return false, err
		}
	} else {
		u.logger.Debug(fmt.Sprintf("Cached: %s (%s)", path, d.Reason))
	}

	if opts.DryRun {
		return d.Rewrites(), nil
	}

	// The entry keeps the mtime observed before any rewrite. The next run
	// finds the digest unchanged and only refreshes the mtime.
	err = u.store.Update(func(cache domain.Cache) bool {
		if current, ok := cache.Lookup(in.id); ok && current == d.Entry {
			return false
		}
		cache[in.id] = d.Entry
		return true
	})
	if err != nil {
		return false, zerr.With(err, "path", path)
	}

	return d.Rewrites(), nil
}

// Inspect returns the decision Update would take for path without writing anything.
func (u *Updater) Inspect(ctx context.Context, path string, force bool) (domain.Decision, error) {
	in, err := u.inspect(ctx, path, force)
	if err != nil {
		return domain.Decision{}, err
	}
	return in.decision, nil
}

func (u *Updater) inspect(ctx context.Context, path string, force bool) (inspection, error) {
	if err := ctx.Err(); err != nil {
		return inspection{}, err
	}

	in := inspection{id: u.Identity(path), mode: domain.FilePerm}

	var mtime float64
	info, err := os.Stat(path)
	if err != nil {
		u.logger.Warn(fmt.Sprintf("could not stat %s, inspecting content: %v", path, err))
	} else {
		mtime = domain.MillisFromTime(info.ModTime())
		in.mode = info.Mode().Perm()
	}

	prior, found := u.store.Load().Lookup(in.id)

	in.decision, err = detector.Decide(prior, found, mtime, force, func() (string, error) {
		data, err := os.ReadFile(path) //nolint:gosec // path comes from discovery or the command line
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrDocumentReadFailed.Error()), "path", path)
		}
		doc, err := u.codec.Parse(data)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrDocumentParseFailed.Error()), "path", path)
		}
		in.data, in.doc = data, doc
		return u.hasher.Sum([]byte(doc.Body)), nil
	})
	if err != nil {
		return inspection{}, err
	}

	return in, nil
}

func (u *Updater) rewrite(path string, in inspection, dryRun bool) error {
	stamp := u.clock.Now().UTC().Format(domain.TimestampLayout)
	if _, ok := in.doc.Header.Get(u.field); ok {
		u.logger.Debug(fmt.Sprintf("Replacing %s in %s", u.field, path))
	} else {
		u.logger.Debug(fmt.Sprintf("Adding %s to %s", u.field, path))
	}
	doc := domain.Document{
		Header: in.doc.Header.With(u.field, stamp),
		Body:   in.doc.Body,
	}

	out, err := u.codec.Serialize(doc)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDocumentEncodeFailed.Error()), "path", path)
	}

	if dryRun {
		u.logger.Info(fmt.Sprintf("Would update: %s (%s)", path, in.decision.Reason))
		if u.previewer != nil {
			if diff := u.previewer.Diff(path, in.data, out); diff != "" {
				u.logger.Info(diff)
			}
		}
		return nil
	}

	if err := os.WriteFile(path, out, in.mode); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDocumentWriteFailed.Error()), "path", path)
	}
	return nil
}
