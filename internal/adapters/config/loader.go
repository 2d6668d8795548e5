// Package config provides the configuration loader for stamp.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration file at path. A missing file yields the
// defaults. Relative paths in the file are resolved against its directory.
func (l *Loader) Load(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	baseDir := filepath.Dir(path)

	var file Stampfile
	found, err := readStampfile(path, &file)
	if err != nil {
		return domain.Config{}, err
	}
	if !found {
		l.Logger.Debug(fmt.Sprintf("no %s found, using defaults", filepath.Base(path)))
	}

	if file.Root != "" {
		cfg.Root = file.Root
	}
	if file.Cache != "" {
		cfg.CachePath = file.Cache
	}
	cfg.Root = resolvePath(baseDir, cfg.Root)
	cfg.CachePath = resolvePath(baseDir, cfg.CachePath)

	if len(file.Extensions) > 0 {
		cfg.Extensions = normalizeExtensions(file.Extensions)
	}
	cfg.Exclude = mergeExcludes(cfg.Exclude, file.Exclude)

	if file.Field != "" {
		cfg.Field = file.Field
	}
	if file.Workers != nil {
		cfg.Workers = *file.Workers
	}

	if cfg.Identity, err = domain.ParseIdentityMode(file.Identity); err != nil {
		return domain.Config{}, zerr.With(err, "file", path)
	}
	if cfg.Hash, err = domain.ParseHashAlgorithm(file.Hash); err != nil {
		return domain.Config{}, zerr.With(err, "file", path)
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, zerr.With(err, "file", path)
	}

	return cfg, nil
}

func readStampfile(path string, out *Stampfile) (bool, error) {
	//nolint:gosec // path is the user's chosen config file
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "file", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return false, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "file", path)
	}

	return true, nil
}

func resolvePath(baseDir, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(baseDir, p)
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if !slices.Contains(out, ext) {
			out = append(out, ext)
		}
	}
	return out
}

func mergeExcludes(defaults, extra []string) []string {
	out := slices.Clone(defaults)
	for _, pattern := range extra {
		pattern = strings.TrimSpace(pattern)
		if pattern != "" && !slices.Contains(out, pattern) {
			out = append(out, pattern)
		}
	}
	return out
}
