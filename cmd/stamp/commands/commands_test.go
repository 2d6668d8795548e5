package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stamp/cmd/stamp/commands"
	"go.trai.ch/stamp/internal/adapters/watcher"
	"go.trai.ch/stamp/internal/app"
	"go.trai.ch/stamp/internal/build"
	"go.trai.ch/stamp/internal/core/domain"
)

type mockApp struct {
	runFunc    func(ctx context.Context, paths []string, opts app.RunOptions) error
	statusFunc func(ctx context.Context, paths []string, opts app.StatusOptions) error
	watchFunc  func(ctx context.Context, opts app.WatchOptions) error
	cleanFunc  func(ctx context.Context, opts app.ConfigOptions) error

	jsonLog bool
	verbose bool
}

func (m *mockApp) Run(ctx context.Context, paths []string, opts app.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, paths, opts)
	}
	return nil
}

func (m *mockApp) Status(ctx context.Context, paths []string, opts app.StatusOptions) error {
	if m.statusFunc != nil {
		return m.statusFunc(ctx, paths, opts)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context, opts app.WatchOptions) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context, opts app.ConfigOptions) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) ConfigureLogging(jsonLog, verbose bool) {
	m.jsonLog = jsonLog
	m.verbose = verbose
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	cli.SetArgs(args)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	err := cli.Execute(t.Context())
	return buf.String(), err
}

func TestCommands_Run(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.RunOptions
		var capturedPaths []string

		mock := &mockApp{
			runFunc: func(_ context.Context, paths []string, opts app.RunOptions) error {
				capturedOpts = opts
				capturedPaths = paths
				return nil
			},
		}

		_, err := execute(t, mock,
			"run", "posts/a.md", "posts/b.mdx",
			"--force", "--dry-run",
			"--root", "content", "--cache", "c.json",
			"--identity", "path", "--hash", "md5", "-w", "4",
			"-c", "site.yaml",
		)

		require.NoError(t, err)
		assert.Equal(t, []string{"posts/a.md", "posts/b.mdx"}, capturedPaths)
		assert.Equal(t, app.RunOptions{
			ConfigOptions: app.ConfigOptions{
				ConfigPath: "site.yaml",
				Root:       "content",
				Cache:      "c.json",
				Identity:   "path",
				Hash:       "md5",
				Workers:    4,
			},
			Force:  true,
			DryRun: true,
		}, capturedOpts)
	})

	t.Run("defaults", func(t *testing.T) {
		var capturedOpts app.RunOptions
		var capturedPaths []string
		mock := &mockApp{
			runFunc: func(_ context.Context, paths []string, opts app.RunOptions) error {
				capturedOpts = opts
				capturedPaths = paths
				return nil
			},
		}

		_, err := execute(t, mock, "run")

		require.NoError(t, err)
		assert.Empty(t, capturedPaths)
		assert.Equal(t, app.RunOptions{
			ConfigOptions: app.ConfigOptions{ConfigPath: domain.ConfigFileName},
		}, capturedOpts)
		assert.False(t, mock.jsonLog)
		assert.False(t, mock.verbose)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(context.Context, []string, app.RunOptions) error {
				return errors.New("simulated error")
			},
		}

		_, err := execute(t, mock, "run")
		require.ErrorContains(t, err, "simulated error")
	})
}

func TestCommands_LoggingFlags(t *testing.T) {
	mock := &mockApp{}

	_, err := execute(t, mock, "status", "--json-log", "-v")

	require.NoError(t, err)
	assert.True(t, mock.jsonLog)
	assert.True(t, mock.verbose)
}

func TestCommands_VerboseShorthandBeforeSubcommand(t *testing.T) {
	called := false
	mock := &mockApp{
		runFunc: func(context.Context, []string, app.RunOptions) error {
			called = true
			return nil
		},
	}

	out, err := execute(t, mock, "-v", "run")

	require.NoError(t, err)
	assert.True(t, called)
	assert.True(t, mock.verbose)
	assert.NotContains(t, out, "stamp version")
}

func TestCommands_Help(t *testing.T) {
	out, err := execute(t, &mockApp{}, "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "--verbose")
	assert.Contains(t, out, "--version")
}

func TestCommands_Status(t *testing.T) {
	var capturedOpts app.StatusOptions
	var capturedPaths []string
	mock := &mockApp{
		statusFunc: func(_ context.Context, paths []string, opts app.StatusOptions) error {
			capturedOpts = opts
			capturedPaths = paths
			return nil
		},
	}

	_, err := execute(t, mock, "status", "-f", "posts/a.md")

	require.NoError(t, err)
	assert.Equal(t, []string{"posts/a.md"}, capturedPaths)
	assert.True(t, capturedOpts.Force)
}

func TestCommands_Watch(t *testing.T) {
	var capturedOpts app.WatchOptions
	mock := &mockApp{
		watchFunc: func(_ context.Context, opts app.WatchOptions) error {
			capturedOpts = opts
			return nil
		},
	}

	_, err := execute(t, mock, "watch")
	require.NoError(t, err)
	assert.Equal(t, watcher.DefaultDebounceWindow, capturedOpts.Debounce)

	_, err = execute(t, mock, "watch", "--debounce", "1s", "-r", "content")
	require.NoError(t, err)
	assert.Equal(t, time.Second, capturedOpts.Debounce)
	assert.Equal(t, "content", capturedOpts.Root)

	_, err = execute(t, mock, "watch", "extra")
	require.Error(t, err)
}

func TestCommands_Clean(t *testing.T) {
	var capturedOpts app.ConfigOptions
	called := false
	mock := &mockApp{
		cleanFunc: func(_ context.Context, opts app.ConfigOptions) error {
			capturedOpts = opts
			called = true
			return nil
		},
	}

	_, err := execute(t, mock, "clean", "--cache", "tmp/cache.json")

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "tmp/cache.json", capturedOpts.Cache)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")

	require.NoError(t, err)
	assert.Equal(t, "stamp version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", out)
}

func TestCommands_VersionFlag(t *testing.T) {
	out, err := execute(t, &mockApp{}, "--version")

	require.NoError(t, err)
	assert.Contains(t, out, "stamp version "+build.Version)
}
