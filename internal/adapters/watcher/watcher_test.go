package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/stamp/internal/adapters/watcher"
	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/stamp/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func startWatcher(t *testing.T, root string) *watcher.Watcher {
	t.Helper()

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	w, err := watcher.NewWatcher(logger, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	t.Cleanup(func() {
		cancel()
		_ = w.Stop()
	})

	require.NoError(t, w.Start(ctx, root))
	return w
}

func waitFor(t *testing.T, w *watcher.Watcher, path string) {
	t.Helper()

	found := make(chan struct{})
	go func() {
		for event := range w.Events() {
			if event.Path == path && event.Operation != ports.OpRemove {
				close(found)
				return
			}
		}
	}()

	select {
	case <-found:
	case <-time.After(5 * time.Second):
		t.Fatalf("no event for %s", path)
	}
}

func TestWatcher_ReportsWrites(t *testing.T) {
	root := t.TempDir()
	w := startWatcher(t, root)

	path := filepath.Join(root, "a.md")
	require.NoError(t, os.WriteFile(path, []byte("hello\n"), domain.FilePerm))

	waitFor(t, w, path)
}

func TestWatcher_FollowsNewDirectories(t *testing.T) {
	root := t.TempDir()
	w := startWatcher(t, root)

	dir := filepath.Join(root, "2024")
	require.NoError(t, os.Mkdir(dir, domain.DirPerm))
	waitFor(t, w, dir)

	path := filepath.Join(dir, "a.md")
	require.NoError(t, os.WriteFile(path, []byte("hello\n"), domain.FilePerm))
	waitFor(t, w, path)
}
