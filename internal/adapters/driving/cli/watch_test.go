package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsInputEvent(t *testing.T) {
	dir := t.TempDir()
	model := filepath.Join(dir, "actual.osm")
	targets := map[string]bool{model: true}

	tests := []struct {
		name string
		ev   fsnotify.Event
		want bool
	}{
		{"write to input", fsnotify.Event{Name: model, Op: fsnotify.Write}, true},
		{"create input", fsnotify.Event{Name: model, Op: fsnotify.Create}, true},
		{"rename input", fsnotify.Event{Name: model, Op: fsnotify.Rename}, true},
		{"chmod input", fsnotify.Event{Name: model, Op: fsnotify.Chmod}, false},
		{"remove input", fsnotify.Event{Name: model, Op: fsnotify.Remove}, false},
		{"write to output", fsnotify.Event{Name: filepath.Join(dir, "actual_swap.osm"), Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isInputEvent(tt.ev, targets))
		})
	}
}

func TestWatchFiles_DebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	model := filepath.Join(dir, "actual.osm")
	require.NoError(t, os.WriteFile(model, []byte("OS:Version,\n  {a}, 3.7.0;\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- watchFiles(ctx, []string{model}, 100*time.Millisecond, func() {
			calls <- struct{}{}
		})
	}()

	// Give the watcher time to register.
	time.Sleep(100 * time.Millisecond)
	for range 3 {
		require.NoError(t, os.WriteFile(model, []byte("OS:Version,\n  {a}, 3.8.0;\n"), 0644))
	}

	select {
	case <-calls:
	case <-time.After(5 * time.Second):
		t.Fatal("watch callback not called")
	}

	// Output files beside the input do not trigger a run.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "actual_swap.osm"), []byte("x"), 0644))
	select {
	case <-calls:
		t.Fatal("unexpected second run")
	case <-time.After(400 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop on cancel")
	}
}

func TestWatchFiles_MissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone", "actual.osm")

	err := watchFiles(context.Background(), []string{missing}, time.Millisecond, func() {})

	assert.Error(t, err)
}

func TestWatchCmd_NoService(t *testing.T) {
	withServices(t, nil, newMockSettingsService())

	_, err := execute("watch", "wf.osw", "actual.osm", "ref.osm")

	assert.ErrorContains(t, err, "swap service not configured")
}
