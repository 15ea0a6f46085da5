package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/f3rmion/onboard/internal/onboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

	reloaded := make(chan onboard.Inputs, 4)
	w, err := NewWatcher(path,
		WithDebounce(20*time.Millisecond),
		WithOnReload(func(in onboard.Inputs) { reloaded <- in }),
	)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte(`{"businessData": {"industry": "Retail"}}`), 0644))

	select {
	case in := <-reloaded:
		assert.Equal(t, "Retail", onboard.Derive(in).Industry)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcher_ReportsParseErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

	errs := make(chan error, 4)
	w, err := NewWatcher(path,
		WithDebounce(20*time.Millisecond),
		WithOnError(func(err error) { errs <- err }),
	)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte(`{"broken`), 0644))

	select {
	case err := <-errs:
		assert.Contains(t, err.Error(), "parsing session file")
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for error")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

	reloaded := make(chan onboard.Inputs, 4)
	w, err := NewWatcher(path,
		WithDebounce(10*time.Millisecond),
		WithOnReload(func(in onboard.Inputs) { reloaded <- in }),
	)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte(`{}`), 0644))

	select {
	case <-reloaded:
		t.Fatal("unexpected reload for unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_StartTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	assert.ErrorIs(t, w.Start(context.Background()), ErrAlreadyStarted)
}

func TestWatcher_StopWithoutStart(t *testing.T) {
	w, err := NewWatcher("session.json")
	require.NoError(t, err)
	w.Stop()
	assert.True(t, filepath.IsAbs(w.Path()))
}
