package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWatchAppliesValidChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.yaml")

	cfg := Default()
	require.NoError(t, cfg.SaveToFile(path))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	applied := make(chan *Config, 4)
	go func() {
		_ = Watch(ctx, path, zap.NewNop(), func(c *Config) { applied <- c })
	}()

	// Give the watcher a moment to register before the write.
	time.Sleep(100 * time.Millisecond)

	cfg.Chart.Window = 60
	require.NoError(t, cfg.SaveToFile(path))

	select {
	case got := <-applied:
		require.Equal(t, 60, got.Chart.Window)
	case <-time.After(5 * time.Second):
		t.Fatal("config change was never applied")
	}
}

func TestWatchSkipsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.yaml")

	cfg := Default()
	require.NoError(t, cfg.SaveToFile(path))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	applied := make(chan *Config, 4)
	go func() {
		_ = Watch(ctx, path, zap.NewNop(), func(c *Config) { applied <- c })
	}()

	time.Sleep(100 * time.Millisecond)

	bad := Default()
	bad.Chart.Window = 0
	// SaveToFile does not validate; the watcher must.
	require.NoError(t, bad.SaveToFile(path))

	select {
	case got := <-applied:
		t.Fatalf("invalid config was applied: %+v", got.Chart)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatchAppliesCompleteWriteAfterPartialOne(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.yaml")

	cfg := Default()
	require.NoError(t, cfg.SaveToFile(path))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	applied := make(chan *Config, 4)
	go func() {
		_ = Watch(ctx, path, zap.NewNop(), func(c *Config) { applied <- c })
	}()

	time.Sleep(100 * time.Millisecond)

	// An editor mid-save: an invalid intermediate state immediately
	// followed by the full file. The failed load must not start the
	// cooldown and shadow the good write.
	require.NoError(t, os.WriteFile(path, []byte("chart:\n  window: 0\n"), 0o644))
	cfg.Chart.Window = 45
	require.NoError(t, cfg.SaveToFile(path))

	select {
	case got := <-applied:
		require.Equal(t, 45, got.Chart.Window)
	case <-time.After(5 * time.Second):
		t.Fatal("complete write after a partial one was never applied")
	}
}

func TestWatchStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.yaml")
	require.NoError(t, Default().SaveToFile(path))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, zap.NewNop(), func(*Config) {})
	}()

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop on cancel")
	}
}
