package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("sanitizer:\n  prefix: safe_\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	reloaded := make(chan *Config, 1)
	w := NewWatcher(path, nil)
	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, func(cfg *Config) {
			select {
			case reloaded <- cfg:
			default:
			}
		})
	}()

	// Give the watcher time to register before rewriting the file.
	time.Sleep(200 * time.Millisecond)
	if err := os.WriteFile(path, []byte("sanitizer:\n  prefix: renamed_\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.Sanitizer.Prefix != "renamed_" {
			t.Errorf("reloaded prefix = %q, want %q", cfg.Sanitizer.Prefix, "renamed_")
		}
	case <-ctx.Done():
		t.Fatal("watcher never delivered the reloaded configuration")
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Watch() returned %v, want context.Canceled", err)
	}
}

func TestWatcher_SkipsInvalidReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("sanitizer:\n  prefix: safe_\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	w := NewWatcher(path, nil)
	reloaded := make(chan *Config, 1)
	go func() {
		_ = w.Watch(ctx, func(cfg *Config) { reloaded <- cfg })
	}()

	time.Sleep(200 * time.Millisecond)
	if err := os.WriteFile(path, []byte("logging:\n  level: shouting\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloaded:
		t.Errorf("invalid configuration was delivered: %+v", cfg)
	case <-ctx.Done():
		// The failed reload was skipped, as intended.
	}
}
