package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchDeliversReloadedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("window:\n  width: 800\n  height: 600\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := Watch(ctx, path)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	// An invalid write is skipped; the valid one that follows is delivered.
	if err := os.WriteFile(path, []byte("fur:\n  shell_count: 0\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite config: %v", err)
	}
	if err := os.WriteFile(path, []byte("fur:\n  shell_count: 6\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite config: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-updates:
			if cfg.Fur.ShellCount == 6 {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for reloaded config")
		}
	}
}

func TestWatchClosesOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	updates, err := Watch(ctx, path)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	cancel()

	select {
	case _, ok := <-updates:
		if ok {
			// A pending update may still drain before the close.
			if _, ok := <-updates; ok {
				t.Error("expected channel to close after cancel")
			}
		}
	case <-time.After(5 * time.Second):
		t.Fatal("channel did not close after cancel")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	if _, err := Watch(context.Background(), "/nonexistent/dir/config.yaml"); err == nil {
		t.Error("expected error watching a missing directory")
	}
}

func TestDeliverKeepsLatest(t *testing.T) {
	out := make(chan *Config, 1)
	first, second := Default(), Default()
	second.Window.Width = 640

	deliver(out, first)
	deliver(out, second)

	if got := <-out; got != second {
		t.Error("expected the latest config to replace the pending one")
	}
}
