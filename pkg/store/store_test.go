package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func backends(t *testing.T) map[string]Backend {
	t.Helper()
	d, err := NewDiskv(t.TempDir())
	if err != nil {
		t.Fatalf("diskv: %v", err)
	}
	s, err := NewSQLite(t.TempDir())
	if err != nil {
		t.Fatalf("sqlite: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return map[string]Backend{
		DriverDiskv:  d,
		DriverSQLite: s,
		DriverMemory: NewMemory(),
	}
}

func TestBackendsReadWrite(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := b.Read("missing"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
			if b.Has("gratitude_entries") {
				t.Fatal("expected key to be absent")
			}
			if err := b.Write("gratitude_entries", []byte(`[]`)); err != nil {
				t.Fatalf("write: %v", err)
			}
			if err := b.Write("gratitude_entries", []byte(`[{"id":"a"}]`)); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			got, err := b.Read("gratitude_entries")
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if string(got) != `[{"id":"a"}]` {
				t.Fatalf("unexpected value %q", got)
			}
			if !b.Has("gratitude_entries") {
				t.Fatal("expected key to be present")
			}
			keys := b.Keys(context.Background())
			if len(keys) != 1 || keys[0] != "gratitude_entries" {
				t.Fatalf("unexpected keys %v", keys)
			}
			if err := b.Erase("gratitude_entries"); err != nil {
				t.Fatalf("erase: %v", err)
			}
			if err := b.Erase("gratitude_entries"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound on second erase, got %v", err)
			}
		})
	}
}

func TestDiskvNestedKeys(t *testing.T) {
	b, err := NewDiskv(t.TempDir())
	if err != nil {
		t.Fatalf("diskv: %v", err)
	}
	if err := b.Write("backups/2026-10-15", []byte("x")); err != nil {
		t.Fatalf("write: %v", err)
	}
	keys := b.Keys(context.Background())
	if len(keys) != 1 || keys[0] != "backups/2026-10-15" {
		t.Fatalf("unexpected keys %v", keys)
	}
}

func TestOpenSelectsDriver(t *testing.T) {
	b, err := Open(StaticConfig{Store: DriverMemory})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, ok := b.(*Memory); !ok {
		t.Fatalf("expected memory backend, got %T", b)
	}
	if _, err := Open(StaticConfig{Path: t.TempDir(), Store: "etcd"}); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(ConfigPathEnv, dir)
	t.Setenv("GRATITUDE_PATH", dir)
	t.Setenv("GRATITUDE_STORE", DriverSQLite)
	t.Setenv("GRATITUDE_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BasePath() != dir {
		t.Fatalf("expected path %q, got %q", dir, cfg.BasePath())
	}
	if cfg.Driver() != DriverSQLite {
		t.Fatalf("expected sqlite driver, got %q", cfg.Driver())
	}
	if cfg.LogLevel() != "debug" {
		t.Fatalf("expected debug level, got %q", cfg.LogLevel())
	}
	if cfg.Reminder() != DefaultReminder {
		t.Fatalf("expected default reminder, got %q", cfg.Reminder())
	}
}

func TestWatchEmitsBlobChanges(t *testing.T) {
	b, err := NewDiskv(t.TempDir())
	if err != nil {
		t.Fatalf("diskv: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := Watch(ctx, b)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe to directories before writing.
	time.Sleep(50 * time.Millisecond)

	if err := b.Write("gratitude_entries", []byte(`[]`)); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventBlobChanged && evt.Key == "gratitude_entries" {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for blob change event")
		}
	}
}

func TestWatchRequiresDirectory(t *testing.T) {
	if _, err := Watch(context.Background(), NewMemory()); err == nil {
		t.Fatal("expected error watching memory backend")
	}
}
