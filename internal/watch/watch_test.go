package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

// waitFor polls cond until it holds or the timeout passes.
func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return cond()
}

func startWatcher(t *testing.T, path string, debounce time.Duration, onChange func() error) (*Watcher, func() error) {
	t.Helper()
	w, err := New(path, debounce, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, onChange) }()

	// Give the watcher time to start
	time.Sleep(50 * time.Millisecond)

	stop := func() error {
		cancel()
		return <-done
	}
	return w, stop
}

func TestWatcherDetectsChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.lua")
	if err := os.WriteFile(path, []byte("clear()"), 0o644); err != nil {
		t.Fatal(err)
	}

	var calls atomic.Int32
	_, stop := startWatcher(t, path, 30*time.Millisecond, func() error {
		calls.Add(1)
		return nil
	})

	if err := os.WriteFile(path, []byte("clear(0)"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !waitFor(t, 2*time.Second, func() bool { return calls.Load() >= 1 }) {
		t.Error("change not reported")
	}
	if err := stop(); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
}

func TestWatcherDebounces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.lua")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	var calls atomic.Int32
	_, stop := startWatcher(t, path, 150*time.Millisecond, func() error {
		calls.Add(1)
		return nil
	})
	defer stop()

	for i := range 5 {
		if err := os.WriteFile(path, []byte{byte('a' + i)}, 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}
	if !waitFor(t, 2*time.Second, func() bool { return calls.Load() >= 1 }) {
		t.Fatal("burst not reported")
	}
	time.Sleep(300 * time.Millisecond)
	if n := calls.Load(); n != 1 {
		t.Errorf("burst of writes fired %d times, want 1", n)
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.lua")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	var calls atomic.Int32
	_, stop := startWatcher(t, path, 20*time.Millisecond, func() error {
		calls.Add(1)
		return nil
	})
	defer stop()

	if err := os.WriteFile(filepath.Join(dir, "other.lua"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(200 * time.Millisecond)
	if n := calls.Load(); n != 0 {
		t.Errorf("unrelated file fired %d times", n)
	}
}

func TestWatcherHandlerErrorKeepsRunning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.lua")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	var calls atomic.Int32
	_, stop := startWatcher(t, path, 20*time.Millisecond, func() error {
		calls.Add(1)
		return errors.New("bad script")
	})
	defer stop()

	for i := range 2 {
		if err := os.WriteFile(path, []byte{byte(i)}, 0o644); err != nil {
			t.Fatal(err)
		}
		want := int32(i + 1)
		if !waitFor(t, 2*time.Second, func() bool { return calls.Load() >= want }) {
			t.Fatalf("change %d not reported", i+1)
		}
	}
}

func TestNewMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "scene.lua")
	if _, err := New(path, 0, nil); err == nil {
		t.Error("New on a missing directory succeeded")
	}
}

func TestPathIsAbsolute(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	w, err := New("scene.lua", 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer w.watcher.Close()
	if !filepath.IsAbs(w.Path()) || filepath.Base(w.Path()) != "scene.lua" {
		t.Errorf("Path() = %q", w.Path())
	}
	if w.debounce != DefaultDebounce {
		t.Errorf("debounce = %v, want %v", w.debounce, DefaultDebounce)
	}
}
