package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(20 * time.Millisecond)
	}
	return cond()
}

func TestWatcherDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, ".docextract.yml")
	if err := os.WriteFile(cfg, []byte("site:\n  title: A\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var mu sync.Mutex
	var calls []string
	w := New([]string{cfg}, func(path string) {
		mu.Lock()
		calls = append(calls, path)
		mu.Unlock()
	}, WithDebounce(100*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	for _, title := range []string{"B", "C", "D"} {
		if err := os.WriteFile(cfg, []byte("site:\n  title: "+title+"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	ok := waitFor(t, 2*time.Second, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(calls) > 0
	})
	if !ok {
		t.Fatal("onChange was not called")
	}
	time.Sleep(300 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(calls) != 1 {
		t.Errorf("calls = %d, want 1 after a burst of writes", len(calls))
	}
	abs, _ := filepath.Abs(cfg)
	if calls[0] != abs {
		t.Errorf("path = %q, want %q", calls[0], abs)
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, ".docextract.yml")
	if err := os.WriteFile(cfg, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	var mu sync.Mutex
	called := false
	w := New([]string{cfg}, func(string) {
		mu.Lock()
		called = true
		mu.Unlock()
	}, WithDebounce(20*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(200 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if called {
		t.Error("onChange fired for an unwatched file")
	}
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	w := New([]string{filepath.Join(dir, "c.yml")}, nil)
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	w.Stop()
	w.Stop()
}
