package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

// collector hands trigger calls to the test goroutine. Calls beyond the
// buffer are dropped so the loop never blocks.
type collector struct {
	ch chan []string
}

func newCollector() *collector {
	return &collector{ch: make(chan []string, 16)}
}

func (c *collector) trigger(changed []string) error {
	select {
	case c.ch <- changed:
	default:
	}
	return nil
}

func (c *collector) wait(t *testing.T) []string {
	t.Helper()
	select {
	case changed := <-c.ch:
		return changed
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for trigger")
		return nil
	}
}

func start(t *testing.T, w *Watcher, fn Trigger) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, fn) }()
	t.Cleanup(func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("Run: %v", err)
		}
	})
}

func TestTriggerOnWrite(t *testing.T) {
	dir := t.TempDir()
	profile := filepath.Join(dir, "road.yaml")
	other := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(profile, []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := New([]string{profile}, Options{Debounce: 20 * time.Millisecond, Logger: zap.NewNop()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c := newCollector()
	start(t, w, c.trigger)

	// Unwatched files in the same directory are ignored.
	if err := os.WriteFile(other, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(profile, []byte("b"), 0644); err != nil {
		t.Fatal(err)
	}

	changed := c.wait(t)
	want, _ := filepath.Abs(profile)
	if len(changed) != 1 || changed[0] != want {
		t.Errorf("changed = %v, want [%s]", changed, want)
	}
}

func TestTriggerOnAtomicReplace(t *testing.T) {
	dir := t.TempDir()
	profile := filepath.Join(dir, "road.toml")
	if err := os.WriteFile(profile, []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := New([]string{profile}, Options{Debounce: 20 * time.Millisecond, Logger: zap.NewNop()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c := newCollector()
	start(t, w, c.trigger)

	tmp := filepath.Join(dir, ".road.toml.swp")
	if err := os.WriteFile(tmp, []byte("b"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, profile); err != nil {
		t.Fatal(err)
	}

	if changed := c.wait(t); len(changed) != 1 {
		t.Errorf("changed = %v", changed)
	}
}

func TestTriggerOnInterval(t *testing.T) {
	w, err := New(nil, Options{Interval: 10 * time.Millisecond, Logger: zap.NewNop()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c := newCollector()
	start(t, w, c.trigger)

	for i := 0; i < 2; i++ {
		if changed := c.wait(t); len(changed) != 0 {
			t.Errorf("ticker trigger should report no files, got %v", changed)
		}
	}
}

func TestTriggerErrorKeepsRunning(t *testing.T) {
	w, err := New(nil, Options{Interval: 10 * time.Millisecond, Logger: zap.NewNop()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	calls := make(chan struct{}, 4)
	start(t, w, func([]string) error {
		select {
		case calls <- struct{}{}:
		default:
		}
		return errors.New("bad profile")
	})

	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(5 * time.Second):
			t.Fatal("loop stopped after a failed trigger")
		}
	}
}

func TestNewRejectsNothing(t *testing.T) {
	if _, err := New(nil, Options{}); err == nil {
		t.Error("expected error with no files and no interval")
	}
}

func TestNewMissingDir(t *testing.T) {
	if _, err := New([]string{"/nonexistent/dir/road.yaml"}, Options{}); err == nil {
		t.Error("expected error for a missing directory")
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := New([]string{filepath.Join(dir, "b.yaml"), filepath.Join(dir, "a.yaml")}, Options{Logger: zap.NewNop()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.fs.Close()

	files := w.Files()
	if len(files) != 2 || filepath.Base(files[0]) != "a.yaml" {
		t.Errorf("Files() = %v", files)
	}
}
