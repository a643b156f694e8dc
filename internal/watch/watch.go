// Package watch triggers regeneration when input files change or a ticker
// fires.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/roadmesh/internal/logger"
)

// Options controls the loop timing.
type Options struct {
	// Debounce groups bursts of events, e.g. an editor's write+rename.
	Debounce time.Duration
	// Interval also triggers on a fixed period when > 0.
	Interval time.Duration
	Logger   *zap.Logger
}

// Trigger is called from the loop goroutine. changed lists the watched
// files that changed, sorted; it is empty for ticker triggers. A returned
// error is logged and the loop continues.
type Trigger func(changed []string) error

// Watcher watches a fixed set of files.
type Watcher struct {
	fs    *fsnotify.Watcher
	files map[string]struct{}
	opts  Options
	log   *zap.Logger
}

// New watches files. Their directories are watched rather than the files
// themselves, so files replaced by rename keep being tracked.
func New(files []string, opts Options) (*Watcher, error) {
	if len(files) == 0 && opts.Interval <= 0 {
		return nil, errors.New("nothing to watch: no files and no interval")
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fs:    fs,
		files: make(map[string]struct{}),
		opts:  opts,
		log:   opts.Logger,
	}
	if w.log == nil {
		w.log = logger.Named("watch")
	}

	dirs := make(map[string]struct{})
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fs.Close()
			return nil, err
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := fs.Add(dir); err != nil {
			fs.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	return w, nil
}

// Files returns the watched files, sorted.
func (w *Watcher) Files() []string {
	out := make([]string, 0, len(w.files))
	for f := range w.files {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// relevant reports whether e touches a watched file in a way worth a reload.
func (w *Watcher) relevant(e fsnotify.Event) (string, bool) {
	if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) && !e.Has(fsnotify.Rename) {
		return "", false
	}
	abs, err := filepath.Abs(e.Name)
	if err != nil {
		return "", false
	}
	_, ok := w.files[abs]
	return abs, ok
}

// Run blocks until ctx is done, calling fn after each debounced batch of
// file changes and on every interval tick. The watcher is closed on return.
func (w *Watcher) Run(ctx context.Context, fn Trigger) error {
	defer w.fs.Close()

	var tick <-chan time.Time
	if w.opts.Interval > 0 {
		ticker := time.NewTicker(w.opts.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	// Armed by the first relevant event.
	debounce := time.NewTimer(time.Hour)
	debounce.Stop()
	defer debounce.Stop()
	pending := make(map[string]struct{})

	fire := func(changed []string) {
		if err := fn(changed); err != nil {
			w.log.Warn("regeneration trigger failed", zap.Strings("changed", changed), zap.Error(err))
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case e, ok := <-w.fs.Events:
			if !ok {
				return errors.New("file watcher closed")
			}
			name, ok := w.relevant(e)
			if !ok {
				continue
			}
			w.log.Debug("file changed", zap.String("file", name), zap.Stringer("op", e.Op))
			pending[name] = struct{}{}
			debounce.Reset(w.opts.Debounce)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return errors.New("file watcher closed")
			}
			w.log.Error("file watcher error", zap.Error(err))

		case <-debounce.C:
			changed := make([]string, 0, len(pending))
			for name := range pending {
				changed = append(changed, name)
			}
			sort.Strings(changed)
			clear(pending)
			fire(changed)

		case <-tick:
			fire(nil)
		}
	}
}
