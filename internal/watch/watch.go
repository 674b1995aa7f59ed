// Package watch re-runs a callback whenever the plugin documents under an
// input path change.
//
// fsnotify watches are not recursive, so every directory below the input
// is watched individually and directories created later are added as they
// appear. A single file input is watched through its parent directory,
// which keeps the watch alive across editors that save by renaming.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"oboro/pkg/logging"
)

// DefaultDebounce is used when no debounce interval is given.
const DefaultDebounce = 500 * time.Millisecond

// ChangeEvent describes one settled batch of changes.
type ChangeEvent struct {
	Paths     []string
	Timestamp time.Time
}

// HandlerFunc is called once per settled batch. Returned errors are logged
// and watching continues.
type HandlerFunc func(ctx context.Context, event ChangeEvent) error

// Watcher watches an input file or directory.
type Watcher struct {
	path     string
	file     string // set when path is a single file
	debounce time.Duration
	filter   func(path string) bool
}

// New creates a watcher for path. filter decides which files inside a
// watched directory are relevant; nil accepts every file.
func New(path string, debounce time.Duration, filter func(path string) bool) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if filter == nil {
		filter = func(string) bool { return true }
	}
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		filter:   filter,
	}
}

// Run blocks until ctx is done, calling handler after every settled batch
// of changes. Calls to handler never overlap.
func (w *Watcher) Run(ctx context.Context, handler HandlerFunc) error {
	info, err := os.Stat(w.path)
	if err != nil {
		return fmt.Errorf("watching %s: %w", w.path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if info.IsDir() {
		if err := w.addTree(fw, w.path); err != nil {
			return err
		}
	} else {
		w.file = w.path
		if err := fw.Add(filepath.Dir(w.path)); err != nil {
			return fmt.Errorf("watching %s: %w", filepath.Dir(w.path), err)
		}
	}
	logging.Info("Watch", "Watching %s for changes", w.path)

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending = make(map[string]struct{})
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(fw, event) {
				continue
			}
			logging.Debug("Watch", "%s %s", event.Op, event.Name)
			pending[event.Name] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logging.Error("Watch", err, "Filesystem watcher error")

		case <-timerC:
			timerC = nil
			change := ChangeEvent{Paths: sortedKeys(pending), Timestamp: time.Now()}
			clear(pending)
			if err := handler(ctx, change); err != nil {
				logging.Error("Watch", err, "Handling change to %s failed", strings.Join(change.Paths, ", "))
			}
		}
	}
}

func (w *Watcher) relevant(fw *fsnotify.Watcher, event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	if w.file != "" {
		return filepath.Clean(event.Name) == w.file
	}
	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false
	}
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addTree(fw, event.Name); err != nil {
				logging.Warn("Watch", "Cannot watch new directory %s: %v", event.Name, err)
			}
			return true
		}
	}
	return w.filter(event.Name)
}

// addTree watches dir and every non-hidden directory below it.
func (w *Watcher) addTree(fw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := fw.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		logging.Debug("Watch", "Watching directory: %s", path)
		return nil
	})
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
