// Package watch follows a module's source tree and reports batches of Java
// source changes, so generated launch configurations can track the code.
package watch

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a file must be quiet before it is reported.
const DefaultDebounce = 100 * time.Millisecond

// Batch is a set of source files that changed together.
type Batch struct {
	Files []string // sorted
}

// Watcher monitors every directory under Dir for .java changes.
type Watcher struct {
	Dir      string
	Debounce time.Duration
	Logger   *log.Logger

	Changes <-chan Batch

	changes chan Batch
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the source tree rooted at dir.
func NewWatcher(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan Batch, 16)
	return &Watcher{
		Dir:      dir,
		Debounce: DefaultDebounce,
		Changes:  ch,
		changes:  ch,
		done:     make(chan struct{}),
		watcher:  fw,
	}, nil
}

// Start adds Dir and all of its subdirectories and begins watching.
// Directories created later are picked up as they appear.
func (w *Watcher) Start() error {
	err := filepath.WalkDir(w.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		w.watcher.Close()
		return err
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				w.flush(pending, time.Time{})
				return
			}
			if event.Has(fsnotify.Create) {
				w.addIfDir(event.Name)
			}
			if !isSource(event.Name) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending[event.Name] = time.Now()
			}

		case now := <-ticker.C:
			w.flush(pending, now.Add(-debounce))

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.Logger != nil {
				w.Logger.Warn("watch error", "err", err)
			}
		}
	}
}

// flush emits every pending file last touched at or before cutoff as one
// batch. A zero cutoff flushes everything.
func (w *Watcher) flush(pending map[string]time.Time, cutoff time.Time) {
	var files []string
	for file, t := range pending {
		if cutoff.IsZero() || !t.After(cutoff) {
			files = append(files, file)
			delete(pending, file)
		}
	}
	if len(files) == 0 {
		return
	}
	sort.Strings(files)
	w.changes <- Batch{Files: files}
}

func (w *Watcher) addIfDir(path string) {
	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.watcher.Add(p)
		}
		return nil
	})
	if err != nil && w.Logger != nil {
		// The directory was removed before it could be added.
		w.Logger.Debug("not watching", "path", path, "err", err)
	}
}

func isSource(name string) bool {
	return strings.HasSuffix(name, ".java")
}

// Run watches dir until ctx is done, calling regenerate after each batch.
// Errors from regenerate are logged and watching continues.
func Run(ctx context.Context, dir string, logger *log.Logger, regenerate func(Batch) error) error {
	w, err := NewWatcher(dir)
	if err != nil {
		return err
	}
	w.Logger = logger
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case batch := <-w.Changes:
			if err := regenerate(batch); err != nil && logger != nil {
				logger.Error("regenerate failed", "err", err)
			}
		}
	}
}
