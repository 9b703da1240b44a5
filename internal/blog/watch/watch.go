// Package watch reloads the blog catalog when the local content directory
// changes, so local edits show up without a restart.
package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"inkwell/internal/blog/source"
)

const (
	defaultDebounceWindow = 500 * time.Millisecond
	reloadTimeout         = 30 * time.Second
)

// Reloader is what a change triggers; the blog service implements it.
type Reloader interface {
	Reload(ctx context.Context) error
}

// Watcher watches a content directory tree and debounces change events into
// catalog reloads.
type Watcher struct {
	dir       string
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	reloader  Reloader
	logger    *slog.Logger
	cancel    context.CancelFunc
}

type Option func(w *Watcher)

func WithLogger(logger *slog.Logger) Option {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// WithDebounceWindow overrides the quiet window before a reload fires.
func WithDebounceWindow(window time.Duration) Option {
	return func(w *Watcher) {
		w.debouncer = NewDebouncer(window, w.reload)
	}
}

// New creates a watcher over dir that calls reloader after changes settle.
func New(dir string, reloader Reloader, opts ...Option) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		dir:       dir,
		fsWatcher: fsWatcher,
		reloader:  reloader,
		logger:    slog.Default(),
	}
	w.debouncer = NewDebouncer(defaultDebounceWindow, w.reload)
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Start registers the directory tree and begins handling events until the
// context is cancelled or Close is called.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.addTree(w.dir); err != nil {
		return err
	}

	ctx, w.cancel = context.WithCancel(ctx)
	go w.handleEvents(ctx)

	w.logger.Info("watching content directory", "dir", w.dir)
	return nil
}

func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() {
			return nil
		}
		if strings.HasPrefix(entry.Name(), ".") && path != dir {
			return filepath.SkipDir
		}
		return w.fsWatcher.Add(path)
	})
}

func (w *Watcher) handleEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(event.Name); err != nil {
						w.logger.Warn("failed to watch new directory",
							"dir", event.Name, "error", err)
					}
				}
			}
			if w.relevant(event) {
				w.debouncer.Trigger()
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "error", err)
		}
	}
}

// relevant filters out noise: only the manifest and markdown files feed the
// catalog, and only mutations matter.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Base(event.Name)
	return name == source.ManifestFile || strings.HasSuffix(name, ".md")
}

func (w *Watcher) reload() {
	ctx, cancel := context.WithTimeout(context.Background(), reloadTimeout)
	defer cancel()

	if err := w.reloader.Reload(ctx); err != nil {
		w.logger.Error("reload after content change failed", "error", err)
		return
	}
	w.logger.Info("catalog reloaded after content change")
}

// Close stops event handling and releases the underlying watcher.
func (w *Watcher) Close() error {
	if w.cancel != nil {
		w.cancel()
	}
	w.debouncer.Stop()
	return w.fsWatcher.Close()
}
