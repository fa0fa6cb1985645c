package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watcher tracks the files a dump depends on. Editors often replace files
// instead of writing them in place, so the parent directories are watched
// and events are filtered by name.
type watcher struct {
	fs    *fsnotify.Watcher
	dirs  map[string]bool
	files map[string]bool
}

func newWatcher() (*watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &watcher{fs: fs, dirs: make(map[string]bool)}, nil
}

func (w *watcher) Close() error {
	return w.fs.Close()
}

// track replaces the watched file set.
func (w *watcher) track(files []string) error {
	w.files = make(map[string]bool, len(files))
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		w.files[abs] = true

		dir := filepath.Dir(abs)
		if w.dirs[dir] {
			continue
		}
		if err := w.fs.Add(dir); err != nil {
			return err
		}
		w.dirs[dir] = true
	}
	return nil
}

// relevant reports whether e changes one of the tracked files.
func (w *watcher) relevant(e fsnotify.Event) bool {
	if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) && !e.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(e.Name)
	if err != nil {
		return false
	}
	return w.files[abs]
}

// watch re-exports every time a tracked file changes, until ctx is done.
func watch(ctx context.Context, c config, files []string, stdout io.Writer, logger *slog.Logger) error {
	w, err := newWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.track(files); err != nil {
		return err
	}
	logger.Info("watching", "files", len(w.files))

	for {
		select {
		case e, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !w.relevant(e) {
				continue
			}
			logger.Debug("file changed", "file", e.Name, "op", e.Op.String())
			files, err := export(c, stdout, logger)
			if err != nil {
				logger.Error("export failed", "err", err)
			}
			if err := w.track(files); err != nil {
				return err
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "err", err)

		case <-ctx.Done():
			return nil
		}
	}
}
