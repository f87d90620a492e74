package store

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/relabs-tech/safetynet/core/logger"
)

type watcher struct {
	fsw *fsnotify.Watcher
}

// Watch reloads the document whenever the backing file changes on disk, until
// ctx is cancelled. A reload that fails validation is logged and the previous
// document remains active. Reloading after the store's own rewrite is
// harmless, the file content equals the in-memory document then.
func (s *Store) Watch(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// Watch the directory, not the file. Atomic saves replace the inode and
	// a watch on the file itself would go stale after the first rename.
	if err := fsw.Add(filepath.Dir(s.path)); err != nil {
		fsw.Close()
		return err
	}
	s.watcher = &watcher{fsw: fsw}

	rlog := logger.Default().WithField("path", s.path)
	rlog.Debug("store: watching for changes")

	go func() {
		for {
			select {
			case <-ctx.Done():
				fsw.Close()
				return

			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(s.path) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				if err := s.load(); err != nil {
					rlog.WithError(err).Warn("store: reload failed, keeping previous document")
					continue
				}
				reloadsTotal.Inc()
				rlog.Debug("store: reloaded")

			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				rlog.WithError(err).Warn("store: watcher error")
			}
		}
	}()
	return nil
}

func (w *watcher) close() error {
	return w.fsw.Close()
}
