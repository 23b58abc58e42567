package lsp

import (
	"context"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Watcher invalidates server state when watched files change on disk
// outside the editor. A dropped snapshot makes the next publish report
// every populated line, so clients recover from external edits without
// a reopen.
type Watcher struct {
	server  *Server
	watcher *fsnotify.Watcher
}

func NewWatcher(server *Server, paths ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Errorf("creating fsnotify watcher: %w", err)
	}
	for _, path := range paths {
		if err := fsw.Add(path); err != nil {
			fsw.Close()
			return nil, errors.Errorf("watching %s: %w", path, err)
		}
	}
	return &Watcher{server: server, watcher: fsw}, nil
}

// Add registers another path with the watcher.
func (w *Watcher) Add(path string) error {
	if err := w.watcher.Add(path); err != nil {
		return errors.Errorf("watching %s: %w", path, err)
	}
	return nil
}

// Run processes filesystem events until the context is canceled or the
// watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug().
				Str("path", event.Name).
				Str("op", event.Op.String()).
				Msg("file changed on disk, invalidating")
			// Open editor buffers stay authoritative; only disk-backed
			// fallback reads are invalidated.
			if doc, ok := w.server.documents.Peek(event.Name); ok && doc.LanguageID == "" {
				w.server.documents.Delete(event.Name)
			}
			w.server.snapshots.Drop(event.Name)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("watcher error")
		}
	}
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}
