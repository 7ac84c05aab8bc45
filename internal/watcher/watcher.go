package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/audio-queue/internal/config"
	"github.com/nguyentantai21042004/audio-queue/internal/logger"
)

type implWatcher struct {
	layout  config.Layout
	logger  logger.Logger
	watcher *fsnotify.Watcher
	wake    chan struct{}
}

// Start begins monitoring the inbox for new audio files
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Debug(ctx, "Inbox watcher started: %s", w.layout.Inbox)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			w.handle(ctx, event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Warn(ctx, "Watcher error: %v", err)
		}
	}
}

// handle nudges the poll loop for creations of recognized files. Renames
// into the inbox arrive as Create.
func (w *implWatcher) handle(ctx context.Context, event fsnotify.Event) {
	if !event.Has(fsnotify.Create) {
		return
	}

	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") || !w.layout.Recognized(name) {
		w.logger.Debug(ctx, "Ignoring inbox entry: %s", name)
		return
	}

	w.logger.Debug(ctx, "New audio detected: %s", name)
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

func (w *implWatcher) Wake() <-chan struct{} {
	return w.wake
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}
