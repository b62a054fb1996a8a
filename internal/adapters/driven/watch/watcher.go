// Package watch notifies callers when a file on disk changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/onboardai/onboard/internal/core/ports/driven"
	"github.com/onboardai/onboard/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.FileWatcher = (*Watcher)(nil)

// Watcher watches a single file via its parent directory, so that atomic
// replace-by-rename writes are still observed.
type Watcher struct{}

// New creates a file watcher.
func New() *Watcher {
	return &Watcher{}
}

// Watch blocks until ctx is cancelled and calls onChange each time path is
// written, created or renamed into place.
func (w *Watcher) Watch(ctx context.Context, path string, onChange func()) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	logger.Debug("Watching %s", path)

	name := filepath.Base(path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if relevant(event, name) {
				logger.Debug("Detected change to %s (%s)", event.Name, event.Op)
				onChange()
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error on %s: %v", dir, err)
		}
	}
}

// relevant reports whether event touched the file called name in a way that
// may have changed its contents. Removals and chmods are ignored.
func relevant(event fsnotify.Event, name string) bool {
	if filepath.Base(event.Name) != name {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
