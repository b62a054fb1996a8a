package driven

import "context"

// FileWatcher invokes a callback when a watched file changes on disk.
type FileWatcher interface {
	// Watch blocks until ctx is cancelled, calling onChange after each
	// write or create of path.
	Watch(ctx context.Context, path string, onChange func()) error
}
