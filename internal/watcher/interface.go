package watcher

import "context"

// Watcher reports new files arriving in the inbox. It only wakes the poll
// loop early; scanning the inbox stays the source of truth, since
// notifications are not delivered on every filesystem.
type Watcher interface {
	// Start forwards inbox events until ctx is done.
	Start(ctx context.Context) error
	// Wake receives a value after one or more recognized files appeared.
	Wake() <-chan struct{}
	Stop() error
}
