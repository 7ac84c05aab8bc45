package enqueue

import "context"

// Status is the result of submitting one file.
type Status string

const (
	StatusQueued        Status = "queued"
	StatusNotFound      Status = "not-found"
	StatusNotAFile      Status = "not-a-file"
	StatusAlreadyQueued Status = "already-queued"
	StatusUnsupported   Status = "unsupported"
	StatusError         Status = "error"
)

// Result reports what happened to one submitted path. Err is set only for
// StatusError.
type Result struct {
	Path   string
	Name   string
	Status Status
	Err    error
}

// Enqueuer copies audio files into the inbox.
type Enqueuer interface {
	// Enqueue submits each path independently; one bad path never stops
	// the others. Files already in the inbox under the same name are never
	// overwritten.
	Enqueue(ctx context.Context, paths []string) []Result
}
