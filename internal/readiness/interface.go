package readiness

import "context"

// Detector decides whether a file in the inbox is safe to process.
//
// The check is a heuristic: a file is taken as fully written when its size
// is non-zero and does not change across the settle interval. A producer
// that stalls for at least the settle interval mid-copy will look ready.
// Producers that can should write under a temporary name and rename into
// the inbox.
type Detector interface {
	Ready(ctx context.Context, path string) bool
}
