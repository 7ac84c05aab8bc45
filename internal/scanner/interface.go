package scanner

import (
	"context"
	"time"
)

// Job is one audio file waiting in the inbox. Its identity is Name.
type Job struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
}

// Scanner lists the jobs currently waiting in the inbox.
type Scanner interface {
	// Scan re-reads the inbox from scratch and returns recognized files,
	// oldest modification time first.
	Scan(ctx context.Context) ([]Job, error)
}
