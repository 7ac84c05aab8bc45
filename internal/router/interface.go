package router

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/audio-queue/internal/scanner"
)

// ErrVanished is returned when a job's file disappeared before it could be moved.
var ErrVanished = errors.New("job file no longer exists")

// Router moves finished jobs out of the inbox into a terminal directory.
type Router interface {
	// ToDone moves the job into the done directory and returns its new path.
	ToDone(ctx context.Context, job scanner.Job) (string, error)
	// ToFailed moves the job into the failed directory and returns its new path.
	ToFailed(ctx context.Context, job scanner.Job) (string, error)
}
