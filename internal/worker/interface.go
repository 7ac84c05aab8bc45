package worker

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/audio-queue/internal/processor"
)

// ErrLocked is returned by Run when another worker holds the queue lock.
var ErrLocked = errors.New("another worker is already running on this queue")

// Summary describes one poll cycle.
type Summary struct {
	CycleID  string
	Found    int
	Outcomes map[processor.Outcome]int
	// Interrupted is set when the cycle stopped before visiting every job.
	Interrupted bool
	Err         error
}

// Worker drives the poll loop over the inbox.
type Worker interface {
	// Run holds the queue lock and runs poll cycles until ctx is done.
	// It returns nil on a clean stop.
	Run(ctx context.Context) error
	// RunCycle scans the inbox once and processes every job found, oldest
	// first, one at a time.
	RunCycle(ctx context.Context) Summary
}
