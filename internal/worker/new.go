package worker

import (
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/nguyentantai21042004/audio-queue/internal/config"
	"github.com/nguyentantai21042004/audio-queue/internal/logger"
	"github.com/nguyentantai21042004/audio-queue/internal/processor"
	"github.com/nguyentantai21042004/audio-queue/internal/scanner"
	"github.com/nguyentantai21042004/audio-queue/internal/watcher"
)

// LockFileName is created in the queue root while a worker runs.
const LockFileName = ".worker.lock"

type implWorker struct {
	scanner   scanner.Scanner
	processor processor.Processor
	watcher   watcher.Watcher
	logger    logger.Logger
	interval  time.Duration
	lockPath  string
	lock      *flock.Flock
}

// New creates a Worker. watch may be nil, in which case the worker only polls.
func New(layout config.Layout, interval time.Duration, sc scanner.Scanner, proc processor.Processor, watch watcher.Watcher, log logger.Logger) Worker {
	lockPath := filepath.Join(layout.Root, LockFileName)
	return &implWorker{
		scanner:   sc,
		processor: proc,
		watcher:   watch,
		logger:    log,
		interval:  interval,
		lockPath:  lockPath,
		lock:      flock.New(lockPath),
	}
}
