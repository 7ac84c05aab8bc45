package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/audio-queue/internal/processor"
	"github.com/nguyentantai21042004/audio-queue/internal/scanner"
)

func (w *implWorker) Run(ctx context.Context) error {
	ok, err := w.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock %s: %w", w.lockPath, err)
	}
	if !ok {
		return fmt.Errorf("%w (lock %s)", ErrLocked, w.lockPath)
	}
	defer func() {
		if err := w.lock.Unlock(); err != nil {
			w.logger.Warn(ctx, "Failed to release worker lock: %v", err)
		}
	}()

	var wake <-chan struct{}
	if w.watcher != nil {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			if err := w.watcher.Start(watchCtx); err != nil && !errors.Is(err, context.Canceled) {
				w.logger.Warn(ctx, "Inbox watcher stopped, polling only: %v", err)
			}
		}()
		wake = w.watcher.Wake()
	}

	w.logger.Info(ctx, "Worker started (poll every %s, watcher %v)", w.interval, w.watcher != nil)

	for {
		w.RunCycle(ctx)

		timer := time.NewTimer(w.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			w.logger.Info(ctx, "Worker stopped.")
			return nil
		case <-timer.C:
		case <-wake:
			timer.Stop()
			w.logger.Debug(ctx, "Woken by inbox watcher")
		}
	}
}

func (w *implWorker) RunCycle(ctx context.Context) Summary {
	sum := Summary{
		CycleID:  uuid.NewString(),
		Outcomes: make(map[processor.Outcome]int),
	}

	jobs, err := w.scanner.Scan(ctx)
	if err != nil {
		w.logger.Error(ctx, "Scan failed: %v", err)
		sum.Err = err
		return sum
	}
	sum.Found = len(jobs)
	if len(jobs) == 0 {
		return sum
	}

	w.logger.Info(ctx, "Found %d file(s) to process (cycle %s)", len(jobs), sum.CycleID)
	for _, job := range jobs {
		if ctx.Err() != nil {
			w.logger.Info(ctx, "Interrupted, leaving remaining jobs in inbox")
			sum.Interrupted = true
			break
		}
		sum.Outcomes[w.processJob(ctx, job)]++
	}

	w.logger.Info(ctx, "Cycle %s finished: %d done, %d failed, %d skipped, %d stuck",
		sum.CycleID,
		sum.Outcomes[processor.OutcomeDone],
		sum.Outcomes[processor.OutcomeFailed],
		sum.Outcomes[processor.OutcomeNotReady]+sum.Outcomes[processor.OutcomeVanished],
		sum.Outcomes[processor.OutcomeStuck],
	)
	return sum
}

// processJob isolates a single job so a panic cannot take down the loop.
func (w *implWorker) processJob(ctx context.Context, job scanner.Job) (outcome processor.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error(ctx, "Panic while processing %s: %v", job.Name, r)
			outcome = processor.OutcomeStuck
		}
	}()
	return w.processor.Process(ctx, job)
}
