package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/nguyentantai21042004/audio-queue/internal/router"
	"github.com/nguyentantai21042004/audio-queue/internal/scanner"
)

// Process takes one job through ready-check, transcription, result writing
// and routing. Cancelling ctx aborts the ready-check; once transcription has
// started the job runs to completion.
func (p *implProcessor) Process(ctx context.Context, job scanner.Job) Outcome {
	if _, err := os.Stat(job.Path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			p.logger.Info(ctx, "SKIP: %s no longer exists", job.Name)
			return OutcomeVanished
		}
		p.logger.Warn(ctx, "SKIP: %s cannot be inspected: %v", job.Name, err)
		return OutcomeNotReady
	}

	p.logger.Info(ctx, "Checking: %s", job.Name)
	if !p.detector.Ready(ctx, job.Path) {
		p.logger.Info(ctx, "SKIP: %s not ready (still copying?)", job.Name)
		return OutcomeNotReady
	}

	jobCtx := context.WithoutCancel(ctx)
	startTime := time.Now()

	rec, err := p.transcriber.Transcribe(jobCtx, job.Path)
	if err != nil {
		return p.fail(jobCtx, job, err)
	}

	if _, err := p.writer.Write(jobCtx, rec, job.Name); err != nil {
		return p.fail(jobCtx, job, fmt.Errorf("save result: %w", err))
	}

	if _, err := p.router.ToDone(jobCtx, job); err != nil {
		if errors.Is(err, router.ErrVanished) {
			p.logger.Warn(jobCtx, "%s disappeared before it could be moved to done/", job.Name)
			return OutcomeVanished
		}
		return p.fail(jobCtx, job, err)
	}

	p.logger.Info(jobCtx, "Moved to done/ (%s total)", time.Since(startTime).Round(time.Millisecond))
	return OutcomeDone
}

// fail routes a job whose processing failed. The error itself only goes to
// the log.
func (p *implProcessor) fail(ctx context.Context, job scanner.Job, cause error) Outcome {
	p.logger.Error(ctx, "ERROR: %v", cause)

	if _, err := p.router.ToFailed(ctx, job); err != nil {
		if errors.Is(err, router.ErrVanished) {
			p.logger.Warn(ctx, "%s disappeared before it could be moved to failed/", job.Name)
			return OutcomeVanished
		}
		p.logger.Error(ctx, "Could not move %s to failed/: %v", job.Name, err)
		return OutcomeStuck
	}

	p.logger.Info(ctx, "Moved to failed/")
	return OutcomeFailed
}
