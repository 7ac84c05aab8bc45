package processor

import (
	"context"

	"github.com/nguyentantai21042004/audio-queue/internal/scanner"
)

// Outcome is where a job ended up after one visit.
type Outcome string

const (
	// OutcomeVanished: the file disappeared before it could be processed or moved.
	OutcomeVanished Outcome = "vanished"
	// OutcomeNotReady: the file is still being written; it stays in the inbox.
	OutcomeNotReady Outcome = "not-ready"
	// OutcomeDone: results were saved and the file moved to done.
	OutcomeDone Outcome = "done"
	// OutcomeFailed: processing failed and the file moved to failed.
	OutcomeFailed Outcome = "failed"
	// OutcomeStuck: the file could not even be moved to failed; it stays in
	// the inbox and is picked up again next cycle.
	OutcomeStuck Outcome = "stuck"
)

// Processor defines the interface for processing a single queued job
type Processor interface {
	Process(ctx context.Context, job scanner.Job) Outcome
}
