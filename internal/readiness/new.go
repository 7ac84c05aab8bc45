package readiness

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/audio-queue/internal/logger"
)

type implDetector struct {
	settle time.Duration
	logger logger.Logger
	sleep  func(ctx context.Context, d time.Duration) error
}

// New creates a Detector that waits settle between the two size checks.
func New(settle time.Duration, log logger.Logger) Detector {
	return &implDetector{
		settle: settle,
		logger: log,
		sleep:  sleepContext,
	}
}
