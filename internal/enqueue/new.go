package enqueue

import (
	"github.com/nguyentantai21042004/audio-queue/internal/config"
	"github.com/nguyentantai21042004/audio-queue/internal/logger"
)

type implEnqueuer struct {
	layout config.Layout
	logger logger.Logger
}

// New creates an Enqueuer targeting layout.Inbox.
func New(layout config.Layout, log logger.Logger) Enqueuer {
	return &implEnqueuer{
		layout: layout,
		logger: log,
	}
}
