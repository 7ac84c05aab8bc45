package scanner

import (
	"github.com/nguyentantai21042004/audio-queue/internal/config"
	"github.com/nguyentantai21042004/audio-queue/internal/logger"
)

type implScanner struct {
	layout config.Layout
	logger logger.Logger
}

// New creates a Scanner over layout.Inbox.
func New(layout config.Layout, log logger.Logger) Scanner {
	return &implScanner{
		layout: layout,
		logger: log,
	}
}
