package router

import (
	"os"

	"github.com/nguyentantai21042004/audio-queue/internal/config"
	"github.com/nguyentantai21042004/audio-queue/internal/logger"
)

type implRouter struct {
	layout config.Layout
	logger logger.Logger
	rename func(oldpath, newpath string) error
}

// New creates a Router for the done and failed directories of layout.
func New(layout config.Layout, log logger.Logger) Router {
	return &implRouter{
		layout: layout,
		logger: log,
		rename: os.Rename,
	}
}
