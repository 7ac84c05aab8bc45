package processor

import (
	"github.com/nguyentantai21042004/audio-queue/internal/logger"
	"github.com/nguyentantai21042004/audio-queue/internal/output"
	"github.com/nguyentantai21042004/audio-queue/internal/readiness"
	"github.com/nguyentantai21042004/audio-queue/internal/router"
	"github.com/nguyentantai21042004/audio-queue/internal/transcriber"
)

type implProcessor struct {
	detector    readiness.Detector
	transcriber transcriber.Transcriber
	writer      output.Writer
	router      router.Router
	logger      logger.Logger
}

// New creates a new Processor instance
func New(det readiness.Detector, tr transcriber.Transcriber, w output.Writer, r router.Router, log logger.Logger) Processor {
	return &implProcessor{
		detector:    det,
		transcriber: tr,
		writer:      w,
		router:      r,
		logger:      log,
	}
}
