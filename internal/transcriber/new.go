package transcriber

import (
	"github.com/nguyentantai21042004/audio-queue/internal/config"
	"github.com/nguyentantai21042004/audio-queue/internal/logger"
	"github.com/nguyentantai21042004/audio-queue/pkg/executor"
)

type implTranscriber struct {
	cfg      config.WhisperConfig
	executor executor.Executor
	logger   logger.Logger
	tempDir  string
}

// New creates a Transcriber backed by the whisper command line tool.
func New(cfg config.WhisperConfig, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:      cfg,
		executor: exec,
		logger:   log,
		tempDir:  cfg.TempDir,
	}
}
