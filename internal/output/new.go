package output

import (
	"time"

	"github.com/nguyentantai21042004/audio-queue/internal/logger"
)

type implWriter struct {
	dir    string
	docx   bool
	logger logger.Logger
	now    func() time.Time
}

// New creates a Writer for dir. With docx set, a Word transcript is written
// next to the text and JSON files.
func New(dir string, docx bool, log logger.Logger) Writer {
	return &implWriter{
		dir:    dir,
		docx:   docx,
		logger: log,
		now:    time.Now,
	}
}
