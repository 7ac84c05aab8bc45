package output

import (
	"context"

	"github.com/nguyentantai21042004/audio-queue/internal/transcriber"
)

// Artifacts lists the files written for one job. Docx is empty unless docx
// output is enabled.
type Artifacts struct {
	Text string
	JSON string
	Docx string
}

// Writer persists transcription results under the output directory.
type Writer interface {
	// Write stores rec as output/<stem>.txt and output/<stem>.json, where
	// stem is jobName without its extension. Existing artifacts with the
	// same stem are replaced.
	Write(ctx context.Context, rec transcriber.Record, jobName string) (Artifacts, error)
}
