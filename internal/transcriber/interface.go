package transcriber

import "context"

// Transcriber converts one audio file into a Record.
type Transcriber interface {
	// Transcribe runs the engine once for path. Any error it returns is a
	// *Failure.
	Transcribe(ctx context.Context, path string) (Record, error)
}
