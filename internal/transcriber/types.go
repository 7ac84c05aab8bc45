package transcriber

import (
	"fmt"
	"path/filepath"
)

// Segment is one time-aligned piece of a transcript. Offsets are seconds from
// the start of the audio.
type Segment struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Record is the validated result of transcribing one file.
type Record struct {
	Text     string
	Language *string // nil when the engine did not report one
	Segments []Segment
}

// Failure wraps any error surfaced while transcribing a file.
type Failure struct {
	Path string
	Err  error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("transcribe %s: %v", filepath.Base(f.Path), f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}
