package transcriber

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// whisperOutput mirrors the JSON file written by `whisper --output_format json`.
// Only the fields the queue persists are decoded.
type whisperOutput struct {
	Text     *string          `json:"text"`
	Language string           `json:"language"`
	Segments []whisperSegment `json:"segments"`
}

type whisperSegment struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

func (t *implTranscriber) Transcribe(ctx context.Context, path string) (Record, error) {
	rec, err := t.transcribe(ctx, path)
	if err != nil {
		return Record{}, &Failure{Path: path, Err: err}
	}
	return rec, nil
}

func (t *implTranscriber) transcribe(ctx context.Context, path string) (Record, error) {
	outDir, err := os.MkdirTemp(t.tempDir, "audioqueue-*")
	if err != nil {
		return Record{}, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(outDir)

	// whisper [audio] --model M --device D --output_format json --output_dir DIR
	args := []string{
		path,
		"--model", t.cfg.Model,
		"--device", t.cfg.Device,
		"--output_format", "json",
		"--output_dir", outDir,
		"--verbose", "False",
	}
	if t.cfg.Language != "" {
		args = append(args, "--language", t.cfg.Language)
	}

	t.logger.Info(ctx, "Transcribing: %s (model %s on %s)", filepath.Base(path), t.cfg.Model, t.cfg.Device)
	start := time.Now()

	if _, err := t.executor.ExecuteInDir(ctx, outDir, t.cfg.BinaryPath, args...); err != nil {
		return Record{}, fmt.Errorf("whisper: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	rec, err := loadWhisperJSON(filepath.Join(outDir, stem+".json"))
	if err != nil {
		return Record{}, err
	}

	t.logger.Info(ctx, "Completed in %.1fs", time.Since(start).Seconds())
	return rec, nil
}

func loadWhisperJSON(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Record{}, fmt.Errorf("whisper produced no output at %s", filepath.Base(path))
		}
		return Record{}, fmt.Errorf("read whisper output: %w", err)
	}
	return decodeWhisperJSON(data)
}

// decodeWhisperJSON converts raw engine output into a Record, rejecting
// payloads that lack a transcript or carry impossible segment timings.
func decodeWhisperJSON(data []byte) (Record, error) {
	var out whisperOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return Record{}, fmt.Errorf("decode whisper output: %w", err)
	}
	if out.Text == nil {
		return Record{}, fmt.Errorf("whisper output has no text field")
	}

	rec := Record{
		Text:     *out.Text,
		Segments: make([]Segment, 0, len(out.Segments)),
	}
	if lang := strings.TrimSpace(out.Language); lang != "" {
		rec.Language = &lang
	}

	for i, seg := range out.Segments {
		if seg.Start < 0 || seg.End < seg.Start {
			return Record{}, fmt.Errorf("segment %d has invalid timing %.3f-%.3f", i, seg.Start, seg.End)
		}
		rec.Segments = append(rec.Segments, Segment(seg))
	}

	return rec, nil
}
