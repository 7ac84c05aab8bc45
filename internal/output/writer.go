package output

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/audio-queue/internal/transcriber"
)

// Document is the JSON record stored as output/<stem>.json.
type Document struct {
	Text        string                `json:"text"`
	Language    *string               `json:"language"`
	Segments    []transcriber.Segment `json:"segments"`
	SourceFile  string                `json:"source_file"`
	ProcessedAt string                `json:"processed_at"`
}

func (w *implWriter) Write(ctx context.Context, rec transcriber.Record, jobName string) (Artifacts, error) {
	stem := strings.TrimSuffix(jobName, filepath.Ext(jobName))
	if stem == "" {
		return Artifacts{}, fmt.Errorf("job name %q has no stem", jobName)
	}

	base := filepath.Join(w.dir, stem)
	arts := Artifacts{
		Text: base + ".txt",
		JSON: base + ".json",
	}

	doc, err := encodeDocument(rec, jobName, w.now())
	if err != nil {
		return Artifacts{}, err
	}

	// The JSON record goes last so its presence implies the text file is complete.
	if err := writeFileAtomic(arts.Text, []byte(strings.TrimSpace(rec.Text))); err != nil {
		return Artifacts{}, fmt.Errorf("write text: %w", err)
	}
	if w.docx {
		arts.Docx = base + ".docx"
		if err := saveDocx(arts.Docx, stem, rec); err != nil {
			w.discard(ctx, arts.Text)
			return Artifacts{}, fmt.Errorf("write docx: %w", err)
		}
	}
	if err := writeFileAtomic(arts.JSON, doc); err != nil {
		w.discard(ctx, arts.Text, arts.Docx)
		return Artifacts{}, fmt.Errorf("write json: %w", err)
	}

	names := []string{filepath.Base(arts.Text), filepath.Base(arts.JSON)}
	if arts.Docx != "" {
		names = append(names, filepath.Base(arts.Docx))
	}
	w.logger.Info(ctx, "Saved: %s", strings.Join(names, ", "))

	return arts, nil
}

// discard removes the artifacts of a write whose JSON record was never
// committed.
func (w *implWriter) discard(ctx context.Context, paths ...string) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			w.logger.Warn(ctx, "Could not remove partial artifact %s: %v", filepath.Base(path), err)
		}
	}
}

func encodeDocument(rec transcriber.Record, jobName string, at time.Time) ([]byte, error) {
	segments := rec.Segments
	if segments == nil {
		segments = []transcriber.Segment{}
	}

	doc := Document{
		Text:        rec.Text,
		Language:    rec.Language,
		Segments:    segments,
		SourceFile:  jobName,
		ProcessedAt: at.Format(time.RFC3339Nano),
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// writeFileAtomic writes data to a hidden sibling of path and renames it
// into place.
func writeFileAtomic(path string, data []byte) error {
	return replaceAtomic(path, func(tmp *os.File) error {
		_, err := tmp.Write(data)
		return err
	})
}

func replaceAtomic(path string, fill func(tmp *os.File) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*-"+filepath.Base(path))
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpName)
		}
	}()

	if err := fill(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return nil
}
