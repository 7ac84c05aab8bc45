package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/gomutex/godocx"

	"github.com/nguyentantai21042004/audio-queue/internal/transcriber"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	titleSize = 16
)

// saveDocx writes a Word transcript: the title, then one paragraph per
// segment prefixed with its start time, or the whole text when the engine
// returned no segments.
func saveDocx(path, title string, rec transcriber.Record) error {
	return replaceAtomic(path, func(tmp *os.File) error {
		// godocx writes by path, so the open handle is only a placeholder.
		return saveDocxTo(tmp.Name(), title, rec)
	})
}

func saveDocxTo(path, title string, rec transcriber.Record) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	doc.AddParagraph("").AddText(title).Font(fontName).Size(titleSize).Color("000000").Bold(true)
	doc.AddParagraph("")

	for _, line := range transcriptLines(rec) {
		doc.AddParagraph("").AddText(line).Font(fontName).Size(fontSize).Color("000000")
	}

	return doc.SaveTo(path)
}

func transcriptLines(rec transcriber.Record) []string {
	if len(rec.Segments) == 0 {
		if text := strings.TrimSpace(rec.Text); text != "" {
			return []string{text}
		}
		return nil
	}

	lines := make([]string, 0, len(rec.Segments))
	for _, seg := range rec.Segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("[%s] %s", formatOffset(seg.Start), text))
	}
	return lines
}

// formatOffset renders seconds as mm:ss, or hh:mm:ss past the hour.
func formatOffset(sec float64) string {
	total := int(sec)
	h, m, s := total/3600, (total%3600)/60, total%60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
