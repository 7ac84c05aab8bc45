package transcriber

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/audio-queue/internal/config"
	"github.com/nguyentantai21042004/audio-queue/internal/logger"
	"github.com/nguyentantai21042004/audio-queue/pkg/executor"
)

// fakeExecutor records the last call and runs an injected behavior.
type fakeExecutor struct {
	run  func(dir, name string, args []string) error
	name string
	args []string
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	f.name = name
	f.args = append([]string{}, args...)
	if f.run == nil {
		return "", nil
	}
	return "", f.run(dir, name, args)
}

func argValue(args []string, flag string) string {
	for i := 0; i+1 < len(args); i++ {
		if args[i] == flag {
			return args[i+1]
		}
	}
	return ""
}

// writeOutput simulates whisper writing <stem>.json into --output_dir.
func writeOutput(t *testing.T, payload string) func(dir, name string, args []string) error {
	return func(dir, name string, args []string) error {
		outDir := argValue(args, "--output_dir")
		stem := "meeting"
		if err := os.WriteFile(filepath.Join(outDir, stem+".json"), []byte(payload), 0644); err != nil {
			t.Fatal(err)
		}
		return nil
	}
}

func newTestTranscriber(fx *fakeExecutor, cfg config.WhisperConfig) *implTranscriber {
	return New(cfg, fx, logger.NewWithWriter(&bytes.Buffer{}, "debug")).(*implTranscriber)
}

func testWhisperConfig() config.WhisperConfig {
	return config.WhisperConfig{BinaryPath: "whisper-custom", Model: "base", Device: "cpu"}
}

func TestTranscribeSuccess(t *testing.T) {
	payload := `{
  "text": " Hello there. General Kenobi.",
  "language": "en",
  "segments": [
    {"id": 0, "seek": 0, "start": 0.0, "end": 1.5, "text": " Hello there.", "tokens": [1, 2]},
    {"id": 1, "seek": 0, "start": 1.5, "end": 3.25, "text": " General Kenobi.", "avg_logprob": -0.2}
  ]
}`
	fx := &fakeExecutor{run: writeOutput(t, payload)}
	tr := newTestTranscriber(fx, config.WhisperConfig{BinaryPath: "whisper-custom", Model: "base", Device: "cpu", Language: "en"})

	rec, err := tr.Transcribe(context.Background(), "/queue/inbox/meeting.mp3")
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}

	if fx.name != "whisper-custom" {
		t.Errorf("command = %q, want whisper-custom", fx.name)
	}
	if fx.args[0] != "/queue/inbox/meeting.mp3" {
		t.Errorf("first arg = %q, want audio path", fx.args[0])
	}
	for flag, want := range map[string]string{"--model": "base", "--device": "cpu", "--output_format": "json", "--language": "en"} {
		if got := argValue(fx.args, flag); got != want {
			t.Errorf("%s = %q, want %q", flag, got, want)
		}
	}

	if rec.Text != " Hello there. General Kenobi." {
		t.Errorf("Text = %q", rec.Text)
	}
	if rec.Language == nil || *rec.Language != "en" {
		t.Errorf("Language = %v, want en", rec.Language)
	}
	if len(rec.Segments) != 2 {
		t.Fatalf("len(Segments) = %d, want 2", len(rec.Segments))
	}
	want := Segment{ID: 1, Start: 1.5, End: 3.25, Text: " General Kenobi."}
	if rec.Segments[1] != want {
		t.Errorf("Segments[1] = %+v, want %+v", rec.Segments[1], want)
	}
}

func TestTranscribeRemovesTempDir(t *testing.T) {
	var outDir string
	fx := &fakeExecutor{run: func(dir, name string, args []string) error {
		outDir = argValue(args, "--output_dir")
		return writeOutput(t, `{"text": "hi"}`)(dir, name, args)
	}}
	cfg := testWhisperConfig()
	cfg.TempDir = t.TempDir()
	tr := newTestTranscriber(fx, cfg)

	if _, err := tr.Transcribe(context.Background(), "meeting.wav"); err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if filepath.Dir(outDir) != cfg.TempDir {
		t.Errorf("output dir %s not under %s", outDir, cfg.TempDir)
	}
	if _, err := os.Stat(outDir); !os.IsNotExist(err) {
		t.Errorf("temp dir %s still exists: %v", outDir, err)
	}
}

func TestTranscribeFailures(t *testing.T) {
	engineErr := errors.New("CUDA out of memory")

	tests := []struct {
		name string
		run  func(t *testing.T) func(dir, name string, args []string) error
	}{
		{
			name: "engine error",
			run: func(t *testing.T) func(dir, name string, args []string) error {
				return func(string, string, []string) error { return engineErr }
			},
		},
		{
			name: "no output file",
			run: func(t *testing.T) func(dir, name string, args []string) error {
				return nil
			},
		},
		{
			name: "malformed json",
			run: func(t *testing.T) func(dir, name string, args []string) error {
				return writeOutput(t, `{"text": `)
			},
		},
		{
			name: "missing text field",
			run: func(t *testing.T) func(dir, name string, args []string) error {
				return writeOutput(t, `{"language": "en", "segments": []}`)
			},
		},
		{
			name: "segment ends before it starts",
			run: func(t *testing.T) func(dir, name string, args []string) error {
				return writeOutput(t, `{"text": "x", "segments": [{"start": 2, "end": 1, "text": "x"}]}`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := &fakeExecutor{run: tt.run(t)}
			tr := newTestTranscriber(fx, testWhisperConfig())

			_, err := tr.Transcribe(context.Background(), "/inbox/meeting.flac")
			if err == nil {
				t.Fatal("Transcribe() error = nil, want failure")
			}

			var failure *Failure
			if !errors.As(err, &failure) {
				t.Fatalf("error %T is not *Failure", err)
			}
			if failure.Path != "/inbox/meeting.flac" {
				t.Errorf("Failure.Path = %q", failure.Path)
			}
		})
	}
}

func TestTranscribeEngineErrorIsWrapped(t *testing.T) {
	engineErr := errors.New("CUDA out of memory")
	fx := &fakeExecutor{run: func(string, string, []string) error { return engineErr }}
	tr := newTestTranscriber(fx, testWhisperConfig())

	_, err := tr.Transcribe(context.Background(), "meeting.mp3")
	if !errors.Is(err, engineErr) {
		t.Errorf("error = %v, want it to wrap %v", err, engineErr)
	}
}

func TestDecodeWhisperJSON(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		wantLanguage bool
		wantSegments int
	}{
		{"no language", `{"text": "hi", "segments": [{"id": 0, "start": 0, "end": 1, "text": "hi"}]}`, false, 1},
		{"blank language", `{"text": "hi", "language": "  "}`, false, 0},
		{"empty text is allowed", `{"text": "", "language": "de"}`, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := decodeWhisperJSON([]byte(tt.payload))
			if err != nil {
				t.Fatalf("decodeWhisperJSON() error = %v", err)
			}
			if (rec.Language != nil) != tt.wantLanguage {
				t.Errorf("Language = %v, want present %v", rec.Language, tt.wantLanguage)
			}
			if rec.Segments == nil {
				t.Error("Segments = nil, want non-nil slice")
			}
			if len(rec.Segments) != tt.wantSegments {
				t.Errorf("len(Segments) = %d, want %d", len(rec.Segments), tt.wantSegments)
			}
		})
	}
}

func TestTranscribeRelativeBinaryPath(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	dir := t.TempDir()
	script := "#!/bin/sh\nprintf '{\"text\": \"hi\", \"language\": \"en\"}' > \"$(basename \"$1\" .mp3).json\"\n"
	if err := os.MkdirAll(filepath.Join(dir, "bin"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bin", "whisper"), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	cfg := config.Config{Whisper: config.WhisperConfig{BinaryPath: "./bin/whisper", TempDir: t.TempDir()}}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	tr := New(cfg.Whisper, executor.New(), logger.NewWithWriter(&bytes.Buffer{}, "error"))
	rec, err := tr.Transcribe(context.Background(), filepath.Join(dir, "meeting.mp3"))
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if rec.Text != "hi" {
		t.Errorf("Text = %q, want %q", rec.Text, "hi")
	}
}
