package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "valid config",
			config: Config{
				Paths:   PathsConfig{Root: "data/queue"},
				Whisper: WhisperConfig{Model: "base", Device: "cpu"},
				Worker:  WorkerConfig{PollInterval: 5 * time.Second, Extensions: []string{"mp3", ".WAV"}},
				Logging: LoggingConfig{Level: "DEBUG"},
			},
			wantErr: false,
		},
		{
			name:    "negative poll interval",
			config:  Config{Worker: WorkerConfig{PollInterval: -time.Second}},
			wantErr: true,
		},
		{
			name:    "negative settle interval",
			config:  Config{Worker: WorkerConfig{SettleInterval: -time.Second}},
			wantErr: true,
		},
		{
			name:    "empty extension",
			config:  Config{Worker: WorkerConfig{Extensions: []string{".mp3", " "}}},
			wantErr: true,
		},
		{
			name:    "unknown log level",
			config:  Config{Logging: LoggingConfig{Level: "verbose"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Paths.Root != "queue" {
		t.Errorf("Root = %v, want %v", cfg.Paths.Root, "queue")
	}
	if cfg.Whisper.Model != "large" {
		t.Errorf("Model = %v, want %v", cfg.Whisper.Model, "large")
	}
	if cfg.Whisper.Device != "cuda:0" {
		t.Errorf("Device = %v, want %v", cfg.Whisper.Device, "cuda:0")
	}
	if cfg.Worker.PollInterval != 2*time.Second {
		t.Errorf("PollInterval = %v, want %v", cfg.Worker.PollInterval, 2*time.Second)
	}
	if cfg.Worker.SettleInterval != time.Second {
		t.Errorf("SettleInterval = %v, want %v", cfg.Worker.SettleInterval, time.Second)
	}
	if !cfg.Worker.WatchEnabled() {
		t.Error("WatchEnabled() = false, want true")
	}
	if !reflect.DeepEqual(cfg.Worker.Extensions, DefaultExtensions) {
		t.Errorf("Extensions = %v, want %v", cfg.Worker.Extensions, DefaultExtensions)
	}
}

func TestValidateNormalizesExtensions(t *testing.T) {
	cfg := Config{Worker: WorkerConfig{Extensions: []string{"MP3", ".wav", ".Mp3"}}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	want := []string{".mp3", ".wav"}
	if !reflect.DeepEqual(cfg.Worker.Extensions, want) {
		t.Errorf("Extensions = %v, want %v", cfg.Worker.Extensions, want)
	}
}

func TestValidateBinaryPath(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"bare name stays for PATH lookup", "whisper", "whisper"},
		{"absolute path unchanged", "/opt/whisper/bin/whisper", "/opt/whisper/bin/whisper"},
		{"relative path pinned to working dir", "./bin/whisper", filepath.Join(wd, "bin", "whisper")},
		{"nested relative path", "tools/whisper", filepath.Join(wd, "tools", "whisper")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Whisper: WhisperConfig{BinaryPath: tt.path}}
			if err := cfg.Validate(); err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if cfg.Whisper.BinaryPath != tt.want {
				t.Errorf("BinaryPath = %v, want %v", cfg.Whisper.BinaryPath, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audioqueue.yaml")
	content := `
paths:
  root: "data/queue"

whisper:
  binary_path: "/usr/local/bin/whisper"
  model: "medium"
  device: "cpu"
  language: "en"
  temp_dir: "/var/tmp/audioqueue"

worker:
  poll_interval: 500ms
  settle_interval: 3s
  watch: false

output:
  docx: true

logging:
  level: "debug"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Paths.Root != "data/queue" {
		t.Errorf("Root = %v, want %v", cfg.Paths.Root, "data/queue")
	}
	if cfg.Whisper.Model != "medium" {
		t.Errorf("Model = %v, want %v", cfg.Whisper.Model, "medium")
	}
	if cfg.Whisper.TempDir != "/var/tmp/audioqueue" {
		t.Errorf("TempDir = %v, want %v", cfg.Whisper.TempDir, "/var/tmp/audioqueue")
	}
	if cfg.Worker.PollInterval != 500*time.Millisecond {
		t.Errorf("PollInterval = %v, want %v", cfg.Worker.PollInterval, 500*time.Millisecond)
	}
	if cfg.Worker.SettleInterval != 3*time.Second {
		t.Errorf("SettleInterval = %v, want %v", cfg.Worker.SettleInterval, 3*time.Second)
	}
	if cfg.Worker.WatchEnabled() {
		t.Error("WatchEnabled() = true, want false")
	}
	if !cfg.Output.Docx {
		t.Error("Docx = false, want true")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadOrDefault(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	cfg, err := LoadOrDefault(missing, true)
	if err != nil {
		t.Fatalf("LoadOrDefault(optional) error = %v", err)
	}
	if cfg.Paths.Root != "queue" {
		t.Errorf("Root = %v, want %v", cfg.Paths.Root, "queue")
	}

	if _, err := LoadOrDefault(missing, false); err == nil {
		t.Error("LoadOrDefault(required) should return error for missing file")
	}
}

func TestLayout(t *testing.T) {
	root := t.TempDir()
	external := filepath.Join(t.TempDir(), "elsewhere")

	cfg := Config{Paths: PathsConfig{Root: root, Done: "finished", Failed: external}}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	layout, err := cfg.Layout()
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"inbox", layout.Inbox, filepath.Join(root, "inbox")},
		{"output", layout.Output, filepath.Join(root, "output")},
		{"done", layout.Done, filepath.Join(root, "finished")},
		{"failed", layout.Failed, external},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	if err := layout.Ensure(); err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}
	for _, dir := range layout.Dirs() {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Errorf("directory %s not created: %v", dir, err)
		}
	}
}

func TestLayoutRecognized(t *testing.T) {
	layout := Layout{Extensions: DefaultExtensions}

	tests := []struct {
		name string
		want bool
	}{
		{"a.mp3", true},
		{"B.WAV", true},
		{"c.Flac", true},
		{"d.txt", false},
		{"noext", false},
		{"archive.mp3.part", false},
	}
	for _, tt := range tests {
		if got := layout.Recognized(tt.name); got != tt.want {
			t.Errorf("Recognized(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
