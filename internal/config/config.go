package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// DefaultExtensions lists the audio formats the worker picks up from the inbox.
var DefaultExtensions = []string{".mp3", ".wav", ".flac", ".m4a", ".ogg", ".webm", ".mp4", ".mpeg", ".mpga"}

type Config struct {
	Paths   PathsConfig   `yaml:"paths"`
	Whisper WhisperConfig `yaml:"whisper"`
	Worker  WorkerConfig  `yaml:"worker"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

type PathsConfig struct {
	Root   string `yaml:"root"`
	Inbox  string `yaml:"inbox"`
	Output string `yaml:"output"`
	Done   string `yaml:"done"`
	Failed string `yaml:"failed"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	Model      string `yaml:"model"`
	Device     string `yaml:"device"`
	Language   string `yaml:"language"`
	// TempDir holds whisper's per-job output. Empty means the system default.
	TempDir    string `yaml:"temp_dir"`
}

type WorkerConfig struct {
	PollInterval   time.Duration `yaml:"poll_interval"`
	SettleInterval time.Duration `yaml:"settle_interval"`
	Watch          *bool         `yaml:"watch"`
	Extensions     []string      `yaml:"extensions"`
}

type OutputConfig struct {
	Docx bool `yaml:"docx"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// WatchEnabled reports whether fsnotify wake-ups are turned on. Unset means on.
func (w WorkerConfig) WatchEnabled() bool {
	return w.Watch == nil || *w.Watch
}

// Validate fills defaults and rejects values the worker cannot run with.
func (c *Config) Validate() error {
	if c.Worker.PollInterval < 0 {
		return fmt.Errorf("worker.poll_interval must not be negative")
	}
	if c.Worker.SettleInterval < 0 {
		return fmt.Errorf("worker.settle_interval must not be negative")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "":
		c.Logging.Level = "info"
	case "debug", "info", "warn", "error":
		c.Logging.Level = strings.ToLower(c.Logging.Level)
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}

	exts, err := normalizeExtensions(c.Worker.Extensions)
	if err != nil {
		return err
	}
	c.Worker.Extensions = exts

	if c.Paths.Root == "" {
		c.Paths.Root = "queue"
	}
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper"
	}
	// whisper runs inside a temp dir, so a relative path must be pinned to
	// the current directory. Bare names are still looked up in PATH.
	if strings.ContainsRune(c.Whisper.BinaryPath, filepath.Separator) && !filepath.IsAbs(c.Whisper.BinaryPath) {
		abs, err := filepath.Abs(c.Whisper.BinaryPath)
		if err != nil {
			return fmt.Errorf("resolve whisper.binary_path: %w", err)
		}
		c.Whisper.BinaryPath = abs
	}
	if c.Whisper.Model == "" {
		c.Whisper.Model = "large"
	}
	if c.Whisper.Device == "" {
		c.Whisper.Device = "cuda:0"
	}
	if c.Worker.PollInterval == 0 {
		c.Worker.PollInterval = 2 * time.Second
	}
	if c.Worker.SettleInterval == 0 {
		c.Worker.SettleInterval = time.Second
	}

	return nil
}

func normalizeExtensions(in []string) ([]string, error) {
	if len(in) == 0 {
		return append([]string(nil), DefaultExtensions...), nil
	}

	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, raw := range in {
		ext := strings.ToLower(strings.TrimSpace(raw))
		if ext == "" || ext == "." {
			return nil, fmt.Errorf("worker.extensions contains an empty entry")
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if _, dup := seen[ext]; dup {
			continue
		}
		seen[ext] = struct{}{}
		out = append(out, ext)
	}
	return out, nil
}
