package readiness

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nguyentantai21042004/audio-queue/internal/logger"
)

func newTestDetector(during func()) *implDetector {
	d := New(time.Second, logger.NewWithWriter(&bytes.Buffer{}, "debug")).(*implDetector)
	d.sleep = func(ctx context.Context, _ time.Duration) error {
		if during != nil {
			during()
		}
		return ctx.Err()
	}
	return d
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestReady(t *testing.T) {
	dir := t.TempDir()
	stable := filepath.Join(dir, "stable.mp3")
	empty := filepath.Join(dir, "empty.mp3")
	growing := filepath.Join(dir, "growing.mp3")
	vanishing := filepath.Join(dir, "vanishing.mp3")
	writeFile(t, stable, []byte("audio"))
	writeFile(t, empty, nil)
	writeFile(t, growing, []byte("aud"))
	writeFile(t, vanishing, []byte("audio"))

	tests := []struct {
		name   string
		path   string
		during func()
		want   bool
	}{
		{"stable non-empty file", stable, nil, true},
		{"zero-byte file", empty, nil, false},
		{"missing file", filepath.Join(dir, "missing.mp3"), nil, false},
		{"directory", dir, nil, false},
		{
			name: "file grows during settle",
			path: growing,
			during: func() {
				f, err := os.OpenFile(growing, os.O_APPEND|os.O_WRONLY, 0644)
				if err != nil {
					t.Fatal(err)
				}
				defer f.Close()
				if _, err := f.Write([]byte("io")); err != nil {
					t.Fatal(err)
				}
			},
			want: false,
		},
		{
			name:   "file removed during settle",
			path:   vanishing,
			during: func() { os.Remove(vanishing) },
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDetector(tt.during)
			if got := d.Ready(context.Background(), tt.path); got != tt.want {
				t.Errorf("Ready() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadyCancelledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.mp3")
	writeFile(t, path, []byte("audio"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := New(time.Hour, logger.NewWithWriter(&bytes.Buffer{}, "info"))
	if d.Ready(ctx, path) {
		t.Error("Ready() = true with cancelled context, want false")
	}
}

func TestReadyRealSettle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.wav")
	writeFile(t, path, []byte("audio"))

	d := New(10*time.Millisecond, logger.NewWithWriter(&bytes.Buffer{}, "info"))
	start := time.Now()
	if !d.Ready(context.Background(), path) {
		t.Fatal("Ready() = false for stable file")
	}
	if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
		t.Errorf("Ready() returned after %v, want at least the settle interval", elapsed)
	}
}
