package testsupport

import (
	"bytes"
	"testing"

	"github.com/nguyentantai21042004/audio-queue/internal/config"
	"github.com/nguyentantai21042004/audio-queue/internal/logger"
)

// NewConfig returns a validated config rooted in a fresh temp directory with
// zero settle interval, so readiness checks do not sleep.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Paths.Root = t.TempDir()
	cfg.Worker.SettleInterval = 0
	return cfg
}

// NewLayout resolves cfg's queue layout and creates its directories.
func NewLayout(t testing.TB, cfg *config.Config) config.Layout {
	t.Helper()

	layout, err := cfg.Layout()
	if err != nil {
		t.Fatalf("resolve layout: %v", err)
	}
	if err := layout.Ensure(); err != nil {
		t.Fatalf("create queue dirs: %v", err)
	}
	return layout
}

// Logger returns a debug-level logger that writes into buf.
func Logger(buf *bytes.Buffer) logger.Logger {
	return logger.NewWithWriter(buf, "debug")
}
