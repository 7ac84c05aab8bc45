package logger

import (
	"context"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

const (
	colorReset  = "\033[0m"
	colorGray   = "\033[90m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
)

type implLogger struct {
	logger *log.Logger
	level  string
	color  bool
}

// New creates a Logger writing to stdout. Level tags are colored when stdout
// is a terminal.
func New(level string) Logger {
	fd := os.Stdout.Fd()
	color := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	return newLogger(os.Stdout, level, color)
}

// NewWithWriter creates an uncolored Logger writing to w.
func NewWithWriter(w io.Writer, level string) Logger {
	return newLogger(w, level, false)
}

func newLogger(w io.Writer, level string, color bool) *implLogger {
	return &implLogger{
		logger: log.New(w, "", log.LstdFlags),
		level:  strings.ToLower(level),
		color:  color,
	}
}

func (l *implLogger) shouldLog(level string) bool {
	levels := map[string]int{
		"debug": 0,
		"info":  1,
		"warn":  2,
		"error": 3,
	}

	currentLevel, ok := levels[l.level]
	if !ok {
		currentLevel = 1 // default to info
	}

	targetLevel, ok := levels[level]
	if !ok {
		return true
	}

	return targetLevel >= currentLevel
}

func (l *implLogger) tag(name, color string) string {
	if !l.color || color == "" {
		return "[" + name + "] "
	}
	return color + "[" + name + "]" + colorReset + " "
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("debug") {
		l.logger.Printf(l.tag("DEBUG", colorGray)+msg, args...)
	}
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("info") {
		l.logger.Printf(l.tag("INFO", "")+msg, args...)
	}
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("warn") {
		l.logger.Printf(l.tag("WARN", colorYellow)+msg, args...)
	}
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("error") {
		l.logger.Printf(l.tag("ERROR", colorRed)+msg, args...)
	}
}
