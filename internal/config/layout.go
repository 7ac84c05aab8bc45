package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Layout holds the queue directories and the recognized extensions. It is
// passed to every component that touches the queue.
type Layout struct {
	Root       string
	Inbox      string
	Output     string
	Done       string
	Failed     string
	Extensions []string
}

// Layout resolves the queue directories to absolute paths. Per-directory
// overrides are taken as-is when absolute and relative to the root otherwise.
func (c *Config) Layout() (Layout, error) {
	root, err := filepath.Abs(c.Paths.Root)
	if err != nil {
		return Layout{}, fmt.Errorf("resolve root %s: %w", c.Paths.Root, err)
	}

	resolve := func(override, name string) string {
		if override == "" {
			return filepath.Join(root, name)
		}
		if filepath.IsAbs(override) {
			return filepath.Clean(override)
		}
		return filepath.Join(root, override)
	}

	return Layout{
		Root:       root,
		Inbox:      resolve(c.Paths.Inbox, "inbox"),
		Output:     resolve(c.Paths.Output, "output"),
		Done:       resolve(c.Paths.Done, "done"),
		Failed:     resolve(c.Paths.Failed, "failed"),
		Extensions: append([]string(nil), c.Worker.Extensions...),
	}, nil
}

// Dirs returns the queue directories in a fixed order.
func (l Layout) Dirs() []string {
	return []string{l.Inbox, l.Output, l.Done, l.Failed}
}

// Ensure creates the queue directories if they don't exist.
func (l Layout) Ensure() error {
	for _, dir := range l.Dirs() {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// Recognized reports whether name carries one of the layout's extensions,
// ignoring case.
func (l Layout) Recognized(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return false
	}
	for _, want := range l.Extensions {
		if ext == want {
			return true
		}
	}
	return false
}
