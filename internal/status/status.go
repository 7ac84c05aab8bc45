// Package status reports what the queue directories currently hold.
// Directory membership is the only job state there is.
package status

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"github.com/nguyentantai21042004/audio-queue/internal/config"
)

// Entry is one file in a queue directory.
type Entry struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// Snapshot is the state of the queue at TakenAt.
type Snapshot struct {
	Inbox         []Entry
	Done          []Entry
	Failed        []Entry
	Records       int
	WorkerRunning bool
	TakenAt       time.Time
}

// Collect reads every queue directory. lockFile is the worker lock inside
// layout.Root; it is probed, never held.
func Collect(layout config.Layout, lockFile string) (Snapshot, error) {
	snap := Snapshot{TakenAt: time.Now()}

	var err error
	if snap.Inbox, err = list(layout.Inbox, layout.Recognized); err != nil {
		return Snapshot{}, err
	}
	if snap.Done, err = list(layout.Done, nil); err != nil {
		return Snapshot{}, err
	}
	if snap.Failed, err = list(layout.Failed, nil); err != nil {
		return Snapshot{}, err
	}

	records, err := list(layout.Output, func(name string) bool {
		return strings.EqualFold(filepath.Ext(name), ".json")
	})
	if err != nil {
		return Snapshot{}, err
	}
	snap.Records = len(records)

	running, err := workerRunning(filepath.Join(layout.Root, lockFile))
	if err != nil {
		return Snapshot{}, err
	}
	snap.WorkerRunning = running

	return snap, nil
}

// list returns the visible regular files of dir, oldest first. A missing
// directory is reported as empty.
func list(dir string, keep func(name string) bool) ([]Entry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	var out []Entry
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if keep != nil && !keep(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		out = append(out, Entry{Name: e.Name(), Size: info.Size(), ModTime: info.ModTime()})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ModTime.Before(out[j].ModTime)
	})
	return out, nil
}

func workerRunning(lockPath string) (bool, error) {
	if _, err := os.Stat(lockPath); errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return false, fmt.Errorf("probe worker lock: %w", err)
	}
	if ok {
		lock.Unlock()
		return false, nil
	}
	return true, nil
}
