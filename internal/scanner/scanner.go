package scanner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

func (s *implScanner) Scan(ctx context.Context) ([]Job, error) {
	entries, err := os.ReadDir(s.layout.Inbox)
	if err != nil {
		return nil, fmt.Errorf("read inbox %s: %w", s.layout.Inbox, err)
	}

	var jobs []Job
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !s.layout.Recognized(name) {
			continue
		}

		// Info stats lazily; the file may be gone by now.
		info, err := e.Info()
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				s.logger.Warn(ctx, "Skipping %s: %v", name, err)
			}
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}

		jobs = append(jobs, Job{
			Name:    name,
			Path:    filepath.Join(s.layout.Inbox, name),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.SliceStable(jobs, func(i, j int) bool {
		if jobs[i].ModTime.Equal(jobs[j].ModTime) {
			return jobs[i].Name < jobs[j].Name
		}
		return jobs[i].ModTime.Before(jobs[j].ModTime)
	})

	return jobs, nil
}
