package enqueue

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

func (e *implEnqueuer) Enqueue(ctx context.Context, paths []string) []Result {
	results := make([]Result, 0, len(paths))
	for _, p := range paths {
		res := e.enqueueOne(p)
		if res.Err != nil {
			e.logger.Error(ctx, "Failed to queue %s: %v", p, res.Err)
		} else {
			e.logger.Debug(ctx, "%s: %s", res.Status, p)
		}
		results = append(results, res)
	}
	return results
}

func (e *implEnqueuer) enqueueOne(path string) Result {
	res := Result{Path: path, Name: filepath.Base(path)}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			res.Status = StatusNotFound
			return res
		}
		res.Status, res.Err = StatusError, fmt.Errorf("inspect file: %w", err)
		return res
	}
	if !info.Mode().IsRegular() {
		res.Status = StatusNotAFile
		return res
	}
	if !e.layout.Recognized(res.Name) {
		res.Status = StatusUnsupported
		return res
	}

	dest := filepath.Join(e.layout.Inbox, res.Name)
	if _, err := os.Lstat(dest); err == nil {
		res.Status = StatusAlreadyQueued
		return res
	}

	if err := copyNoClobber(path, dest, info); err != nil {
		if errors.Is(err, fs.ErrExist) {
			res.Status = StatusAlreadyQueued
			return res
		}
		res.Status, res.Err = StatusError, err
		return res
	}

	res.Status = StatusQueued
	return res
}

// copyNoClobber copies src to a hidden file next to dst, carries over the
// mode and mod-time, and then links it into place so that the inbox never
// shows a partial file and an existing dst is never replaced.
func copyNoClobber(src, dst string, info os.FileInfo) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".tmp-*-"+filepath.Base(dst))
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		return fmt.Errorf("copy data: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, info.Mode().Perm()); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Chtimes(tmpName, info.ModTime(), info.ModTime()); err != nil {
		return fmt.Errorf("set mod time: %w", err)
	}

	err = os.Link(tmpName, dst)
	if err == nil || errors.Is(err, fs.ErrExist) {
		return err
	}

	// Some filesystems refuse hard links; fall back to a checked rename.
	if _, statErr := os.Lstat(dst); statErr == nil {
		return fs.ErrExist
	}
	if err := os.Rename(tmpName, dst); err != nil {
		return fmt.Errorf("place file: %w", err)
	}
	return nil
}
