package router

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/nguyentantai21042004/audio-queue/internal/scanner"
)

func (r *implRouter) ToDone(ctx context.Context, job scanner.Job) (string, error) {
	return r.move(ctx, job, r.layout.Done)
}

func (r *implRouter) ToFailed(ctx context.Context, job scanner.Job) (string, error) {
	return r.move(ctx, job, r.layout.Failed)
}

func (r *implRouter) move(ctx context.Context, job scanner.Job, dir string) (string, error) {
	dest := filepath.Join(dir, job.Name)

	if _, err := os.Stat(job.Path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("move %s: %w", job.Name, ErrVanished)
		}
		return "", fmt.Errorf("stat %s: %w", job.Path, err)
	}

	err := r.rename(job.Path, dest)
	if err == nil {
		r.logger.Debug(ctx, "Moved %s -> %s", job.Path, dest)
		return dest, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		if _, statErr := os.Stat(job.Path); errors.Is(statErr, os.ErrNotExist) {
			return "", fmt.Errorf("move %s: %w", job.Name, ErrVanished)
		}
	}
	if !errors.Is(err, syscall.EXDEV) {
		return "", fmt.Errorf("move %s to %s: %w", job.Name, dir, err)
	}

	// Terminal directory sits on another filesystem.
	r.logger.Debug(ctx, "Rename across devices, copying %s -> %s", job.Path, dest)
	if err := copyThenRemove(job.Path, dest); err != nil {
		return "", fmt.Errorf("move %s to %s: %w", job.Name, dir, err)
	}
	return dest, nil
}

// copyThenRemove copies src to dst, preserving its mod-time, then removes
// src. If src cannot be removed the copy is undone so the file stays in one
// place.
func copyThenRemove(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := copyFile(src, dst, info); err != nil {
		return err
	}

	if err := os.Remove(src); err != nil {
		os.Remove(dst)
		return fmt.Errorf("remove source: %w", err)
	}
	return nil
}

func copyFile(src, dst string, info os.FileInfo) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".tmp-*-"+filepath.Base(dst))
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("copy data: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync destination: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close destination: %w", err)
	}

	os.Chmod(tmpName, info.Mode().Perm())
	os.Chtimes(tmpName, info.ModTime(), info.ModTime())

	if err := os.Rename(tmpName, dst); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("place destination: %w", err)
	}
	return nil
}
