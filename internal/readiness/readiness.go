package readiness

import (
	"context"
	"os"
	"time"
)

// Ready reports whether path exists, is non-empty and kept its size for the
// whole settle interval. Any filesystem error, or ctx ending during the wait,
// means not ready.
func (d *implDetector) Ready(ctx context.Context, path string) bool {
	before, err := os.Stat(path)
	if err != nil {
		d.logger.Debug(ctx, "Readiness stat failed for %s: %v", path, err)
		return false
	}
	if !before.Mode().IsRegular() {
		return false
	}

	if err := d.sleep(ctx, d.settle); err != nil {
		return false
	}

	after, err := os.Stat(path)
	if err != nil {
		d.logger.Debug(ctx, "Readiness re-stat failed for %s: %v", path, err)
		return false
	}

	if after.Size() != before.Size() {
		d.logger.Debug(ctx, "Size of %s changed during settle: %d -> %d", path, before.Size(), after.Size())
		return false
	}

	return after.Size() > 0
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
