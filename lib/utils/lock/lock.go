package lock

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"job-portal-backend/models"
)

var (
	lockMap sync.Map
)

// WithDelay runs safeCode while holding the key, waiting up to wait for it.
// success is false when the key could not be taken in time.
func WithDelay(ctx context.Context, key string, wait time.Duration, safeCode func() error) (success bool, err error) {
	isTimeout := time.After(wait)
	for {
		if _, loaded := lockMap.LoadOrStore(key, true); !loaded {
			break
		}
		select {
		case <-isTimeout:
			return false, nil
		case <-ctx.Done():
			return false, nil
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	defer lockMap.Delete(key)
	return true, safeCode()
}

// Run is WithDelay that reports a lock timeout as models.ErrBusy.
func Run(ctx context.Context, key string, wait time.Duration, safeCode func() error) error {
	success, err := WithDelay(ctx, key, wait, safeCode)
	if err != nil {
		return err
	}
	if !success {
		return errors.Wrapf(models.ErrBusy, "lock %s", key)
	}
	return nil
}
