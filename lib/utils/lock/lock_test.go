package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"job-portal-backend/models"
)

func TestWithDelay(t *testing.T) {
	t.Run("serializes same key", func(t *testing.T) {
		var active, maxActive int32
		wg := sync.WaitGroup{}
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := WithDelay(context.Background(), "same", time.Second, func() error {
					current := atomic.AddInt32(&active, 1)
					if current > atomic.LoadInt32(&maxActive) {
						atomic.StoreInt32(&maxActive, current)
					}
					time.Sleep(5 * time.Millisecond)
					atomic.AddInt32(&active, -1)
					return nil
				})
				require.NoError(t, err)
				require.True(t, ok)
			}()
		}
		wg.Wait()
		require.Equal(t, int32(1), maxActive)
	})
	t.Run("timeout reports busy", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		go func() {
			_, _ = WithDelay(context.Background(), "busy", time.Second, func() error {
				close(started)
				<-release
				return nil
			})
		}()
		<-started
		err := Run(context.Background(), "busy", 30*time.Millisecond, func() error { return nil })
		close(release)
		require.True(t, errors.Is(err, models.ErrBusy))
	})
	t.Run("returns code error", func(t *testing.T) {
		err := Run(context.Background(), "err", time.Second, func() error { return errors.New("boom") })
		require.EqualError(t, err, "boom")
	})
}
