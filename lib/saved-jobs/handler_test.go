package savedjobshandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSavedJobs(t *testing.T) {
	t.Run("toggle", func(t *testing.T) {
		handler := New(time.Hour)
		require.True(t, handler.Toggle("user-1", "job-1"))
		require.Equal(t, map[string]bool{"job-1": true}, handler.IDs("user-1"))
		require.False(t, handler.Toggle("user-1", "job-1"))
		require.Empty(t, handler.IDs("user-1"))
	})
	t.Run("per user", func(t *testing.T) {
		handler := New(time.Hour)
		handler.Set("user-1", "job-1", true)
		handler.Set("user-1", "job-2", true)
		handler.Set("user-1", "job-2", false)
		require.Equal(t, map[string]bool{"job-1": true}, handler.IDs("user-1"))
		require.Empty(t, handler.IDs("user-2"))
	})
	t.Run("expires with the session", func(t *testing.T) {
		handler := New(20 * time.Millisecond)
		handler.Set("user-1", "job-1", true)
		require.Eventually(t, func() bool {
			return len(handler.IDs("user-1")) == 0
		}, time.Second, 10*time.Millisecond)
	})
}
