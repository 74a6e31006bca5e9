package initchecker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type provider interface{ Name() string }

type impl struct{}

func (*impl) Name() string { return "impl" }

func TestCheckInit(t *testing.T) {
	t.Run("all set", func(t *testing.T) {
		require.NotPanics(t, func() {
			CheckInit("store", &impl{}, "count", 0)
		})
	})
	t.Run("nil value", func(t *testing.T) {
		require.PanicsWithValue(t, "store dependency not initialized", func() {
			CheckInit("store", nil)
		})
	})
	t.Run("typed nil", func(t *testing.T) {
		var p provider = (*impl)(nil)
		require.Panics(t, func() {
			CheckInit("store", p)
		})
	})
	t.Run("odd arguments", func(t *testing.T) {
		require.Panics(t, func() {
			CheckInit("store")
		})
	})
}
