package helpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUniqueFold(t *testing.T) {
	require.Equal(t, []string{"Go", "react", "SQL"}, UniqueFold([]string{"Go", "react", " go ", "React", "", "SQL"}))
}

func TestContainsFold(t *testing.T) {
	require.True(t, ContainsFold("Senior React Developer", "react"))
	require.False(t, ContainsFold("Senior React Developer", "vue"))
}

func TestEmailPrefix(t *testing.T) {
	require.Equal(t, "jane.doe", EmailPrefix("jane.doe@example.com"))
	require.Equal(t, "nobody", EmailPrefix("nobody"))
}

func TestIsContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	require.False(t, IsContextDone(ctx))
	cancel()
	require.True(t, IsContextDone(ctx))
}
