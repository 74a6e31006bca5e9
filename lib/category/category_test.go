package category

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchesJob(t *testing.T) {
	t.Run("keyword in title", func(t *testing.T) {
		require.True(t, MatchesByName("Finance", "Senior Financial Analyst", ""))
	})
	t.Run("keyword in description", func(t *testing.T) {
		require.True(t, MatchesByName("Healthcare", "Shift lead", "Work with the medical team"))
	})
	t.Run("case insensitive", func(t *testing.T) {
		require.True(t, MatchesByName("Human Resources", "HR Generalist", ""))
	})
	t.Run("no match", func(t *testing.T) {
		require.False(t, MatchesByName("Construction", "React Developer", "Build UIs"))
	})
	t.Run("unknown category", func(t *testing.T) {
		require.False(t, MatchesByName("Space Travel", "Finance analyst", "sales"))
	})
}

func TestFind(t *testing.T) {
	c, ok := Find("Customer Service")
	require.True(t, ok)
	require.Equal(t, []string{"customer", "support", "service"}, c.Keywords)

	_, ok = Find("customer service")
	require.False(t, ok)
	require.Len(t, List(), 6)
}
