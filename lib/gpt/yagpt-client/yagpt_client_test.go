package yagptclient

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"job-portal-backend/models"
)

func TestGenerateNotConfigured(t *testing.T) {
	t.Run("no token", func(t *testing.T) {
		_, err := NewClient("", "catalog").GenerateByPromptAndText(context.Background(), "prompt", "text")
		require.True(t, errors.Is(err, models.ErrUnavailable))
	})
	t.Run("no catalog", func(t *testing.T) {
		_, err := NewClient("token", "").GenerateByPromptAndText(context.Background(), "prompt", "text")
		require.True(t, errors.Is(err, models.ErrUnavailable))
	})
}

func TestBuildRequest(t *testing.T) {
	request := impl{catalogID: "catalog"}.buildRequest("system", "user")
	require.Len(t, request.Messages, 2)
	require.Equal(t, "system", request.Messages[0].Text)
	require.Equal(t, "user", request.Messages[1].Text)
	require.EqualValues(t, defaultMaxTokens, request.CompletionOptions.MaxTokens)
}
