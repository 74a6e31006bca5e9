package smtp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSendEMailNotConfigured(t *testing.T) {
	Connect("", "", "", "", "", true)
	require.False(t, Instance.IsConfigured())
	require.NoError(t, Instance.SendEMail("jane@example.com", "Hello", "body"))
}

func TestBuildMessage(t *testing.T) {
	msg := BuildMessage("hr@example.com", "jane@example.com", "Status update", "You are now Interviewing.")
	require.True(t, strings.HasPrefix(msg, "From: hr@example.com\r\nTo: jane@example.com\r\n"))
	require.Contains(t, msg, "Subject: Job Portal - Status update\r\n")
	require.True(t, strings.HasSuffix(msg, "\r\n\r\nYou are now Interviewing.\r\n"))
}
