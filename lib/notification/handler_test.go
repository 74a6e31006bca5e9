package notificationhandler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"job-portal-backend/lib/notification/store"
	"job-portal-backend/models"
)

func TestNotifications(t *testing.T) {
	handler := New(store.NewMemoryInstance(), nil)

	_, err := handler.Add("user-1", models.GetNotifyJobPosted("Backend Engineer"))
	require.NoError(t, err)
	handler.Send("user-1", models.GetNotifyAlertCreated("react"))
	handler.Send("user-2", models.GetNotifyProfileUpdated())

	t.Run("newest first per owner", func(t *testing.T) {
		list, err := handler.List("user-1")
		require.NoError(t, err)
		require.Len(t, list.Items, 2)
		require.Equal(t, 2, list.UnreadCount)
		require.Equal(t, `Job alert for "react" created successfully!`, list.Items[0].Message)
		require.Equal(t, models.NotificationSuccess, list.Items[0].Type)
		require.Equal(t, `New job "Backend Engineer" has been posted!`, list.Items[1].Message)
	})
	t.Run("mark all read touches only the owner", func(t *testing.T) {
		require.NoError(t, handler.MarkAllRead("user-1"))
		list, err := handler.List("user-1")
		require.NoError(t, err)
		require.Zero(t, list.UnreadCount)
		for _, item := range list.Items {
			require.True(t, item.Read)
		}
		other, err := handler.List("user-2")
		require.NoError(t, err)
		require.Equal(t, 1, other.UnreadCount)
	})
}
