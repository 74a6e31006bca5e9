package notificationapimodels

import (
	"time"

	"job-portal-backend/models"
	dbmodels "job-portal-backend/models/db"
)

type NotificationView struct {
	ID        string                  `json:"id"`
	Type      models.NotificationType `json:"type"`
	Code      models.NotificationCode `json:"code"`
	Message   string                  `json:"message"`
	Read      bool                    `json:"read"`
	CreatedAt time.Time               `json:"created_at"`
}

func NotificationConvert(rec dbmodels.Notification) NotificationView {
	return NotificationView{
		ID:        rec.ID,
		Type:      rec.Type,
		Code:      rec.Code,
		Message:   rec.Msg,
		Read:      rec.Read,
		CreatedAt: rec.CreatedAt,
	}
}

type NotificationList struct {
	Items       []NotificationView `json:"items"`
	UnreadCount int                `json:"unread_count"`
}
