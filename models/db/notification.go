package dbmodels

import "job-portal-backend/models"

type Notification struct {
	BaseModel
	UserID string                  `gorm:"type:varchar(64);index:idx_notification_user"`
	Code   models.NotificationCode `gorm:"type:varchar(64)"`
	Type   models.NotificationType `gorm:"type:varchar(16)"`
	Msg    string
	Read   bool
}
