package dbmodels

import "job-portal-backend/models"

type JobAlert struct {
	BaseModel
	UserID string           `gorm:"type:varchar(64);index:idx_alert_user"`
	Type   models.AlertType `gorm:"type:varchar(16)"`
	Value  string           `gorm:"type:varchar(255)"`
}
