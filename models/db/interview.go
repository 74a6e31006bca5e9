package dbmodels

import (
	"time"

	"job-portal-backend/models"
)

type Interview struct {
	BaseModel
	ApplicationID  string               `gorm:"type:varchar(36);index"`
	JobID          string               `gorm:"type:varchar(36);index"`
	UserID         string               `gorm:"type:varchar(64);index"`
	DateTime       time.Time            `gorm:"index"`
	Type           models.InterviewType `gorm:"type:varchar(16)"`
	LocationOrLink string
	Notes          string
}
