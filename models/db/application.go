package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"job-portal-backend/models"
)

type Application struct {
	BaseModel
	JobID       string                   `gorm:"type:varchar(36);index"`
	UserID      string                   `gorm:"type:varchar(64);index"`
	Date        time.Time                `gorm:"index"`
	Status      models.ApplicationStatus `gorm:"type:varchar(32)"`
	CoverLetter string
	Attachments Attachments `gorm:"type:jsonb"`
}

type Attachment struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Key  string `json:"key,omitempty"` // object storage key, empty when not uploaded
}

type Attachments []Attachment

func (j Attachments) Value() (driver.Value, error) {
	if j == nil {
		return "[]", nil
	}
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *Attachments) Scan(value interface{}) error {
	data, err := scanBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, j)
}
