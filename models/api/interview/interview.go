package interviewapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"job-portal-backend/models"
	dbmodels "job-portal-backend/models/db"
)

type InterviewData struct {
	ApplicationID  string               `json:"application_id"`
	DateTime       time.Time            `json:"date_time"`
	Type           models.InterviewType `json:"type"`
	LocationOrLink string               `json:"location_or_link"`
	Notes          string               `json:"notes"`
}

func (i *InterviewData) Validate() error {
	i.ApplicationID = strings.TrimSpace(i.ApplicationID)
	i.LocationOrLink = strings.TrimSpace(i.LocationOrLink)
	if i.ApplicationID == "" {
		return errors.New("application id is required")
	}
	if i.DateTime.IsZero() {
		return errors.New("interview date and time are required")
	}
	if !i.Type.IsValid() {
		return errors.Errorf("unknown interview type %q", i.Type)
	}
	if i.LocationOrLink == "" {
		return errors.New("interview location or link is required")
	}
	return nil
}

type InterviewView struct {
	InterviewData
	ID     string `json:"id"`
	JobID  string `json:"job_id"`
	UserID string `json:"user_id"`
}

func InterviewConvert(rec dbmodels.Interview) InterviewView {
	return InterviewView{
		InterviewData: InterviewData{
			ApplicationID:  rec.ApplicationID,
			DateTime:       rec.DateTime,
			Type:           rec.Type,
			LocationOrLink: rec.LocationOrLink,
			Notes:          rec.Notes,
		},
		ID:     rec.ID,
		JobID:  rec.JobID,
		UserID: rec.UserID,
	}
}

type UpcomingView struct {
	InterviewView
	JobTitle      string `json:"job_title"`
	CandidateName string `json:"candidate_name"`
}
