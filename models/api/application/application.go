package applicationapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"job-portal-backend/models"
	dbmodels "job-portal-backend/models/db"
)

type AttachmentData struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Key  string `json:"key,omitempty"` // returned by the attachment upload
}

type ApplyData struct {
	JobID       string           `json:"job_id"`
	CoverLetter string           `json:"cover_letter"`
	Attachments []AttachmentData `json:"attachments"`
}

func (a *ApplyData) Validate() error {
	a.JobID = strings.TrimSpace(a.JobID)
	if a.JobID == "" {
		return errors.New("job id is required")
	}
	for _, attachment := range a.Attachments {
		if strings.TrimSpace(attachment.Name) == "" {
			return errors.New("attachment name is required")
		}
	}
	return nil
}

type StatusData struct {
	Status models.ApplicationStatus `json:"status"`
}

func (s StatusData) Validate() error {
	if !s.Status.IsValid() {
		return errors.Errorf("unknown application status %q", s.Status)
	}
	return nil
}

type ApplicationView struct {
	ID          string                   `json:"id"`
	JobID       string                   `json:"job_id"`
	UserID      string                   `json:"user_id"`
	Date        time.Time                `json:"date"`
	Status      models.ApplicationStatus `json:"status"`
	CoverLetter string                   `json:"cover_letter"`
	Attachments []AttachmentData         `json:"attachments"`
	JobTitle    string                   `json:"job_title,omitempty"`
	Company     string                   `json:"company,omitempty"`
}

func ApplicationConvert(rec dbmodels.Application) ApplicationView {
	attachments := make([]AttachmentData, 0, len(rec.Attachments))
	for _, attachment := range rec.Attachments {
		attachments = append(attachments, AttachmentData{
			Name: attachment.Name,
			Type: attachment.Type,
			Key:  attachment.Key,
		})
	}
	return ApplicationView{
		ID:          rec.ID,
		JobID:       rec.JobID,
		UserID:      rec.UserID,
		Date:        rec.Date,
		Status:      rec.Status,
		CoverLetter: rec.CoverLetter,
		Attachments: attachments,
	}
}

type ApplicantView struct {
	ApplicationView
	CvID           string `json:"cv_id,omitempty"`
	CandidateName  string `json:"candidate_name"`
	CandidateTitle string `json:"candidate_title"`
	ContactEmail   string `json:"contact_email,omitempty"`
}

type ApplicantList struct {
	Applicants []ApplicantView `json:"applicants"`
	Counts     map[string]int  `json:"counts"` // "all" plus every present status
}

type StatusColumn struct {
	Status       models.ApplicationStatus `json:"status"`
	Applications []ApplicationView        `json:"applications"`
}
