package jobapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	dbmodels "job-portal-backend/models/db"
)

type JobData struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

func (j *JobData) Validate() error {
	j.Title = strings.TrimSpace(j.Title)
	j.Company = strings.TrimSpace(j.Company)
	j.Location = strings.TrimSpace(j.Location)
	j.Description = strings.TrimSpace(j.Description)
	if j.Title == "" {
		return errors.New("job title is required")
	}
	if j.Location == "" {
		return errors.New("job location is required")
	}
	if j.Description == "" {
		return errors.New("job description is required")
	}
	return nil
}

type JobView struct {
	JobData
	ID         string    `json:"id"`
	EmployerID string    `json:"employer_id"`
	Views      int64     `json:"views"`
	Clicks     int64     `json:"clicks"`
	CreatedAt  time.Time `json:"created_at"`
	Saved      bool      `json:"saved"`   // in the user's saved list
	Applied    bool      `json:"applied"` // the user already applied
}

func JobConvert(rec dbmodels.Job) JobView {
	return JobView{
		JobData: JobData{
			Title:       rec.Title,
			Company:     rec.Company,
			Location:    rec.Location,
			Description: rec.Description,
		},
		ID:         rec.ID,
		EmployerID: rec.EmployerID,
		Views:      rec.Views,
		Clicks:     rec.Clicks,
		CreatedAt:  rec.CreatedAt,
	}
}

type JobFilter struct {
	Search    string `json:"search" query:"search"`         // title, company or description
	Location  string `json:"location" query:"location"`     // location substring
	Category  string `json:"category" query:"category"`     // category name
	SavedOnly bool   `json:"saved_only" query:"saved_only"` // only jobs saved by the user
}

type EmployerJobView struct {
	JobView
	ApplicantCount int `json:"applicant_count"`
}

type CategoryCount struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
	JobCount int      `json:"job_count"`
}

type CompanyView struct {
	Name      string   `json:"name"`
	JobCount  int      `json:"job_count"`
	JobTitles []string `json:"job_titles"`
	Locations []string `json:"locations"`
}
