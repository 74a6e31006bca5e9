package sessionapimodels

import (
	"job-portal-backend/models"
	companyapimodels "job-portal-backend/models/api/company"
	cvapimodels "job-portal-backend/models/api/cv"
)

type SessionView struct {
	UserID  string                               `json:"user_id"`
	Email   string                               `json:"email"`
	Role    models.UserRole                      `json:"role"`
	Cv      *cvapimodels.CvView                  `json:"cv,omitempty"`
	Company *companyapimodels.CompanyProfileView `json:"company,omitempty"`
}
