package companyapimodels

import (
	"strings"

	"github.com/pkg/errors"
	dbmodels "job-portal-backend/models/db"
)

type CompanyProfileData struct {
	CompanyName string `json:"company_name"`
	Description string `json:"description"`
	Culture     string `json:"culture"`
	LogoUrl     string `json:"logo_url"`
}

func (c *CompanyProfileData) Validate() error {
	c.CompanyName = strings.TrimSpace(c.CompanyName)
	if c.CompanyName == "" {
		return errors.New("company name is required")
	}
	return nil
}

type CompanyProfileView struct {
	CompanyProfileData
	UserID string `json:"user_id"`
}

func CompanyProfileConvert(rec dbmodels.CompanyProfile) CompanyProfileView {
	return CompanyProfileView{
		CompanyProfileData: CompanyProfileData{
			CompanyName: rec.CompanyName,
			Description: rec.Description,
			Culture:     rec.Culture,
			LogoUrl:     rec.LogoUrl,
		},
		UserID: rec.UserID,
	}
}
