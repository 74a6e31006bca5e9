package cvapimodels

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
	dbmodels "job-portal-backend/models/db"
)

var (
	emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegexp = regexp.MustCompile(`^\+?[0-9\s\-()]{7,20}$`)
)

type CvData struct {
	Name         string   `json:"name"`
	Title        string   `json:"title"`
	Experience   []string `json:"experience"`
	Skills       []string `json:"skills"`
	AvatarUrl    string   `json:"avatar_url"`
	ContactEmail string   `json:"contact_email"`
	Phone        string   `json:"phone"`
}

func (c *CvData) Validate() error {
	c.Name = strings.TrimSpace(c.Name)
	c.ContactEmail = strings.TrimSpace(c.ContactEmail)
	c.Phone = strings.TrimSpace(c.Phone)
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.ContactEmail != "" && !emailRegexp.MatchString(c.ContactEmail) {
		return errors.New("contact email is not valid")
	}
	if c.Phone != "" && !phoneRegexp.MatchString(c.Phone) {
		return errors.New("phone number is not valid")
	}
	return nil
}

type CvView struct {
	CvData
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	CvFileName string `json:"cv_file_name"`
}

func CvConvert(rec dbmodels.Cv) CvView {
	return CvView{
		CvData: CvData{
			Name:         rec.Name,
			Title:        rec.Title,
			Experience:   nonNil(rec.Experience),
			Skills:       nonNil(rec.Skills),
			AvatarUrl:    rec.AvatarUrl,
			ContactEmail: rec.ContactEmail,
			Phone:        rec.Phone,
		},
		ID:         rec.ID,
		UserID:     rec.UserID,
		CvFileName: rec.CvFileName,
	}
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

type CvFilter struct {
	Search string `json:"search" query:"search"` // name, title or skill
}
