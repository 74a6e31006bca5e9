package seedhandler

import (
	"time"

	"job-portal-backend/models"
	dbmodels "job-portal-backend/models/db"
)

const day = 24 * time.Hour

func demoApplications(now time.Time, jobIDs, userIDs []string) []dbmodels.Application {
	pdf := func(names ...string) dbmodels.Attachments {
		result := dbmodels.Attachments{}
		for _, name := range names {
			result = append(result, dbmodels.Attachment{Name: name, Type: "pdf"})
		}
		return result
	}
	app := func(job, user, daysAgo int, status models.ApplicationStatus, coverLetter string, attachments dbmodels.Attachments) dbmodels.Application {
		if attachments == nil {
			attachments = dbmodels.Attachments{}
		}
		return dbmodels.Application{
			JobID:       jobIDs[job],
			UserID:      userIDs[user],
			Date:        now.Add(-time.Duration(daysAgo) * day),
			Status:      status,
			CoverLetter: coverLetter,
			Attachments: attachments,
		}
	}
	return []dbmodels.Application{
		app(0, 1, 1, models.ApplicationStatusApplied,
			"I'm very excited about this opportunity. My experience with modern frontend frameworks and building scalable UI components aligns perfectly with your job description. I am confident I can contribute significantly to your team.",
			pdf("Bwalya_Chisanga_CV.pdf", "portfolio_highlights.pdf")),
		app(0, 2, 2, models.ApplicationStatusApplied,
			"Dear Hiring Manager, I am writing to express my keen interest in the Product Manager role. I have a proven track record of launching successful products from ideation to market and would love to bring my expertise to your company.",
			pdf("Temwani_Phiri_Resume.pdf")),
		app(0, 3, 3, models.ApplicationStatusUnderReview, "", nil),
		app(0, 4, 4, models.ApplicationStatusInterviewing, "", nil),
		app(0, 5, 5, models.ApplicationStatusRejected, "", nil),
		app(1, 6, 2, models.ApplicationStatusApplied, "", pdf("cv_latest.pdf")),
		app(2, 7, 5, models.ApplicationStatusOffered, "", nil),
	}
}
