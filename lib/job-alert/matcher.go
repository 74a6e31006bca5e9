package jobalerthandler

import (
	"strings"

	"job-portal-backend/lib/category"
	"job-portal-backend/models"
	dbmodels "job-portal-backend/models/db"
)

// Match returns the alerts that fire for job, keeping the order of alerts.
func Match(job dbmodels.Job, alerts []dbmodels.JobAlert) []dbmodels.JobAlert {
	result := []dbmodels.JobAlert{}
	for _, alert := range alerts {
		if matches(job, alert) {
			result = append(result, alert)
		}
	}
	return result
}

func matches(job dbmodels.Job, alert dbmodels.JobAlert) bool {
	switch alert.Type {
	case models.AlertTypeKeyword:
		value := strings.ToLower(strings.TrimSpace(alert.Value))
		if value == "" {
			return false
		}
		return category.MatchesJob([]string{value}, job.Title, job.Description)
	case models.AlertTypeCategory:
		return category.MatchesByName(alert.Value, job.Title, job.Description)
	}
	return false
}
