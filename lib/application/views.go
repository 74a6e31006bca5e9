package applicationhandler

import (
	"sort"

	"job-portal-backend/models"
	applicationapimodels "job-portal-backend/models/api/application"
	dbmodels "job-portal-backend/models/db"
)

const unknownCandidate = "Unknown Candidate"

// ApplicantsForJob returns the applications of jobID with the given status
// ("all" or empty keeps every status), joined to the candidate CV by user id.
func ApplicantsForJob(jobID, status string, list []dbmodels.Application, cvByUser map[string]dbmodels.Cv) []applicationapimodels.ApplicantView {
	result := []applicationapimodels.ApplicantView{}
	for _, rec := range NewestFirst(list) {
		if rec.JobID != jobID {
			continue
		}
		if status != "" && status != models.ApplicationStatusAll && string(rec.Status) != status {
			continue
		}
		view := applicationapimodels.ApplicantView{
			ApplicationView: applicationapimodels.ApplicationConvert(rec),
			CandidateName:   unknownCandidate,
		}
		if cv, ok := cvByUser[rec.UserID]; ok {
			view.CvID = cv.ID
			view.CandidateName = cv.Name
			view.CandidateTitle = cv.Title
			view.ContactEmail = cv.ContactEmail
		}
		result = append(result, view)
	}
	return result
}

// CountByStatus returns "all" plus one entry per status present in list.
func CountByStatus(list []dbmodels.Application) map[string]int {
	counts := map[string]int{models.ApplicationStatusAll: len(list)}
	for _, rec := range list {
		counts[string(rec.Status)]++
	}
	return counts
}

// GroupByStatus splits list into the fixed status columns, each newest first.
// Every column is present even when empty.
func GroupByStatus(list []dbmodels.Application, jobs map[string]dbmodels.Job) []applicationapimodels.StatusColumn {
	columns := make([]applicationapimodels.StatusColumn, 0, len(models.ApplicationStatusOrder))
	index := map[models.ApplicationStatus]int{}
	for n, status := range models.ApplicationStatusOrder {
		index[status] = n
		columns = append(columns, applicationapimodels.StatusColumn{
			Status:       status,
			Applications: []applicationapimodels.ApplicationView{},
		})
	}
	for _, rec := range NewestFirst(list) {
		n, ok := index[rec.Status]
		if !ok {
			continue
		}
		view := applicationapimodels.ApplicationConvert(rec)
		if job, ok := jobs[rec.JobID]; ok {
			view.JobTitle = job.Title
			view.Company = job.Company
		}
		columns[n].Applications = append(columns[n].Applications, view)
	}
	return columns
}

func NewestFirst(list []dbmodels.Application) []dbmodels.Application {
	result := make([]dbmodels.Application, len(list))
	copy(result, list)
	sort.SliceStable(result, func(a, b int) bool {
		return result[a].Date.After(result[b].Date)
	})
	return result
}
