package interviewhandler

import (
	"sort"

	interviewapimodels "job-portal-backend/models/api/interview"
	dbmodels "job-portal-backend/models/db"
)

const (
	unknownJob       = "Unknown Job"
	unknownCandidate = "Unknown Candidate"
)

// JoinUpcoming joins interviews to job titles and candidate names, ascending by date.
func JoinUpcoming(list []dbmodels.Interview, jobs map[string]dbmodels.Job, cvByUser map[string]dbmodels.Cv) []interviewapimodels.UpcomingView {
	sorted := make([]dbmodels.Interview, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].DateTime.Before(sorted[b].DateTime)
	})
	result := make([]interviewapimodels.UpcomingView, 0, len(sorted))
	for _, rec := range sorted {
		view := interviewapimodels.UpcomingView{
			InterviewView: interviewapimodels.InterviewConvert(rec),
			JobTitle:      unknownJob,
			CandidateName: unknownCandidate,
		}
		if job, ok := jobs[rec.JobID]; ok {
			view.JobTitle = job.Title
		}
		if cv, ok := cvByUser[rec.UserID]; ok {
			view.CandidateName = cv.Name
		}
		result = append(result, view)
	}
	return result
}
