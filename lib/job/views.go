package jobhandler

import (
	"sort"
	"strings"

	"job-portal-backend/lib/category"
	jobapimodels "job-portal-backend/models/api/job"
	dbmodels "job-portal-backend/models/db"
)

// CountByCategory counts the jobs matching each category, in category order.
func CountByCategory(jobs []dbmodels.Job) []jobapimodels.CategoryCount {
	result := []jobapimodels.CategoryCount{}
	for _, c := range category.List() {
		count := 0
		for _, job := range jobs {
			if category.MatchesJob(c.Keywords, job.Title, job.Description) {
				count++
			}
		}
		result = append(result, jobapimodels.CategoryCount{
			Name:     c.Name,
			Keywords: c.Keywords,
			JobCount: count,
		})
	}
	return result
}

// AggregateCompanies groups jobs by exact company name. Titles keep the
// job order, locations are deduplicated; companies sort by job count.
func AggregateCompanies(jobs []dbmodels.Job) []jobapimodels.CompanyView {
	result := []jobapimodels.CompanyView{}
	index := map[string]int{}
	for _, job := range jobs {
		k, ok := index[job.Company]
		if !ok {
			k = len(result)
			index[job.Company] = k
			result = append(result, jobapimodels.CompanyView{
				Name:      job.Company,
				JobTitles: []string{},
				Locations: []string{},
			})
		}
		company := &result[k]
		company.JobCount++
		company.JobTitles = append(company.JobTitles, job.Title)
		if !containsString(company.Locations, job.Location) {
			company.Locations = append(company.Locations, job.Location)
		}
	}
	sort.SliceStable(result, func(a, b int) bool {
		return result[a].JobCount > result[b].JobCount
	})
	return result
}

// FilterJobs applies the search filter; savedIDs is only used with SavedOnly.
func FilterJobs(jobs []dbmodels.Job, filter jobapimodels.JobFilter, savedIDs map[string]bool) []dbmodels.Job {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	location := strings.ToLower(strings.TrimSpace(filter.Location))
	var keywords []string
	if filter.Category != "" {
		c, ok := category.Find(filter.Category)
		if ok {
			keywords = c.Keywords
		}
	}

	result := []dbmodels.Job{}
	for _, job := range jobs {
		if filter.SavedOnly && !savedIDs[job.ID] {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(job.Title), search) &&
			!strings.Contains(strings.ToLower(job.Company), search) &&
			!strings.Contains(strings.ToLower(job.Description), search) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(job.Location), location) {
			continue
		}
		if keywords != nil && !category.MatchesJob(keywords, job.Title, job.Description) {
			continue
		}
		result = append(result, job)
	}
	return result
}

// NewestFirst orders jobs by creation time descending without touching the input.
// Jobs created at the same time come out in reverse list order.
func NewestFirst(jobs []dbmodels.Job) []dbmodels.Job {
	result := make([]dbmodels.Job, len(jobs))
	for k, job := range jobs {
		result[len(jobs)-1-k] = job
	}
	sort.SliceStable(result, func(a, b int) bool {
		return result[a].CreatedAt.After(result[b].CreatedAt)
	})
	return result
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
