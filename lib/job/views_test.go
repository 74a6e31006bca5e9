package jobhandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	jobapimodels "job-portal-backend/models/api/job"
	dbmodels "job-portal-backend/models/db"
)

func testJobs() []dbmodels.Job {
	return []dbmodels.Job{
		{BaseModel: dbmodels.BaseModel{ID: "1"}, Title: "Financial Analyst", Company: "Acme", Location: "Lusaka", Description: "Budgets and reports"},
		{BaseModel: dbmodels.BaseModel{ID: "2"}, Title: "Nurse", Company: "CityCare", Location: "Ndola", Description: "Medical ward"},
		{BaseModel: dbmodels.BaseModel{ID: "3"}, Title: "Accountant", Company: "Acme", Location: "Kitwe", Description: "Ledger"},
		{BaseModel: dbmodels.BaseModel{ID: "4"}, Title: "Sales Lead", Company: "Acme", Location: "Lusaka", Description: "Customer accounts"},
		{BaseModel: dbmodels.BaseModel{ID: "5"}, Title: "Site Engineer", Company: "BuildIt", Location: "Lusaka", Description: "Civil works"},
	}
}

func TestAggregateCompanies(t *testing.T) {
	result := AggregateCompanies(testJobs())
	require.Len(t, result, 3)
	require.Equal(t, jobapimodels.CompanyView{
		Name:      "Acme",
		JobCount:  3,
		JobTitles: []string{"Financial Analyst", "Accountant", "Sales Lead"},
		Locations: []string{"Lusaka", "Kitwe"},
	}, result[0])
	// equal counts keep first appearance order
	require.Equal(t, "CityCare", result[1].Name)
	require.Equal(t, "BuildIt", result[2].Name)

	total := 0
	for _, company := range result {
		total += company.JobCount
	}
	require.Equal(t, len(testJobs()), total)
	require.Empty(t, AggregateCompanies(nil))
}

func TestCountByCategory(t *testing.T) {
	counts := map[string]int{}
	for _, item := range CountByCategory(testJobs()) {
		counts[item.Name] = item.JobCount
	}
	require.Equal(t, map[string]int{
		"Business Development": 1,
		"Construction":         1,
		"Customer Service":     1,
		"Finance":              2,
		"Healthcare":           1,
		"Human Resources":      0,
	}, counts)
}

func TestFilterJobs(t *testing.T) {
	ids := func(list []dbmodels.Job) []string {
		result := []string{}
		for _, job := range list {
			result = append(result, job.ID)
		}
		return result
	}
	t.Run("search over title company description", func(t *testing.T) {
		require.Equal(t, []string{"1", "3", "4"}, ids(FilterJobs(testJobs(), jobapimodels.JobFilter{Search: "acme"}, nil)))
		require.Equal(t, []string{"2"}, ids(FilterJobs(testJobs(), jobapimodels.JobFilter{Search: "WARD"}, nil)))
	})
	t.Run("location and category", func(t *testing.T) {
		filter := jobapimodels.JobFilter{Location: "lusaka", Category: "Finance"}
		require.Equal(t, []string{"1"}, ids(FilterJobs(testJobs(), filter, nil)))
	})
	t.Run("unknown category does not filter", func(t *testing.T) {
		require.Len(t, FilterJobs(testJobs(), jobapimodels.JobFilter{Category: "Astronomy"}, nil), 5)
	})
	t.Run("saved only", func(t *testing.T) {
		saved := map[string]bool{"2": true, "5": true}
		require.Equal(t, []string{"2", "5"}, ids(FilterJobs(testJobs(), jobapimodels.JobFilter{SavedOnly: true}, saved)))
	})
	t.Run("newest first", func(t *testing.T) {
		require.Equal(t, []string{"5", "4", "3", "2", "1"}, ids(NewestFirst(testJobs())))
	})
	t.Run("newest first by creation time", func(t *testing.T) {
		now := time.Now()
		jobs := testJobs()
		jobs[0].CreatedAt = now
		jobs[1].CreatedAt = now.Add(-time.Minute)
		jobs[2].CreatedAt = now.Add(-time.Minute)
		jobs[3].CreatedAt = now.Add(-2 * time.Minute)
		jobs[4].CreatedAt = now.Add(-3 * time.Minute)
		require.Equal(t, []string{"1", "3", "2", "4", "5"}, ids(NewestFirst(jobs)))
	})
}
