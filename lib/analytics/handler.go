package analytics

import (
	"bytes"

	applicationstore "job-portal-backend/lib/application/store"
	xlsexport "job-portal-backend/lib/export/xls"
	jobhandler "job-portal-backend/lib/job"
	jobstore "job-portal-backend/lib/job/store"
	initchecker "job-portal-backend/lib/utils/init-checker"
	analyticsapimodels "job-portal-backend/models/api/analytics"
	dbmodels "job-portal-backend/models/db"
)

type Provider interface {
	Jobs(employerID string) (analyticsapimodels.Summary, error)
	JobsExportToXls(employerID string) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		jobStore:         jobstore.Default(),
		applicationStore: applicationstore.Default(),
		exporter:         xlsexport.Instance,
	}
	initchecker.CheckInit(
		"jobStore", instance.jobStore,
		"applicationStore", instance.applicationStore,
		"exporter", instance.exporter,
	)
	Instance = instance
}

type impl struct {
	jobStore         jobstore.Provider
	applicationStore applicationstore.Provider
	exporter         xlsexport.Provider
}

func (i impl) Jobs(employerID string) (analyticsapimodels.Summary, error) {
	jobs, err := i.jobStore.ListByEmployer(employerID)
	if err != nil {
		return analyticsapimodels.Summary{}, err
	}
	applications := make(map[string]int, len(jobs))
	for _, job := range jobs {
		list, err := i.applicationStore.ListByJob(job.ID)
		if err != nil {
			return analyticsapimodels.Summary{}, err
		}
		applications[job.ID] = len(list)
	}
	return Summarize(jobhandler.NewestFirst(jobs), applications), nil
}

func (i impl) JobsExportToXls(employerID string) (*bytes.Buffer, error) {
	summary, err := i.Jobs(employerID)
	if err != nil {
		return nil, err
	}
	return i.exporter.ExportJobStats(summary.Jobs)
}

func Summarize(jobs []dbmodels.Job, applications map[string]int) analyticsapimodels.Summary {
	summary := analyticsapimodels.Summary{
		Jobs: make([]analyticsapimodels.JobStat, 0, len(jobs)),
	}
	for _, job := range jobs {
		stat := analyticsapimodels.JobStat{
			JobID:            job.ID,
			Title:            job.Title,
			Views:            job.Views,
			Clicks:           job.Clicks,
			Applications:     applications[job.ID],
			ClickThroughRate: rate(float64(job.Clicks), float64(job.Views)),
			ConversionRate:   rate(float64(applications[job.ID]), float64(job.Clicks)),
		}
		summary.Jobs = append(summary.Jobs, stat)
		summary.TotalViews += stat.Views
		summary.TotalClicks += stat.Clicks
		summary.Applications += stat.Applications
	}
	return summary
}

// rate is nil when the denominator is zero.
func rate(numerator, denominator float64) *float64 {
	if denominator == 0 {
		return nil
	}
	value := numerator / denominator
	return &value
}
