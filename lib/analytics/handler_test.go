package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	applicationstore "job-portal-backend/lib/application/store"
	xlsexport "job-portal-backend/lib/export/xls"
	jobstore "job-portal-backend/lib/job/store"
	"job-portal-backend/models"
	dbmodels "job-portal-backend/models/db"
)

func TestSummarize(t *testing.T) {
	jobs := []dbmodels.Job{
		{BaseModel: dbmodels.BaseModel{ID: "j1"}, Title: "Nurse", Views: 200, Clicks: 50},
		{BaseModel: dbmodels.BaseModel{ID: "j2"}, Title: "Driver", Views: 0, Clicks: 0},
		{BaseModel: dbmodels.BaseModel{ID: "j3"}, Title: "Cook", Views: 10, Clicks: 0},
	}
	summary := Summarize(jobs, map[string]int{"j1": 5})
	require.Len(t, summary.Jobs, 3)
	require.InDelta(t, 0.25, *summary.Jobs[0].ClickThroughRate, 1e-9)
	require.InDelta(t, 0.1, *summary.Jobs[0].ConversionRate, 1e-9)
	require.Nil(t, summary.Jobs[1].ClickThroughRate)
	require.Nil(t, summary.Jobs[1].ConversionRate)
	require.NotNil(t, summary.Jobs[2].ClickThroughRate)
	require.Nil(t, summary.Jobs[2].ConversionRate)
	require.Equal(t, int64(210), summary.TotalViews)
	require.Equal(t, int64(50), summary.TotalClicks)
	require.Equal(t, 5, summary.Applications)
}

func TestJobs(t *testing.T) {
	xlsexport.NewHandler()
	handler := impl{
		jobStore:         jobstore.NewMemoryInstance(),
		applicationStore: applicationstore.NewMemoryInstance(),
		exporter:         xlsexport.Instance,
	}
	jobID, err := handler.jobStore.Create(dbmodels.Job{Title: "Nurse", EmployerID: "employer", Views: 100, Clicks: 10})
	require.NoError(t, err)
	_, err = handler.jobStore.Create(dbmodels.Job{Title: "Other", EmployerID: "someone-else"})
	require.NoError(t, err)
	_, err = handler.applicationStore.Create(dbmodels.Application{JobID: jobID, UserID: "u1", Date: time.Now(), Status: models.ApplicationStatusApplied})
	require.NoError(t, err)

	summary, err := handler.Jobs("employer")
	require.NoError(t, err)
	require.Len(t, summary.Jobs, 1)
	require.Equal(t, 1, summary.Jobs[0].Applications)
	require.InDelta(t, 0.1, *summary.Jobs[0].ConversionRate, 1e-9)

	buf, err := handler.JobsExportToXls("employer")
	require.NoError(t, err)
	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Job analytics")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Nurse", rows[1][0])
}
