package xlsexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"job-portal-backend/models"
	analyticsapimodels "job-portal-backend/models/api/analytics"
	applicationapimodels "job-portal-backend/models/api/application"
)

func TestExportApplicantList(t *testing.T) {
	list := []applicationapimodels.ApplicantView{
		{
			ApplicationView: applicationapimodels.ApplicationView{
				Date:        time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
				Status:      models.ApplicationStatusUnderReview,
				Attachments: []applicationapimodels.AttachmentData{{Name: "cv.pdf"}, {Name: "cover.docx"}},
			},
			CandidateName: "Jane Doe",
		},
	}
	buf, err := impl{}.ExportApplicantList("Backend Engineer", list)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	rows, err := f.GetRows("Applicants")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, applicantHeaders, rows[0])
	require.Equal(t, "Jane Doe", rows[1][0])
	require.Equal(t, "Backend Engineer", rows[1][3])
	require.Equal(t, "2024-05-01", rows[1][4])
	require.Equal(t, "Under Review", rows[1][5])
	require.Equal(t, "cv.pdf, cover.docx", rows[1][6])
}

func TestExportJobStats(t *testing.T) {
	ctr := 0.25
	list := []analyticsapimodels.JobStat{
		{Title: "Nurse", Views: 400, Clicks: 100, Applications: 0, ClickThroughRate: &ctr},
		{Title: "Unseen", Views: 0, Clicks: 0},
	}
	buf, err := impl{}.ExportJobStats(list)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	rows, err := f.GetRows("Job analytics")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "Nurse", rows[1][0])
	require.Equal(t, "400", rows[1][1])
	raw, err := f.GetCellValue("Job analytics", "E2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Equal(t, "0.25", raw)
	require.Equal(t, "Unseen", rows[2][0])
}
