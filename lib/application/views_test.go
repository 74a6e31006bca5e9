package applicationhandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"job-portal-backend/models"
	dbmodels "job-portal-backend/models/db"
)

func application(id, jobID, userID string, status models.ApplicationStatus, date time.Time) dbmodels.Application {
	return dbmodels.Application{
		BaseModel: dbmodels.BaseModel{ID: id},
		JobID:     jobID,
		UserID:    userID,
		Status:    status,
		Date:      date,
	}
}

func TestCountByStatus(t *testing.T) {
	now := time.Now()
	list := []dbmodels.Application{
		application("a1", "j1", "u1", models.ApplicationStatusApplied, now),
		application("a2", "j1", "u2", models.ApplicationStatusApplied, now),
		application("a3", "j1", "u3", models.ApplicationStatusRejected, now),
	}
	counts := CountByStatus(list)
	require.Equal(t, map[string]int{"all": 3, "Applied": 2, "Rejected": 1}, counts)

	sum := 0
	for key, value := range counts {
		if key != models.ApplicationStatusAll {
			sum += value
		}
	}
	require.Equal(t, counts[models.ApplicationStatusAll], sum)

	require.Equal(t, map[string]int{"all": 0}, CountByStatus(nil))
}

func TestApplicantsForJob(t *testing.T) {
	now := time.Now()
	list := []dbmodels.Application{
		application("a1", "j1", "u1", models.ApplicationStatusApplied, now.Add(-2*time.Hour)),
		application("a2", "j1", "u2", models.ApplicationStatusRejected, now),
		application("a3", "j2", "u1", models.ApplicationStatusApplied, now),
		application("a4", "j1", "u3", models.ApplicationStatusApplied, now.Add(-time.Hour)),
	}
	cvs := map[string]dbmodels.Cv{
		"u1": {BaseModel: dbmodels.BaseModel{ID: "cv1"}, UserID: "u1", Name: "Jane Doe", Title: "Engineer"},
		"u2": {BaseModel: dbmodels.BaseModel{ID: "cv2"}, UserID: "u2", Name: "John Roe"},
	}

	t.Run("all", func(t *testing.T) {
		result := ApplicantsForJob("j1", models.ApplicationStatusAll, list, cvs)
		ids := []string{}
		for _, item := range result {
			ids = append(ids, item.ID)
		}
		require.Equal(t, []string{"a2", "a4", "a1"}, ids)
		require.Equal(t, "Unknown Candidate", result[1].CandidateName)
		require.Equal(t, "Jane Doe", result[2].CandidateName)
		require.Equal(t, "cv1", result[2].CvID)
	})
	t.Run("by status", func(t *testing.T) {
		result := ApplicantsForJob("j1", string(models.ApplicationStatusRejected), list, cvs)
		require.Len(t, result, 1)
		require.Equal(t, "John Roe", result[0].CandidateName)
	})
	t.Run("unknown job", func(t *testing.T) {
		require.Empty(t, ApplicantsForJob("j9", "", list, cvs))
	})
}

func TestGroupByStatus(t *testing.T) {
	now := time.Now()
	list := []dbmodels.Application{
		application("a1", "j1", "u1", models.ApplicationStatusApplied, now.Add(-time.Hour)),
		application("a2", "j2", "u1", models.ApplicationStatusApplied, now),
		application("a3", "j3", "u1", models.ApplicationStatusOffered, now),
	}
	jobs := map[string]dbmodels.Job{
		"j1": {BaseModel: dbmodels.BaseModel{ID: "j1"}, Title: "Nurse", Company: "Health Co"},
	}
	columns := GroupByStatus(list, jobs)
	require.Len(t, columns, 5)
	for n, status := range models.ApplicationStatusOrder {
		require.Equal(t, status, columns[n].Status)
		require.NotNil(t, columns[n].Applications)
	}
	require.Len(t, columns[0].Applications, 2)
	require.Equal(t, "a2", columns[0].Applications[0].ID)
	require.Equal(t, "Nurse", columns[0].Applications[1].JobTitle)
	require.Empty(t, columns[1].Applications)
	require.Len(t, columns[3].Applications, 1)
}
