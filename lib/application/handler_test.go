package applicationhandler

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"job-portal-backend/lib/application/store"
	cvstore "job-portal-backend/lib/cv/store"
	xlsexport "job-portal-backend/lib/export/xls"
	jobstore "job-portal-backend/lib/job/store"
	notificationhandler "job-portal-backend/lib/notification"
	notificationstore "job-portal-backend/lib/notification/store"
	"job-portal-backend/lib/utils/lock"
	"job-portal-backend/models"
	applicationapimodels "job-portal-backend/models/api/application"
	dbmodels "job-portal-backend/models/db"
)

type mailerMock struct {
	sent []string
}

func (m *mailerMock) SendEMail(to, subject, message string) error {
	m.sent = append(m.sent, to)
	return nil
}

func (m *mailerMock) IsConfigured() bool {
	return true
}

func getInstance(t *testing.T) (impl, *mailerMock, string) {
	xlsexport.NewHandler()
	mailer := &mailerMock{}
	instance := impl{
		store:    store.NewMemoryInstance(),
		jobStore: jobstore.NewMemoryInstance(),
		cvStore:  cvstore.NewMemoryInstance(),
		notifier: notificationhandler.New(notificationstore.NewMemoryInstance(), nil),
		mailer:   mailer,
		exporter: xlsexport.Instance,
	}
	instance.checkInit()
	jobID, err := instance.jobStore.Create(dbmodels.Job{
		Title:      "Registered Nurse",
		Company:    "Health Co",
		Location:   "Lusaka",
		EmployerID: "employer",
	})
	require.NoError(t, err)
	_, err = instance.cvStore.Create(dbmodels.Cv{UserID: "seeker", Name: "Jane Doe", ContactEmail: "jane@example.com"})
	require.NoError(t, err)
	return instance, mailer, jobID
}

func TestCreate(t *testing.T) {
	handler, _, jobID := getInstance(t)

	t.Run("applied", func(t *testing.T) {
		view, err := handler.Create("seeker", applicationapimodels.ApplyData{
			JobID:       jobID,
			CoverLetter: " Hello ",
			Attachments: []applicationapimodels.AttachmentData{{Name: "cv.pdf", Type: "application/pdf"}},
		})
		require.NoError(t, err)
		require.Equal(t, models.ApplicationStatusApplied, view.Status)
		require.Equal(t, "Hello", view.CoverLetter)
		require.Equal(t, "Registered Nurse", view.JobTitle)
		require.Len(t, view.Attachments, 1)
		require.False(t, view.Date.IsZero())

		notes, err := handler.notifier.List("seeker")
		require.NoError(t, err)
		require.Equal(t, `Application for "Registered Nurse" submitted successfully!`, notes.Items[0].Message)
	})
	t.Run("unknown job", func(t *testing.T) {
		_, err := handler.Create("seeker", applicationapimodels.ApplyData{JobID: "missing"})
		require.True(t, errors.Is(err, models.ErrNotFound))
	})
	t.Run("no job id", func(t *testing.T) {
		_, err := handler.Create("seeker", applicationapimodels.ApplyData{})
		require.True(t, errors.Is(err, models.ErrValidation))
	})
	t.Run("duplicates allowed", func(t *testing.T) {
		_, err := handler.Create("seeker", applicationapimodels.ApplyData{JobID: jobID})
		require.NoError(t, err)
		list, err := handler.store.ListByUser("seeker")
		require.NoError(t, err)
		require.Len(t, list, 2)
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	handler, mailer, jobID := getInstance(t)
	created, err := handler.Create("seeker", applicationapimodels.ApplyData{JobID: jobID})
	require.NoError(t, err)

	t.Run("legal transition", func(t *testing.T) {
		view, err := handler.UpdateStatus(ctx, "employer", created.ID, models.ApplicationStatusUnderReview)
		require.NoError(t, err)
		require.Equal(t, models.ApplicationStatusUnderReview, view.Status)

		rec, err := handler.store.GetByID(created.ID)
		require.NoError(t, err)
		require.Equal(t, models.ApplicationStatusUnderReview, rec.Status)

		notes, err := handler.notifier.List("seeker")
		require.NoError(t, err)
		require.Equal(t, `Your application for "Registered Nurse" is now Under Review.`, notes.Items[0].Message)
		require.Equal(t, []string{"jane@example.com"}, mailer.sent)
	})
	t.Run("same status is a no-op", func(t *testing.T) {
		_, err := handler.UpdateStatus(ctx, "employer", created.ID, models.ApplicationStatusUnderReview)
		require.NoError(t, err)
		require.Len(t, mailer.sent, 1)
	})
	t.Run("illegal transition", func(t *testing.T) {
		_, err := handler.UpdateStatus(ctx, "employer", created.ID, models.ApplicationStatusOffered)
		require.True(t, errors.Is(err, models.ErrIllegalTransition))
		_, err = handler.UpdateStatus(ctx, "employer", created.ID, models.ApplicationStatusApplied)
		require.True(t, errors.Is(err, models.ErrIllegalTransition))
	})
	t.Run("unknown status", func(t *testing.T) {
		_, err := handler.UpdateStatus(ctx, "employer", created.ID, "Hired")
		require.True(t, errors.Is(err, models.ErrValidation))
	})
	t.Run("unknown application", func(t *testing.T) {
		_, err := handler.UpdateStatus(ctx, "employer", "missing", models.ApplicationStatusRejected)
		require.True(t, errors.Is(err, models.ErrNotFound))
	})
	t.Run("other employer", func(t *testing.T) {
		_, err := handler.UpdateStatus(ctx, "intruder", created.ID, models.ApplicationStatusRejected)
		require.True(t, errors.Is(err, models.ErrForbidden))
	})
	t.Run("terminal", func(t *testing.T) {
		_, err := handler.UpdateStatus(ctx, "employer", created.ID, models.ApplicationStatusRejected)
		require.NoError(t, err)
		_, err = handler.UpdateStatus(ctx, "employer", created.ID, models.ApplicationStatusUnderReview)
		require.True(t, errors.Is(err, models.ErrIllegalTransition))
	})
	t.Run("locked", func(t *testing.T) {
		other, err := handler.Create("seeker", applicationapimodels.ApplyData{JobID: jobID})
		require.NoError(t, err)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		err = lock.Run(ctx, LockKey(other.ID), lockWait, func() error {
			_, err := handler.UpdateStatus(cancelled, "employer", other.ID, models.ApplicationStatusUnderReview)
			return err
		})
		require.True(t, errors.Is(err, models.ErrBusy))
	})
}

func TestApplicants(t *testing.T) {
	handler, _, jobID := getInstance(t)
	for _, user := range []string{"seeker", "ghost", "seeker"} {
		_, err := handler.Create(user, applicationapimodels.ApplyData{JobID: jobID})
		require.NoError(t, err)
	}

	t.Run("all", func(t *testing.T) {
		list, err := handler.Applicants("employer", jobID, models.ApplicationStatusAll)
		require.NoError(t, err)
		require.Len(t, list.Applicants, 3)
		require.Equal(t, map[string]int{"all": 3, "Applied": 3}, list.Counts)
		seen := map[string]bool{}
		for _, item := range list.Applicants {
			require.False(t, seen[item.ID])
			seen[item.ID] = true
		}
	})
	t.Run("filter keeps counts", func(t *testing.T) {
		list, err := handler.Applicants("employer", jobID, string(models.ApplicationStatusRejected))
		require.NoError(t, err)
		require.Empty(t, list.Applicants)
		require.Equal(t, 3, list.Counts["all"])
	})
	t.Run("bad filter", func(t *testing.T) {
		_, err := handler.Applicants("employer", jobID, "Hired")
		require.True(t, errors.Is(err, models.ErrValidation))
	})
	t.Run("not owner", func(t *testing.T) {
		_, err := handler.Applicants("intruder", jobID, "")
		require.True(t, errors.Is(err, models.ErrForbidden))
	})
	t.Run("export", func(t *testing.T) {
		buf, err := handler.ExportApplicants("employer", jobID, "")
		require.NoError(t, err)
		f, err := excelize.OpenReader(buf)
		require.NoError(t, err)
		defer f.Close()
		rows, err := f.GetRows("Applicants")
		require.NoError(t, err)
		require.Len(t, rows, 4)
		require.Equal(t, "Registered Nurse", rows[1][3])
	})
}

func TestListByUser(t *testing.T) {
	ctx := context.Background()
	handler, _, jobID := getInstance(t)
	first, err := handler.Create("seeker", applicationapimodels.ApplyData{JobID: jobID})
	require.NoError(t, err)
	_, err = handler.Create("seeker", applicationapimodels.ApplyData{JobID: jobID})
	require.NoError(t, err)
	_, err = handler.UpdateStatus(ctx, "employer", first.ID, models.ApplicationStatusRejected)
	require.NoError(t, err)

	columns, err := handler.ListByUser("seeker")
	require.NoError(t, err)
	require.Len(t, columns, 5)
	require.Len(t, columns[0].Applications, 1)
	require.Equal(t, "Registered Nurse", columns[0].Applications[0].JobTitle)
	require.Len(t, columns[4].Applications, 1)
	require.Equal(t, first.ID, columns[4].Applications[0].ID)
}
