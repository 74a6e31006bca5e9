package interviewhandler

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"job-portal-backend/db"
	applicationstore "job-portal-backend/lib/application/store"
	cvstore "job-portal-backend/lib/cv/store"
	"job-portal-backend/lib/interview/store"
	jobstore "job-portal-backend/lib/job/store"
	"job-portal-backend/lib/mail"
	notificationhandler "job-portal-backend/lib/notification"
	notificationstore "job-portal-backend/lib/notification/store"
	"job-portal-backend/models"
	interviewapimodels "job-portal-backend/models/api/interview"
	dbmodels "job-portal-backend/models/db"
)

type mailerMock struct {
	to          []string
	attachments []mail.Attachment
}

func (m *mailerMock) Send(to, subject, body string, attachments ...mail.Attachment) error {
	m.to = append(m.to, to)
	m.attachments = append(m.attachments, attachments...)
	return nil
}

type fixture struct {
	handler       impl
	mailer        *mailerMock
	jobID         string
	applicationID string
}

func getFixture(t *testing.T, status models.ApplicationStatus) fixture {
	mailer := &mailerMock{}
	handler := impl{
		store:            store.NewMemoryInstance(),
		applicationStore: applicationstore.NewMemoryInstance(),
		jobStore:         jobstore.NewMemoryInstance(),
		cvStore:          cvstore.NewMemoryInstance(),
		notifier:         notificationhandler.New(notificationstore.NewMemoryInstance(), nil),
		mailer:           mailer,
		transaction:      db.Transaction,
	}
	handler.checkInit()
	jobID, err := handler.jobStore.Create(dbmodels.Job{Title: "Site Engineer", Company: "BuildCo", EmployerID: "employer"})
	require.NoError(t, err)
	_, err = handler.cvStore.Create(dbmodels.Cv{UserID: "seeker", Name: "Jane Doe", ContactEmail: "jane@example.com"})
	require.NoError(t, err)
	applicationID, err := handler.applicationStore.Create(dbmodels.Application{
		JobID:  jobID,
		UserID: "seeker",
		Date:   time.Now(),
		Status: status,
	})
	require.NoError(t, err)
	return fixture{
		handler:       handler,
		mailer:        mailer,
		jobID:         jobID,
		applicationID: applicationID,
	}
}

func interviewData(applicationID string, at time.Time) interviewapimodels.InterviewData {
	return interviewapimodels.InterviewData{
		ApplicationID:  applicationID,
		DateTime:       at,
		Type:           models.InterviewTypeVirtual,
		LocationOrLink: "https://meet.example.com/abc",
		Notes:          "Bring portfolio",
	}
}

func TestSchedule(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 11, 3, 10, 0, 0, 0, time.UTC)

	t.Run("sets interviewing", func(t *testing.T) {
		f := getFixture(t, models.ApplicationStatusUnderReview)
		view, err := f.handler.Schedule(ctx, "employer", interviewData(f.applicationID, at))
		require.NoError(t, err)
		require.Equal(t, f.jobID, view.JobID)
		require.Equal(t, "seeker", view.UserID)

		application, err := f.handler.applicationStore.GetByID(f.applicationID)
		require.NoError(t, err)
		require.Equal(t, models.ApplicationStatusInterviewing, application.Status)

		list, err := f.handler.store.ListByApplication(f.applicationID)
		require.NoError(t, err)
		require.Len(t, list, 1)

		notes, err := f.handler.notifier.List("seeker")
		require.NoError(t, err)
		require.Equal(t, `Interview for "Site Engineer" scheduled on Nov 3, 2026 10:00 AM (Virtual).`, notes.Items[0].Message)
		employerNotes, err := f.handler.notifier.List("employer")
		require.NoError(t, err)
		require.Equal(t, "Interview with Jane Doe scheduled successfully!", employerNotes.Items[0].Message)

		require.Equal(t, []string{"jane@example.com"}, f.mailer.to)
		require.Equal(t, "interview-Jane_Doe.ics", f.mailer.attachments[0].FileName)
		require.True(t, strings.HasPrefix(string(f.mailer.attachments[0].Content), "BEGIN:VCALENDAR"))
	})
	t.Run("illegal from applied", func(t *testing.T) {
		f := getFixture(t, models.ApplicationStatusApplied)
		_, err := f.handler.Schedule(ctx, "employer", interviewData(f.applicationID, at))
		require.True(t, errors.Is(err, models.ErrIllegalTransition))
		list, err := f.handler.store.ListByApplication(f.applicationID)
		require.NoError(t, err)
		require.Empty(t, list)
	})
	t.Run("terminal", func(t *testing.T) {
		f := getFixture(t, models.ApplicationStatusRejected)
		_, err := f.handler.Schedule(ctx, "employer", interviewData(f.applicationID, at))
		require.True(t, errors.Is(err, models.ErrIllegalTransition))
	})
	t.Run("already interviewing", func(t *testing.T) {
		f := getFixture(t, models.ApplicationStatusInterviewing)
		_, err := f.handler.Schedule(ctx, "employer", interviewData(f.applicationID, at))
		require.NoError(t, err)
	})
	t.Run("unknown application", func(t *testing.T) {
		f := getFixture(t, models.ApplicationStatusUnderReview)
		_, err := f.handler.Schedule(ctx, "employer", interviewData("missing", at))
		require.True(t, errors.Is(err, models.ErrNotFound))
	})
	t.Run("other employer", func(t *testing.T) {
		f := getFixture(t, models.ApplicationStatusUnderReview)
		_, err := f.handler.Schedule(ctx, "intruder", interviewData(f.applicationID, at))
		require.True(t, errors.Is(err, models.ErrForbidden))
	})
	t.Run("invalid data", func(t *testing.T) {
		f := getFixture(t, models.ApplicationStatusUnderReview)
		data := interviewData(f.applicationID, at)
		data.Type = "Phone"
		_, err := f.handler.Schedule(ctx, "employer", data)
		require.True(t, errors.Is(err, models.ErrValidation))
	})
	t.Run("transaction failure keeps status", func(t *testing.T) {
		f := getFixture(t, models.ApplicationStatusUnderReview)
		f.handler.transaction = func(fn func(tx *gorm.DB) error) error {
			return errors.New("db down")
		}
		_, err := f.handler.Schedule(ctx, "employer", interviewData(f.applicationID, at))
		require.Error(t, err)
		application, err := f.handler.applicationStore.GetByID(f.applicationID)
		require.NoError(t, err)
		require.Equal(t, models.ApplicationStatusUnderReview, application.Status)
		require.Empty(t, f.mailer.to)
	})
}

func TestUpcoming(t *testing.T) {
	ctx := context.Background()
	f := getFixture(t, models.ApplicationStatusUnderReview)
	late := time.Now().Add(48 * time.Hour)
	early := time.Now().Add(24 * time.Hour)
	_, err := f.handler.Schedule(ctx, "employer", interviewData(f.applicationID, late))
	require.NoError(t, err)
	_, err = f.handler.Schedule(ctx, "employer", interviewData(f.applicationID, early))
	require.NoError(t, err)

	list, err := f.handler.Upcoming("employer")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.True(t, list[0].DateTime.Before(list[1].DateTime))
	require.Equal(t, "Site Engineer", list[0].JobTitle)
	require.Equal(t, "Jane Doe", list[0].CandidateName)

	empty, err := f.handler.Upcoming("other-employer")
	require.NoError(t, err)
	require.Empty(t, empty)

	mine, err := f.handler.ListForCandidate("seeker")
	require.NoError(t, err)
	require.Len(t, mine, 2)
}

func TestCalendar(t *testing.T) {
	f := getFixture(t, models.ApplicationStatusUnderReview)
	view, err := f.handler.Schedule(context.Background(), "employer", interviewData(f.applicationID, time.Now()))
	require.NoError(t, err)

	for _, user := range []string{"seeker", "employer"} {
		fileName, body, err := f.handler.Calendar(user, view.ID)
		require.NoError(t, err)
		require.Equal(t, "interview-Jane_Doe.ics", fileName)
		require.Contains(t, string(body), "UID:"+view.ID+"@jobportal.com")
	}
	_, _, err = f.handler.Calendar("intruder", view.ID)
	require.True(t, errors.Is(err, models.ErrForbidden))
	_, _, err = f.handler.Calendar("seeker", "missing")
	require.True(t, errors.Is(err, models.ErrNotFound))
}

func TestJoinUpcoming(t *testing.T) {
	now := time.Now()
	list := []dbmodels.Interview{
		{BaseModel: dbmodels.BaseModel{ID: "i2"}, JobID: "j9", UserID: "u9", DateTime: now.Add(time.Hour)},
		{BaseModel: dbmodels.BaseModel{ID: "i1"}, JobID: "j1", UserID: "u1", DateTime: now},
	}
	result := JoinUpcoming(list,
		map[string]dbmodels.Job{"j1": {Title: "Nurse"}},
		map[string]dbmodels.Cv{"u1": {Name: "Jane Doe"}})
	require.Equal(t, "i1", result[0].ID)
	require.Equal(t, "Nurse", result[0].JobTitle)
	require.Equal(t, "Unknown Job", result[1].JobTitle)
	require.Equal(t, "Unknown Candidate", result[1].CandidateName)
}
