package interviewhandler

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"job-portal-backend/db"
	applicationhandler "job-portal-backend/lib/application"
	applicationstore "job-portal-backend/lib/application/store"
	"job-portal-backend/lib/calendar"
	cvstore "job-portal-backend/lib/cv/store"
	"job-portal-backend/lib/interview/store"
	jobstore "job-portal-backend/lib/job/store"
	"job-portal-backend/lib/mail"
	notificationhandler "job-portal-backend/lib/notification"
	initchecker "job-portal-backend/lib/utils/init-checker"
	"job-portal-backend/lib/utils/lock"
	"job-portal-backend/models"
	interviewapimodels "job-portal-backend/models/api/interview"
	dbmodels "job-portal-backend/models/db"
)

const (
	lockWait           = 5 * time.Second
	notificationLayout = "Jan 2, 2006 3:04 PM"
)

type Provider interface {
	Schedule(ctx context.Context, employerID string, data interviewapimodels.InterviewData) (interviewapimodels.InterviewView, error)
	Upcoming(employerID string) ([]interviewapimodels.UpcomingView, error)
	ListForCandidate(userID string) ([]interviewapimodels.UpcomingView, error)
	Calendar(userID, id string) (fileName string, body []byte, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:            store.Default(),
		applicationStore: applicationstore.Default(),
		jobStore:         jobstore.Default(),
		cvStore:          cvstore.Default(),
		notifier:         notificationhandler.Instance,
		mailer:           mail.Instance,
		transaction:      db.Transaction,
	}
	instance.checkInit()
	Instance = instance
}

type impl struct {
	store            store.Provider
	applicationStore applicationstore.Provider
	jobStore         jobstore.Provider
	cvStore          cvstore.Provider
	notifier         notificationhandler.Provider
	mailer           mail.Provider
	transaction      func(fn func(tx *gorm.DB) error) error
}

func (i impl) checkInit() {
	initchecker.CheckInit(
		"store", i.store,
		"applicationStore", i.applicationStore,
		"jobStore", i.jobStore,
		"cvStore", i.cvStore,
		"notifier", i.notifier,
		"mailer", i.mailer,
	)
}

func (i impl) getLogger(userID, applicationID string) *log.Entry {
	return log.
		WithField("user_id", userID).
		WithField("application_id", applicationID)
}

func (i impl) Schedule(ctx context.Context, employerID string, data interviewapimodels.InterviewData) (interviewapimodels.InterviewView, error) {
	if err := data.Validate(); err != nil {
		return interviewapimodels.InterviewView{}, errors.Wrap(models.ErrValidation, err.Error())
	}
	var (
		rec dbmodels.Interview
		job *dbmodels.Job
	)
	err := lock.Run(ctx, applicationhandler.LockKey(data.ApplicationID), lockWait, func() error {
		application, err := i.applicationStore.GetByID(data.ApplicationID)
		if err != nil {
			return err
		}
		if application == nil {
			return errors.Wrapf(models.ErrNotFound, "application %s", data.ApplicationID)
		}
		job, err = i.jobStore.GetByID(application.JobID)
		if err != nil {
			return err
		}
		if job == nil {
			return errors.Wrapf(models.ErrNotFound, "job %s", application.JobID)
		}
		if job.EmployerID != employerID {
			return errors.Wrapf(models.ErrForbidden, "application %s", application.ID)
		}
		if err = application.Status.CheckTransition(models.ApplicationStatusInterviewing); err != nil {
			return err
		}
		rec = dbmodels.Interview{
			BaseModel: dbmodels.BaseModel{
				CreatedAt: time.Now(),
			},
			ApplicationID:  application.ID,
			JobID:          application.JobID,
			UserID:         application.UserID,
			DateTime:       data.DateTime,
			Type:           data.Type,
			LocationOrLink: data.LocationOrLink,
			Notes:          data.Notes,
		}
		return i.transaction(func(tx *gorm.DB) error {
			rec.ID, err = i.store.WithTx(tx).Create(rec)
			if err != nil {
				return errors.Wrap(err, "interview create failed")
			}
			if application.Status == models.ApplicationStatusInterviewing {
				return nil
			}
			err = i.applicationStore.WithTx(tx).UpdateStatus(application.ID, models.ApplicationStatusInterviewing)
			return errors.Wrap(err, "application status update failed")
		})
	})
	if err != nil {
		return interviewapimodels.InterviewView{}, err
	}
	i.getLogger(employerID, rec.ApplicationID).
		WithField("interview_id", rec.ID).
		Info("interview scheduled")

	candidateName := unknownCandidate
	cv, err := i.cvStore.GetByUserID(rec.UserID)
	if err != nil {
		i.getLogger(employerID, rec.ApplicationID).WithError(err).Warn("candidate profile not loaded")
	}
	if cv != nil {
		candidateName = cv.Name
	}
	i.notifier.Send(rec.UserID, models.GetNotifyInterviewScheduled(job.Title, rec.DateTime.Format(notificationLayout), rec.Type))
	i.notifier.Send(employerID, models.GetNotifyInterviewCreated(candidateName))
	if cv != nil && cv.ContactEmail != "" {
		i.sendInvitation(rec, *job, *cv)
	}
	return interviewapimodels.InterviewConvert(rec), nil
}

func (i impl) Upcoming(employerID string) ([]interviewapimodels.UpcomingView, error) {
	jobs, err := i.jobStore.ListByEmployer(employerID)
	if err != nil {
		return nil, err
	}
	jobByID := make(map[string]dbmodels.Job, len(jobs))
	jobIDs := make([]string, 0, len(jobs))
	for _, job := range jobs {
		jobByID[job.ID] = job
		jobIDs = append(jobIDs, job.ID)
	}
	list, err := i.store.ListByJobs(jobIDs)
	if err != nil {
		return nil, err
	}
	cvByUser, err := i.cvsByUser(list)
	if err != nil {
		return nil, err
	}
	return JoinUpcoming(list, jobByID, cvByUser), nil
}

func (i impl) ListForCandidate(userID string) ([]interviewapimodels.UpcomingView, error) {
	list, err := i.store.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	jobByID := map[string]dbmodels.Job{}
	for _, rec := range list {
		job, err := i.jobStore.GetByID(rec.JobID)
		if err != nil {
			return nil, err
		}
		if job != nil {
			jobByID[job.ID] = *job
		}
	}
	cvByUser, err := i.cvsByUser(list)
	if err != nil {
		return nil, err
	}
	return JoinUpcoming(list, jobByID, cvByUser), nil
}

// Calendar renders the interview invitation for its candidate or the job owner.
func (i impl) Calendar(userID, id string) (fileName string, body []byte, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", nil, err
	}
	if rec == nil {
		return "", nil, errors.Wrapf(models.ErrNotFound, "interview %s", id)
	}
	job, err := i.jobStore.GetByID(rec.JobID)
	if err != nil {
		return "", nil, err
	}
	if job == nil {
		job = &dbmodels.Job{Title: unknownJob}
	}
	if rec.UserID != userID && job.EmployerID != userID {
		return "", nil, errors.Wrapf(models.ErrForbidden, "interview %s", id)
	}
	cv, err := i.cvStore.GetByUserID(rec.UserID)
	if err != nil {
		return "", nil, err
	}
	if cv == nil {
		cv = &dbmodels.Cv{Name: unknownCandidate}
	}
	event := interviewEvent(*rec, *job, *cv)
	return calendar.FileName(cv.Name), []byte(calendar.BuildIcs(event, time.Now())), nil
}

func (i impl) sendInvitation(rec dbmodels.Interview, job dbmodels.Job, cv dbmodels.Cv) {
	ics := calendar.BuildIcs(interviewEvent(rec, job, cv), time.Now())
	body := fmt.Sprintf("Hello %s,\n\nYou are invited to a %s interview for \"%s\" at %s on %s.\nLocation: %s",
		cv.Name, rec.Type, job.Title, job.Company, rec.DateTime.Format(notificationLayout), rec.LocationOrLink)
	err := i.mailer.Send(cv.ContactEmail, "Interview invitation", body, mail.Attachment{
		FileName:    calendar.FileName(cv.Name),
		ContentType: calendar.ContentType,
		Content:     []byte(ics),
	})
	if err != nil {
		i.getLogger(rec.UserID, rec.ApplicationID).WithError(err).Warn("interview invitation not sent")
	}
}

func (i impl) cvsByUser(list []dbmodels.Interview) (map[string]dbmodels.Cv, error) {
	result := map[string]dbmodels.Cv{}
	for _, rec := range list {
		if _, ok := result[rec.UserID]; ok {
			continue
		}
		cv, err := i.cvStore.GetByUserID(rec.UserID)
		if err != nil {
			return nil, err
		}
		if cv != nil {
			result[rec.UserID] = *cv
		}
	}
	return result, nil
}

func interviewEvent(rec dbmodels.Interview, job dbmodels.Job, cv dbmodels.Cv) calendar.InterviewEvent {
	return calendar.InterviewEvent{
		InterviewID:    rec.ID,
		CandidateName:  cv.Name,
		JobTitle:       job.Title,
		Company:        job.Company,
		Start:          rec.DateTime,
		LocationOrLink: rec.LocationOrLink,
		Notes:          rec.Notes,
	}
}
