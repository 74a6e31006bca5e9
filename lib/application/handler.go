package applicationhandler

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"job-portal-backend/lib/application/store"
	cvstore "job-portal-backend/lib/cv/store"
	xlsexport "job-portal-backend/lib/export/xls"
	jobstore "job-portal-backend/lib/job/store"
	notificationhandler "job-portal-backend/lib/notification"
	"job-portal-backend/lib/smtp"
	initchecker "job-portal-backend/lib/utils/init-checker"
	"job-portal-backend/lib/utils/lock"
	"job-portal-backend/models"
	applicationapimodels "job-portal-backend/models/api/application"
	dbmodels "job-portal-backend/models/db"
)

const lockWait = 5 * time.Second

type Provider interface {
	Create(userID string, data applicationapimodels.ApplyData) (applicationapimodels.ApplicationView, error)
	UpdateStatus(ctx context.Context, employerID, id string, status models.ApplicationStatus) (applicationapimodels.ApplicationView, error)
	ListByUser(userID string) ([]applicationapimodels.StatusColumn, error)
	Applicants(employerID, jobID, status string) (applicationapimodels.ApplicantList, error)
	ExportApplicants(employerID, jobID, status string) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:    store.Default(),
		jobStore: jobstore.Default(),
		cvStore:  cvstore.Default(),
		notifier: notificationhandler.Instance,
		mailer:   smtp.Instance,
		exporter: xlsexport.Instance,
	}
	instance.checkInit()
	Instance = instance
}

type impl struct {
	store    store.Provider
	jobStore jobstore.Provider
	cvStore  cvstore.Provider
	notifier notificationhandler.Provider
	mailer   smtp.Provider
	exporter xlsexport.Provider
}

func (i impl) checkInit() {
	initchecker.CheckInit(
		"store", i.store,
		"jobStore", i.jobStore,
		"cvStore", i.cvStore,
		"notifier", i.notifier,
		"mailer", i.mailer,
		"exporter", i.exporter,
	)
}

func (i impl) getLogger(userID, applicationID string) *log.Entry {
	logger := log.WithField("user_id", userID)
	if applicationID != "" {
		logger = logger.WithField("application_id", applicationID)
	}
	return logger
}

func LockKey(applicationID string) string {
	return "application:" + applicationID
}

func (i impl) Create(userID string, data applicationapimodels.ApplyData) (applicationapimodels.ApplicationView, error) {
	if err := data.Validate(); err != nil {
		return applicationapimodels.ApplicationView{}, errors.Wrap(models.ErrValidation, err.Error())
	}
	job, err := i.getJob(data.JobID)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	rec := dbmodels.Application{
		BaseModel: dbmodels.BaseModel{
			CreatedAt: time.Now(),
		},
		JobID:       job.ID,
		UserID:      userID,
		Date:        time.Now(),
		Status:      models.ApplicationStatusApplied,
		CoverLetter: strings.TrimSpace(data.CoverLetter),
		Attachments: dbmodels.Attachments{},
	}
	for _, attachment := range data.Attachments {
		rec.Attachments = append(rec.Attachments, dbmodels.Attachment{
			Name: strings.TrimSpace(attachment.Name),
			Type: attachment.Type,
			Key:  attachment.Key,
		})
	}
	rec.ID, err = i.store.Create(rec)
	if err != nil {
		return applicationapimodels.ApplicationView{}, errors.Wrap(err, "application create failed")
	}
	i.getLogger(userID, rec.ID).
		WithField("job_id", job.ID).
		Info("application submitted")

	i.notifier.Send(userID, models.GetNotifyApplicationSubmitted(job.Title))
	view := applicationapimodels.ApplicationConvert(rec)
	view.JobTitle = job.Title
	view.Company = job.Company
	return view, nil
}

func (i impl) UpdateStatus(ctx context.Context, employerID, id string, status models.ApplicationStatus) (applicationapimodels.ApplicationView, error) {
	var (
		rec     *dbmodels.Application
		job     *dbmodels.Job
		changed bool
	)
	err := lock.Run(ctx, LockKey(id), lockWait, func() error {
		var err error
		rec, job, err = i.getOwned(employerID, id)
		if err != nil {
			return err
		}
		if err = rec.Status.CheckTransition(status); err != nil {
			return err
		}
		if rec.Status == status {
			return nil
		}
		if err = i.store.UpdateStatus(id, status); err != nil {
			return errors.Wrap(err, "application status update failed")
		}
		rec.Status = status
		changed = true
		return nil
	})
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	if changed {
		i.getLogger(employerID, id).
			WithField("status", status).
			Info("application status updated")
		i.notifier.Send(rec.UserID, models.GetNotifyApplicationStatus(job.Title, status))
		i.notifier.Send(employerID, models.GetNotifyApplicationUpdated(status))
		i.mailStatus(*rec, *job)
	}
	view := applicationapimodels.ApplicationConvert(*rec)
	view.JobTitle = job.Title
	view.Company = job.Company
	return view, nil
}

func (i impl) ListByUser(userID string) ([]applicationapimodels.StatusColumn, error) {
	list, err := i.store.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	jobs := map[string]dbmodels.Job{}
	for _, rec := range list {
		if _, ok := jobs[rec.JobID]; ok {
			continue
		}
		job, err := i.jobStore.GetByID(rec.JobID)
		if err != nil {
			return nil, err
		}
		if job != nil {
			jobs[job.ID] = *job
		}
	}
	return GroupByStatus(list, jobs), nil
}

func (i impl) Applicants(employerID, jobID, status string) (applicationapimodels.ApplicantList, error) {
	if _, err := i.getEmployerJob(employerID, jobID); err != nil {
		return applicationapimodels.ApplicantList{}, err
	}
	return i.applicants(jobID, status)
}

func (i impl) ExportApplicants(employerID, jobID, status string) (*bytes.Buffer, error) {
	job, err := i.getEmployerJob(employerID, jobID)
	if err != nil {
		return nil, err
	}
	list, err := i.applicants(jobID, status)
	if err != nil {
		return nil, err
	}
	return i.exporter.ExportApplicantList(job.Title, list.Applicants)
}

func (i impl) applicants(jobID, status string) (applicationapimodels.ApplicantList, error) {
	if status != "" && status != models.ApplicationStatusAll && !models.ApplicationStatus(status).IsValid() {
		return applicationapimodels.ApplicantList{}, errors.Wrapf(models.ErrValidation, "unknown application status %q", status)
	}
	list, err := i.store.ListByJob(jobID)
	if err != nil {
		return applicationapimodels.ApplicantList{}, err
	}
	cvByUser, err := i.cvsByUser(list)
	if err != nil {
		return applicationapimodels.ApplicantList{}, err
	}
	return applicationapimodels.ApplicantList{
		Applicants: ApplicantsForJob(jobID, status, list, cvByUser),
		Counts:     CountByStatus(list),
	}, nil
}

func (i impl) cvsByUser(list []dbmodels.Application) (map[string]dbmodels.Cv, error) {
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

func (i impl) getJob(jobID string) (*dbmodels.Job, error) {
	job, err := i.jobStore.GetByID(jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, errors.Wrapf(models.ErrNotFound, "job %s", jobID)
	}
	return job, nil
}

func (i impl) getEmployerJob(employerID, jobID string) (*dbmodels.Job, error) {
	job, err := i.getJob(jobID)
	if err != nil {
		return nil, err
	}
	if job.EmployerID != employerID {
		return nil, errors.Wrapf(models.ErrForbidden, "job %s", jobID)
	}
	return job, nil
}

func (i impl) getOwned(employerID, id string) (*dbmodels.Application, *dbmodels.Job, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, errors.Wrapf(models.ErrNotFound, "application %s", id)
	}
	job, err := i.getEmployerJob(employerID, rec.JobID)
	if err != nil {
		return nil, nil, err
	}
	return rec, job, nil
}

func (i impl) mailStatus(rec dbmodels.Application, job dbmodels.Job) {
	if !i.mailer.IsConfigured() {
		return
	}
	cv, err := i.cvStore.GetByUserID(rec.UserID)
	if err != nil || cv == nil || cv.ContactEmail == "" {
		return
	}
	message := fmt.Sprintf("Hello %s,\n\nYour application for \"%s\" at %s is now %s.",
		cv.Name, job.Title, job.Company, rec.Status)
	if err = i.mailer.SendEMail(cv.ContactEmail, "Application status update", message); err != nil {
		i.getLogger(rec.UserID, rec.ID).WithError(err).Warn("status email not sent")
	}
}
