package jobhandler

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	applicationstore "job-portal-backend/lib/application/store"
	companystore "job-portal-backend/lib/company-profile/store"
	jobalerthandler "job-portal-backend/lib/job-alert"
	"job-portal-backend/lib/job/store"
	notificationhandler "job-portal-backend/lib/notification"
	savedjobshandler "job-portal-backend/lib/saved-jobs"
	initchecker "job-portal-backend/lib/utils/init-checker"
	"job-portal-backend/models"
	jobapimodels "job-portal-backend/models/api/job"
	dbmodels "job-portal-backend/models/db"
)

type Provider interface {
	Create(employerID string, data jobapimodels.JobData) (jobapimodels.JobView, error)
	GetByID(userID, id string) (jobapimodels.JobView, error)
	Search(userID string, filter jobapimodels.JobFilter) ([]jobapimodels.JobView, error)
	ListByEmployer(employerID string) ([]jobapimodels.EmployerJobView, error)
	RecordView(id string) error
	RecordClick(id string) error
	CategoryCounts() ([]jobapimodels.CategoryCount, error)
	Companies() ([]jobapimodels.CompanyView, error)
	ToggleSaved(userID, jobID string) (saved bool, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:            store.Default(),
		applicationStore: applicationstore.Default(),
		companyStore:     companystore.Default(),
		alerts:           jobalerthandler.Instance,
		notifier:         notificationhandler.Instance,
		savedJobs:        savedjobshandler.Instance,
	}
	instance.checkInit()
	Instance = instance
}

type impl struct {
	store            store.Provider
	applicationStore applicationstore.Provider
	companyStore     companystore.Provider
	alerts           jobalerthandler.Provider
	notifier         notificationhandler.Provider
	savedJobs        savedjobshandler.Provider
}

func (i impl) checkInit() {
	initchecker.CheckInit(
		"store", i.store,
		"applicationStore", i.applicationStore,
		"companyStore", i.companyStore,
		"alerts", i.alerts,
		"notifier", i.notifier,
		"savedJobs", i.savedJobs,
	)
}

func (i impl) getLogger(userID, jobID string) *log.Entry {
	logger := log.WithField("user_id", userID)
	if jobID != "" {
		logger = logger.WithField("job_id", jobID)
	}
	return logger
}

func (i impl) Create(employerID string, data jobapimodels.JobData) (jobapimodels.JobView, error) {
	if err := data.Validate(); err != nil {
		return jobapimodels.JobView{}, errors.Wrap(models.ErrValidation, err.Error())
	}
	if data.Company == "" {
		profile, err := i.companyStore.GetByUserID(employerID)
		if err != nil {
			return jobapimodels.JobView{}, err
		}
		if profile != nil {
			data.Company = profile.CompanyName
		}
	}
	if data.Company == "" {
		return jobapimodels.JobView{}, errors.Wrap(models.ErrValidation, "company is required")
	}
	rec := dbmodels.Job{
		BaseModel: dbmodels.BaseModel{
			CreatedAt: time.Now(),
		},
		Title:       data.Title,
		Company:     data.Company,
		Location:    data.Location,
		Description: data.Description,
		EmployerID:  employerID,
	}
	var err error
	rec.ID, err = i.store.Create(rec)
	if err != nil {
		return jobapimodels.JobView{}, errors.Wrap(err, "job create failed")
	}
	i.getLogger(employerID, rec.ID).
		WithField("title", rec.Title).
		Info("job posted")

	i.notifier.Send(employerID, models.GetNotifyJobPosted(rec.Title))
	i.alerts.OnJobPosted(rec)
	return jobapimodels.JobConvert(rec), nil
}

func (i impl) GetByID(userID, id string) (jobapimodels.JobView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	if rec == nil {
		return jobapimodels.JobView{}, errors.Wrapf(models.ErrNotFound, "job %s", id)
	}
	applied, err := i.appliedJobIDs(userID)
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	view := jobapimodels.JobConvert(*rec)
	view.Saved = i.savedJobs.IDs(userID)[rec.ID]
	view.Applied = applied[rec.ID]
	return view, nil
}

func (i impl) Search(userID string, filter jobapimodels.JobFilter) ([]jobapimodels.JobView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, err
	}
	saved := i.savedJobs.IDs(userID)
	applied, err := i.appliedJobIDs(userID)
	if err != nil {
		return nil, err
	}
	filtered := NewestFirst(FilterJobs(list, filter, saved))
	result := make([]jobapimodels.JobView, 0, len(filtered))
	for _, rec := range filtered {
		view := jobapimodels.JobConvert(rec)
		view.Saved = saved[rec.ID]
		view.Applied = applied[rec.ID]
		result = append(result, view)
	}
	return result, nil
}

func (i impl) ListByEmployer(employerID string) ([]jobapimodels.EmployerJobView, error) {
	list, err := i.store.ListByEmployer(employerID)
	if err != nil {
		return nil, err
	}
	list = NewestFirst(list)
	result := make([]jobapimodels.EmployerJobView, 0, len(list))
	for _, rec := range list {
		applications, err := i.applicationStore.ListByJob(rec.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, jobapimodels.EmployerJobView{
			JobView:        jobapimodels.JobConvert(rec),
			ApplicantCount: len(applications),
		})
	}
	return result, nil
}

func (i impl) RecordView(id string) error {
	return i.store.IncrementCounters(id, 1, 0)
}

func (i impl) RecordClick(id string) error {
	return i.store.IncrementCounters(id, 0, 1)
}

func (i impl) CategoryCounts() ([]jobapimodels.CategoryCount, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, err
	}
	return CountByCategory(list), nil
}

func (i impl) Companies() ([]jobapimodels.CompanyView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, err
	}
	return AggregateCompanies(list), nil
}

func (i impl) ToggleSaved(userID, jobID string) (saved bool, err error) {
	rec, err := i.store.GetByID(jobID)
	if err != nil {
		return false, err
	}
	if rec == nil {
		return false, errors.Wrapf(models.ErrNotFound, "job %s", jobID)
	}
	return i.savedJobs.Toggle(userID, jobID), nil
}

func (i impl) appliedJobIDs(userID string) (map[string]bool, error) {
	result := map[string]bool{}
	if userID == "" {
		return result, nil
	}
	list, err := i.applicationStore.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	for _, rec := range list {
		result[rec.JobID] = true
	}
	return result, nil
}
