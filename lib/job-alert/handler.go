package jobalerthandler

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"job-portal-backend/lib/category"
	"job-portal-backend/lib/job-alert/store"
	notificationhandler "job-portal-backend/lib/notification"
	initchecker "job-portal-backend/lib/utils/init-checker"
	"job-portal-backend/lib/utils/lock"
	"job-portal-backend/models"
	alertapimodels "job-portal-backend/models/api/alert"
	dbmodels "job-portal-backend/models/db"
)

type Provider interface {
	Create(userID string, data alertapimodels.AlertData) (alertapimodels.CreateResult, error)
	Remove(userID, id string) error
	List(userID string) ([]alertapimodels.AlertView, error)
	// OnJobPosted matches the job against every stored alert and notifies
	// the owners after the configured delay.
	OnJobPosted(job dbmodels.Job)
}

var Instance Provider

const lockWait = 5 * time.Second

func NewHandler(ctx context.Context, notifyDelay time.Duration) {
	Instance = New(ctx, store.Default(), notificationhandler.Instance, notifyDelay)
}

func New(ctx context.Context, store store.Provider, notifier notificationhandler.Provider, notifyDelay time.Duration) Provider {
	instance := impl{
		ctx:         ctx,
		store:       store,
		notifier:    notifier,
		notifyDelay: notifyDelay,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"notifier", instance.notifier,
	)
	return instance
}

type impl struct {
	ctx         context.Context
	store       store.Provider
	notifier    notificationhandler.Provider
	notifyDelay time.Duration
}

func (i impl) getLogger(userID string) *log.Entry {
	return log.WithField("user_id", userID)
}

func (i impl) Create(userID string, data alertapimodels.AlertData) (result alertapimodels.CreateResult, err error) {
	// duplicate check and insert must not interleave for one owner
	err = lock.Run(i.ctx, LockKey(userID), lockWait, func() error {
		var createErr error
		result, createErr = i.create(userID, data)
		return createErr
	})
	if err != nil {
		return alertapimodels.CreateResult{}, err
	}
	return result, nil
}

func LockKey(userID string) string {
	return "alert:" + userID
}

func (i impl) create(userID string, data alertapimodels.AlertData) (alertapimodels.CreateResult, error) {
	if err := data.Validate(); err != nil {
		return alertapimodels.CreateResult{}, errors.Wrap(models.ErrValidation, err.Error())
	}
	if data.Type == models.AlertTypeCategory {
		if _, ok := category.Find(data.Value); !ok {
			return alertapimodels.CreateResult{}, errors.Wrapf(models.ErrValidation, "unknown category %q", data.Value)
		}
	}
	logger := i.getLogger(userID).
		WithField("alert_type", data.Type).
		WithField("alert_value", data.Value)

	exist, err := i.store.FindByValue(userID, data.Type, data.Value)
	if err != nil {
		return alertapimodels.CreateResult{}, errors.Wrap(err, "job alert lookup failed")
	}
	if exist != nil {
		i.notifier.Send(userID, models.GetNotifyAlertDuplicate(data.Value))
		logger.Info("job alert already exists")
		return alertapimodels.CreateResult{
			Alert:     alertapimodels.AlertConvert(*exist),
			Duplicate: true,
		}, nil
	}

	rec := dbmodels.JobAlert{
		UserID: userID,
		Type:   data.Type,
		Value:  data.Value,
	}
	rec.ID, err = i.store.Create(rec)
	if err != nil {
		return alertapimodels.CreateResult{}, errors.Wrap(err, "job alert create failed")
	}
	i.notifier.Send(userID, models.GetNotifyAlertCreated(data.Value))
	logger.WithField("alert_id", rec.ID).Info("job alert created")
	return alertapimodels.CreateResult{
		Alert: alertapimodels.AlertConvert(rec),
	}, nil
}

func (i impl) Remove(userID, id string) error {
	rec, err := i.store.GetByID(userID, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrapf(models.ErrNotFound, "job alert %s", id)
	}
	if err = i.store.Delete(userID, id); err != nil {
		return err
	}
	i.notifier.Send(userID, models.GetNotifyAlertRemoved(rec.Value))
	i.getLogger(userID).WithField("alert_id", id).Info("job alert removed")
	return nil
}

func (i impl) List(userID string) ([]alertapimodels.AlertView, error) {
	list, err := i.store.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	result := make([]alertapimodels.AlertView, 0, len(list))
	for _, rec := range list {
		result = append(result, alertapimodels.AlertConvert(rec))
	}
	return result, nil
}

func (i impl) OnJobPosted(job dbmodels.Job) {
	logger := log.WithField("job_id", job.ID)
	alerts, err := i.store.List()
	if err != nil {
		logger.WithError(err).Error("failed to load job alerts")
		return
	}
	matched := Match(job, alerts)
	if len(matched) == 0 {
		return
	}
	logger.WithField("matches", len(matched)).Info("job matches alerts")
	if i.notifyDelay <= 0 {
		i.emit(job, matched)
		return
	}
	go func() {
		timer := time.NewTimer(i.notifyDelay)
		defer timer.Stop()
		select {
		case <-i.ctx.Done():
			logger.Info("job alert notifications dropped on shutdown")
		case <-timer.C:
			i.emit(job, matched)
		}
	}()
}

func (i impl) emit(job dbmodels.Job, matched []dbmodels.JobAlert) {
	for _, alert := range matched {
		i.notifier.Send(alert.UserID, models.GetNotifyAlertMatched(job.Title, alert.Value))
	}
}
