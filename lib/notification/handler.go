package notificationhandler

import (
	"time"

	"job-portal-backend/lib/notification/store"
	initchecker "job-portal-backend/lib/utils/init-checker"
	connectionhub "job-portal-backend/lib/ws/hub/connection-hub"
	"job-portal-backend/models"
	notificationapimodels "job-portal-backend/models/api/notification"
	dbmodels "job-portal-backend/models/db"
	wsmodels "job-portal-backend/models/ws"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// Send stores and pushes a notification; failures are only logged.
	Send(userID string, data models.NotificationData)
	Add(userID string, data models.NotificationData) (notificationapimodels.NotificationView, error)
	List(userID string) (notificationapimodels.NotificationList, error)
	MarkAllRead(userID string) error
}

var Instance Provider

func NewHandler() {
	instance := New(store.Default(), connectionhub.Instance)
	initchecker.CheckInit(
		"hub", connectionhub.Instance,
	)
	Instance = instance
}

// New builds the handler; hub may be nil when nothing is pushed live.
func New(store store.Provider, hub connectionhub.Provider) Provider {
	initchecker.CheckInit(
		"store", store,
	)
	return impl{
		store: store,
		hub:   hub,
	}
}

type impl struct {
	store store.Provider
	hub   connectionhub.Provider
}

func (i impl) Send(userID string, data models.NotificationData) {
	if _, err := i.Add(userID, data); err != nil {
		log.
			WithError(err).
			WithField("user_id", userID).
			WithField("code", data.Code).
			Error("failed to store notification")
	}
}

func (i impl) Add(userID string, data models.NotificationData) (notificationapimodels.NotificationView, error) {
	rec := dbmodels.Notification{
		BaseModel: dbmodels.BaseModel{
			CreatedAt: time.Now(),
		},
		UserID: userID,
		Code:   data.Code,
		Type:   data.Type,
		Msg:    data.Msg,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return notificationapimodels.NotificationView{}, err
	}
	rec.ID = id
	if i.hub != nil && i.hub.IsConnected(userID) {
		i.hub.SendMessage(wsmodels.NotificationMessage(rec))
	}
	return notificationapimodels.NotificationConvert(rec), nil
}

func (i impl) List(userID string) (notificationapimodels.NotificationList, error) {
	list, err := i.store.ListByUser(userID)
	if err != nil {
		return notificationapimodels.NotificationList{}, err
	}
	result := notificationapimodels.NotificationList{
		Items: make([]notificationapimodels.NotificationView, 0, len(list)),
	}
	for _, rec := range list {
		if !rec.Read {
			result.UnreadCount++
		}
		result.Items = append(result.Items, notificationapimodels.NotificationConvert(rec))
	}
	return result, nil
}

func (i impl) MarkAllRead(userID string) error {
	err := i.store.MarkAllRead(userID)
	if err != nil {
		return err
	}
	log.WithField("user_id", userID).Debug("notifications marked as read")
	return nil
}
