package store

import (
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"job-portal-backend/db"
	dbmodels "job-portal-backend/models/db"
)

// Provider lists notifications newest first.
type Provider interface {
	Create(rec dbmodels.Notification) (id string, err error)
	ListByUser(userID string) ([]dbmodels.Notification, error)
	ListUnread(userID string) ([]dbmodels.Notification, error)
	MarkAllRead(userID string) error
}

var (
	memoryOnce     sync.Once
	memoryInstance Provider
)

func Default() Provider {
	if db.DB != nil {
		return NewInstance(db.DB)
	}
	memoryOnce.Do(func() {
		memoryInstance = NewMemoryInstance()
	})
	return memoryInstance
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notification) (id string, err error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByUser(userID string) ([]dbmodels.Notification, error) {
	return i.find(i.db.Where("user_id = ?", userID))
}

func (i impl) ListUnread(userID string) ([]dbmodels.Notification, error) {
	return i.find(i.db.Where("user_id = ?", userID).Where("read = ?", false))
}

func (i impl) find(tx *gorm.DB) (list []dbmodels.Notification, err error) {
	list = []dbmodels.Notification{}
	err = tx.
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) MarkAllRead(userID string) error {
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Where("read = ?", false).
		Update("read", true).
		Error
}
