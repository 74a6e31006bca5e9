package store

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"job-portal-backend/db"
	"job-portal-backend/models"
	dbmodels "job-portal-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.JobAlert) (id string, err error)
	GetByID(userID, id string) (*dbmodels.JobAlert, error)
	FindByValue(userID string, alertType models.AlertType, value string) (*dbmodels.JobAlert, error)
	ListByUser(userID string) ([]dbmodels.JobAlert, error)
	List() ([]dbmodels.JobAlert, error)
	Delete(userID, id string) error
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

func (i impl) Create(rec dbmodels.JobAlert) (id string, err error) {
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

func (i impl) GetByID(userID, id string) (*dbmodels.JobAlert, error) {
	return i.first(i.db.
		Where("user_id = ?", userID).
		Where("id = ?", id))
}

func (i impl) FindByValue(userID string, alertType models.AlertType, value string) (*dbmodels.JobAlert, error) {
	return i.first(i.db.
		Where("user_id = ?", userID).
		Where("type = ?", alertType).
		Where("LOWER(value) = ?", strings.ToLower(value)))
}

func (i impl) first(tx *gorm.DB) (*dbmodels.JobAlert, error) {
	rec := dbmodels.JobAlert{}
	err := tx.First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListByUser(userID string) ([]dbmodels.JobAlert, error) {
	return i.find(i.db.Where("user_id = ?", userID))
}

func (i impl) List() ([]dbmodels.JobAlert, error) {
	return i.find(i.db)
}

func (i impl) find(tx *gorm.DB) (list []dbmodels.JobAlert, err error) {
	list = []dbmodels.JobAlert{}
	err = tx.
		Order("created_at, id").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(userID, id string) error {
	tx := i.db.
		Where("user_id = ?", userID).
		Where("id = ?", id).
		Delete(&dbmodels.JobAlert{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.Wrapf(models.ErrNotFound, "job alert %s", id)
	}
	return nil
}
