package store

import (
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"job-portal-backend/db"
	"job-portal-backend/models"
	dbmodels "job-portal-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.CompanyProfile) (id string, err error)
	GetByUserID(userID string) (*dbmodels.CompanyProfile, error)
	Update(userID string, updMap map[string]interface{}) error
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

func (i impl) Create(rec dbmodels.CompanyProfile) (id string, err error) {
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

func (i impl) GetByUserID(userID string) (*dbmodels.CompanyProfile, error) {
	rec := dbmodels.CompanyProfile{}
	err := i.db.
		Where("user_id = ?", userID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(userID string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.CompanyProfile{}).
		Where("user_id = ?", userID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.Wrapf(models.ErrNotFound, "company profile of %s", userID)
	}
	return nil
}
