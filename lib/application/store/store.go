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
	Create(rec dbmodels.Application) (id string, err error)
	GetByID(id string) (*dbmodels.Application, error)
	List() ([]dbmodels.Application, error)
	ListByJob(jobID string) ([]dbmodels.Application, error)
	ListByUser(userID string) ([]dbmodels.Application, error)
	UpdateStatus(id string, status models.ApplicationStatus) error
	WithTx(tx *gorm.DB) Provider
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

func (i impl) WithTx(tx *gorm.DB) Provider {
	if tx == nil {
		return i
	}
	return NewInstance(tx)
}

func (i impl) Create(rec dbmodels.Application) (id string, err error) {
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

func (i impl) GetByID(id string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) List() ([]dbmodels.Application, error) {
	return i.find(i.db)
}

func (i impl) ListByJob(jobID string) ([]dbmodels.Application, error) {
	return i.find(i.db.Where("job_id = ?", jobID))
}

func (i impl) ListByUser(userID string) ([]dbmodels.Application, error) {
	return i.find(i.db.Where("user_id = ?", userID))
}

func (i impl) find(tx *gorm.DB) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	err = tx.
		Order("created_at, id").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) UpdateStatus(id string, status models.ApplicationStatus) error {
	tx := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.Wrapf(models.ErrNotFound, "application %s", id)
	}
	return nil
}
