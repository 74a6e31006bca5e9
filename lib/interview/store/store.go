package store

import (
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"job-portal-backend/db"
	dbmodels "job-portal-backend/models/db"
)

// Provider lists interviews ascending by date time.
type Provider interface {
	Create(rec dbmodels.Interview) (id string, err error)
	GetByID(id string) (*dbmodels.Interview, error)
	ListByApplication(applicationID string) ([]dbmodels.Interview, error)
	ListByJobs(jobIDs []string) ([]dbmodels.Interview, error)
	ListByUser(userID string) ([]dbmodels.Interview, error)
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

func (i impl) Create(rec dbmodels.Interview) (id string, err error) {
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

func (i impl) GetByID(id string) (*dbmodels.Interview, error) {
	rec := dbmodels.Interview{}
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

func (i impl) ListByApplication(applicationID string) ([]dbmodels.Interview, error) {
	return i.find(i.db.Where("application_id = ?", applicationID))
}

func (i impl) ListByJobs(jobIDs []string) ([]dbmodels.Interview, error) {
	if len(jobIDs) == 0 {
		return []dbmodels.Interview{}, nil
	}
	return i.find(i.db.Where("job_id in (?)", jobIDs))
}

func (i impl) ListByUser(userID string) ([]dbmodels.Interview, error) {
	return i.find(i.db.Where("user_id = ?", userID))
}

func (i impl) find(tx *gorm.DB) (list []dbmodels.Interview, err error) {
	list = []dbmodels.Interview{}
	err = tx.
		Order("date_time, created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
