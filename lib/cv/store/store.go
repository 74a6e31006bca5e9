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
	Create(rec dbmodels.Cv) (id string, err error)
	GetByID(id string) (*dbmodels.Cv, error)
	GetByUserID(userID string) (*dbmodels.Cv, error)
	List() ([]dbmodels.Cv, error)
	Save(rec dbmodels.Cv) error
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

func (i impl) Create(rec dbmodels.Cv) (id string, err error) {
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

func (i impl) GetByID(id string) (*dbmodels.Cv, error) {
	return i.first("id = ?", id)
}

func (i impl) GetByUserID(userID string) (*dbmodels.Cv, error) {
	return i.first("user_id = ?", userID)
}

func (i impl) first(query string, arg string) (*dbmodels.Cv, error) {
	rec := dbmodels.Cv{}
	err := i.db.
		Where(query, arg).
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

func (i impl) List() (list []dbmodels.Cv, err error) {
	list = []dbmodels.Cv{}
	err = i.db.
		Order("created_at, id").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Save(rec dbmodels.Cv) error {
	tx := i.db.
		Model(&dbmodels.Cv{}).
		Where("id = ?", rec.ID).
		Select("name", "title", "experience", "skills", "avatar_url", "cv_file_name", "cv_file_key", "contact_email", "phone").
		Updates(&rec)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.Wrapf(models.ErrNotFound, "cv %s", rec.ID)
	}
	return nil
}
