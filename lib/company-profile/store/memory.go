package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"job-portal-backend/models"
	dbmodels "job-portal-backend/models/db"
)

func NewMemoryInstance() Provider {
	return &memoryImpl{
		items: make(map[string]dbmodels.CompanyProfile),
	}
}

// memoryImpl is keyed by owner user id.
type memoryImpl struct {
	mu    sync.RWMutex
	items map[string]dbmodels.CompanyProfile
}

func (m *memoryImpl) Create(rec dbmodels.CompanyProfile) (id string, err error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	now := time.Now()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exist := m.items[rec.UserID]; exist {
		return "", errors.Errorf("company profile for user %s already exists", rec.UserID)
	}
	m.items[rec.UserID] = rec
	return rec.ID, nil
}

func (m *memoryImpl) GetByUserID(userID string) (*dbmodels.CompanyProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.items[userID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *memoryImpl) Update(userID string, updMap map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.items[userID]
	if !ok {
		return errors.Wrapf(models.ErrNotFound, "company profile of %s", userID)
	}
	for field, value := range updMap {
		str, _ := value.(string)
		switch field {
		case "company_name":
			rec.CompanyName = str
		case "description":
			rec.Description = str
		case "culture":
			rec.Culture = str
		case "logo_url":
			rec.LogoUrl = str
		case "logo_key":
			rec.LogoKey = str
		default:
			return errors.Errorf("unknown company profile field %s", field)
		}
	}
	rec.UpdatedAt = time.Now()
	m.items[userID] = rec
	return nil
}
