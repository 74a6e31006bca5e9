package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"job-portal-backend/models"
	dbmodels "job-portal-backend/models/db"
)

func NewMemoryInstance() Provider {
	return &memoryImpl{
		items: make(map[string]dbmodels.JobAlert),
	}
}

type memoryImpl struct {
	mu    sync.RWMutex
	items map[string]dbmodels.JobAlert
	order []string
}

func (m *memoryImpl) Create(rec dbmodels.JobAlert) (id string, err error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	now := time.Now()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existID := range m.order {
		exist := m.items[existID]
		if exist.UserID == rec.UserID && exist.Type == rec.Type && strings.EqualFold(exist.Value, rec.Value) {
			return "", errors.Errorf("job alert %q already exists", rec.Value)
		}
	}
	m.items[rec.ID] = rec
	m.order = append(m.order, rec.ID)
	return rec.ID, nil
}

func (m *memoryImpl) GetByID(userID, id string) (*dbmodels.JobAlert, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.items[id]
	if !ok || rec.UserID != userID {
		return nil, nil
	}
	return &rec, nil
}

func (m *memoryImpl) FindByValue(userID string, alertType models.AlertType, value string) (*dbmodels.JobAlert, error) {
	list := m.filter(func(rec dbmodels.JobAlert) bool {
		return rec.UserID == userID && rec.Type == alertType && strings.EqualFold(rec.Value, value)
	})
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

func (m *memoryImpl) ListByUser(userID string) ([]dbmodels.JobAlert, error) {
	return m.filter(func(rec dbmodels.JobAlert) bool { return rec.UserID == userID }), nil
}

func (m *memoryImpl) List() ([]dbmodels.JobAlert, error) {
	return m.filter(func(dbmodels.JobAlert) bool { return true }), nil
}

func (m *memoryImpl) Delete(userID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.items[id]
	if !ok || rec.UserID != userID {
		return errors.Wrapf(models.ErrNotFound, "job alert %s", id)
	}
	delete(m.items, id)
	for k, existID := range m.order {
		if existID == id {
			m.order = append(m.order[:k], m.order[k+1:]...)
			break
		}
	}
	return nil
}

func (m *memoryImpl) filter(keep func(rec dbmodels.JobAlert) bool) []dbmodels.JobAlert {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]dbmodels.JobAlert, 0, len(m.order))
	for _, id := range m.order {
		if rec := m.items[id]; keep(rec) {
			result = append(result, rec)
		}
	}
	return result
}
