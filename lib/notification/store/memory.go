package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	dbmodels "job-portal-backend/models/db"
)

func NewMemoryInstance() Provider {
	return &memoryImpl{
		byUser: make(map[string][]dbmodels.Notification),
	}
}

// memoryImpl keeps every user's notifications newest first.
type memoryImpl struct {
	mu     sync.RWMutex
	byUser map[string][]dbmodels.Notification
}

func (m *memoryImpl) Create(rec dbmodels.Notification) (id string, err error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	now := time.Now()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	m.mu.Lock()
	defer m.mu.Unlock()
	m.byUser[rec.UserID] = append([]dbmodels.Notification{rec}, m.byUser[rec.UserID]...)
	return rec.ID, nil
}

func (m *memoryImpl) ListByUser(userID string) ([]dbmodels.Notification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := m.byUser[userID]
	result := make([]dbmodels.Notification, len(list))
	copy(result, list)
	return result, nil
}

func (m *memoryImpl) ListUnread(userID string) ([]dbmodels.Notification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := []dbmodels.Notification{}
	for _, rec := range m.byUser[userID] {
		if !rec.Read {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (m *memoryImpl) MarkAllRead(userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.byUser[userID]
	for k := range list {
		list[k].Read = true
	}
	return nil
}
