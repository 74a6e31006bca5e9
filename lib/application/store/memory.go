package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"job-portal-backend/models"
	dbmodels "job-portal-backend/models/db"
)

func NewMemoryInstance() Provider {
	return &memoryImpl{
		items: make(map[string]dbmodels.Application),
	}
}

type memoryImpl struct {
	mu    sync.RWMutex
	items map[string]dbmodels.Application
	order []string
}

func (m *memoryImpl) WithTx(_ *gorm.DB) Provider {
	return m
}

func (m *memoryImpl) Create(rec dbmodels.Application) (id string, err error) {
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
	if _, exist := m.items[rec.ID]; exist {
		return "", errors.Errorf("application %s already exists", rec.ID)
	}
	m.items[rec.ID] = rec
	m.order = append(m.order, rec.ID)
	return rec.ID, nil
}

func (m *memoryImpl) GetByID(id string) (*dbmodels.Application, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *memoryImpl) List() ([]dbmodels.Application, error) {
	return m.filter(func(dbmodels.Application) bool { return true }), nil
}

func (m *memoryImpl) ListByJob(jobID string) ([]dbmodels.Application, error) {
	return m.filter(func(rec dbmodels.Application) bool { return rec.JobID == jobID }), nil
}

func (m *memoryImpl) ListByUser(userID string) ([]dbmodels.Application, error) {
	return m.filter(func(rec dbmodels.Application) bool { return rec.UserID == userID }), nil
}

func (m *memoryImpl) UpdateStatus(id string, status models.ApplicationStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.items[id]
	if !ok {
		return errors.Wrapf(models.ErrNotFound, "application %s", id)
	}
	rec.Status = status
	rec.UpdatedAt = time.Now()
	m.items[id] = rec
	return nil
}

func (m *memoryImpl) filter(keep func(rec dbmodels.Application) bool) []dbmodels.Application {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]dbmodels.Application, 0, len(m.order))
	for _, id := range m.order {
		if rec := m.items[id]; keep(rec) {
			result = append(result, rec)
		}
	}
	return result
}
