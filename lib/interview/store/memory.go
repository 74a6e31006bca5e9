package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "job-portal-backend/models/db"
)

func NewMemoryInstance() Provider {
	return &memoryImpl{
		items: make(map[string]dbmodels.Interview),
	}
}

type memoryImpl struct {
	mu    sync.RWMutex
	items map[string]dbmodels.Interview
	order []string
}

func (m *memoryImpl) WithTx(_ *gorm.DB) Provider {
	return m
}

func (m *memoryImpl) Create(rec dbmodels.Interview) (id string, err error) {
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
		return "", errors.Errorf("interview %s already exists", rec.ID)
	}
	m.items[rec.ID] = rec
	m.order = append(m.order, rec.ID)
	return rec.ID, nil
}

func (m *memoryImpl) GetByID(id string) (*dbmodels.Interview, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *memoryImpl) ListByApplication(applicationID string) ([]dbmodels.Interview, error) {
	return m.filter(func(rec dbmodels.Interview) bool { return rec.ApplicationID == applicationID }), nil
}

func (m *memoryImpl) ListByJobs(jobIDs []string) ([]dbmodels.Interview, error) {
	jobSet := make(map[string]bool, len(jobIDs))
	for _, id := range jobIDs {
		jobSet[id] = true
	}
	return m.filter(func(rec dbmodels.Interview) bool { return jobSet[rec.JobID] }), nil
}

func (m *memoryImpl) ListByUser(userID string) ([]dbmodels.Interview, error) {
	return m.filter(func(rec dbmodels.Interview) bool { return rec.UserID == userID }), nil
}

func (m *memoryImpl) filter(keep func(rec dbmodels.Interview) bool) []dbmodels.Interview {
	m.mu.RLock()
	result := make([]dbmodels.Interview, 0, len(m.order))
	for _, id := range m.order {
		if rec := m.items[id]; keep(rec) {
			result = append(result, rec)
		}
	}
	m.mu.RUnlock()

	sort.SliceStable(result, func(a, b int) bool {
		return result[a].DateTime.Before(result[b].DateTime)
	})
	return result
}
