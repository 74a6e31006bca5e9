package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"job-portal-backend/models"
	dbmodels "job-portal-backend/models/db"
)

// NewMemoryInstance keeps jobs in process, listed by creation time like the gorm store.
func NewMemoryInstance() Provider {
	return &memoryImpl{
		items: make(map[string]dbmodels.Job),
	}
}

type memoryImpl struct {
	mu    sync.RWMutex
	items map[string]dbmodels.Job
	order []string
}

func (m *memoryImpl) WithTx(_ *gorm.DB) Provider {
	return m
}

func (m *memoryImpl) Create(rec dbmodels.Job) (id string, err error) {
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
		return "", errors.Errorf("job %s already exists", rec.ID)
	}
	m.items[rec.ID] = rec
	m.order = append(m.order, rec.ID)
	return rec.ID, nil
}

func (m *memoryImpl) GetByID(id string) (*dbmodels.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *memoryImpl) List() ([]dbmodels.Job, error) {
	return m.filter(func(dbmodels.Job) bool { return true }), nil
}

func (m *memoryImpl) ListByEmployer(employerID string) ([]dbmodels.Job, error) {
	return m.filter(func(rec dbmodels.Job) bool { return rec.EmployerID == employerID }), nil
}

func (m *memoryImpl) IncrementCounters(id string, views, clicks int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.items[id]
	if !ok {
		return errors.Wrapf(models.ErrNotFound, "job %s", id)
	}
	if views > 0 {
		rec.Views += views
	}
	if clicks > 0 {
		rec.Clicks += clicks
	}
	rec.UpdatedAt = time.Now()
	m.items[id] = rec
	return nil
}

func (m *memoryImpl) filter(keep func(rec dbmodels.Job) bool) []dbmodels.Job {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]dbmodels.Job, 0, len(m.order))
	for _, id := range m.order {
		if rec := m.items[id]; keep(rec) {
			result = append(result, rec)
		}
	}
	// ties keep insertion order
	sort.SliceStable(result, func(a, b int) bool {
		return result[a].CreatedAt.Before(result[b].CreatedAt)
	})
	return result
}
