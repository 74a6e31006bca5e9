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
		items:  make(map[string]dbmodels.Cv),
		byUser: make(map[string]string),
	}
}

type memoryImpl struct {
	mu     sync.RWMutex
	items  map[string]dbmodels.Cv
	byUser map[string]string // user id -> cv id
	order  []string
}

func (m *memoryImpl) Create(rec dbmodels.Cv) (id string, err error) {
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
	if _, exist := m.byUser[rec.UserID]; exist {
		return "", errors.Errorf("cv for user %s already exists", rec.UserID)
	}
	m.items[rec.ID] = rec
	m.byUser[rec.UserID] = rec.ID
	m.order = append(m.order, rec.ID)
	return rec.ID, nil
}

func (m *memoryImpl) GetByID(id string) (*dbmodels.Cv, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *memoryImpl) GetByUserID(userID string) (*dbmodels.Cv, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.byUser[userID]
	if !ok {
		return nil, nil
	}
	rec := m.items[id]
	return &rec, nil
}

func (m *memoryImpl) List() ([]dbmodels.Cv, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]dbmodels.Cv, 0, len(m.order))
	for _, id := range m.order {
		result = append(result, m.items[id])
	}
	return result, nil
}

func (m *memoryImpl) Save(rec dbmodels.Cv) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.items[rec.ID]
	if !ok {
		return errors.Wrapf(models.ErrNotFound, "cv %s", rec.ID)
	}
	rec.UserID = current.UserID
	rec.CreatedAt = current.CreatedAt
	rec.UpdatedAt = time.Now()
	m.items[rec.ID] = rec
	return nil
}

func (m *memoryImpl) WithTx(_ *gorm.DB) Provider {
	return m
}
