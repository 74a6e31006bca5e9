package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	dbmodels "job-portal-backend/models/db"
)

func TestMemoryList(t *testing.T) {
	now := time.Now()
	m := NewMemoryInstance()

	t.Run("ordered by creation time", func(t *testing.T) {
		_, err := m.Create(dbmodels.Job{BaseModel: dbmodels.BaseModel{ID: "recent", CreatedAt: now}, EmployerID: "e1"})
		require.NoError(t, err)
		_, err = m.Create(dbmodels.Job{BaseModel: dbmodels.BaseModel{ID: "older", CreatedAt: now.Add(-time.Hour)}, EmployerID: "e1"})
		require.NoError(t, err)
		_, err = m.Create(dbmodels.Job{BaseModel: dbmodels.BaseModel{ID: "other", CreatedAt: now.Add(-2 * time.Hour)}, EmployerID: "e2"})
		require.NoError(t, err)

		list, err := m.List()
		require.NoError(t, err)
		require.Equal(t, []string{"other", "older", "recent"}, jobIDs(list))

		byEmployer, err := m.ListByEmployer("e1")
		require.NoError(t, err)
		require.Equal(t, []string{"older", "recent"}, jobIDs(byEmployer))
	})
	t.Run("same creation time keeps insertion order", func(t *testing.T) {
		_, err := m.Create(dbmodels.Job{BaseModel: dbmodels.BaseModel{ID: "tie-b", CreatedAt: now.Add(time.Hour)}, EmployerID: "e3"})
		require.NoError(t, err)
		_, err = m.Create(dbmodels.Job{BaseModel: dbmodels.BaseModel{ID: "tie-a", CreatedAt: now.Add(time.Hour)}, EmployerID: "e3"})
		require.NoError(t, err)

		list, err := m.ListByEmployer("e3")
		require.NoError(t, err)
		require.Equal(t, []string{"tie-b", "tie-a"}, jobIDs(list))
	})
}

func jobIDs(list []dbmodels.Job) []string {
	result := []string{}
	for _, rec := range list {
		result = append(result, rec.ID)
	}
	return result
}
