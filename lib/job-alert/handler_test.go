package jobalerthandler

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"job-portal-backend/lib/category"
	"job-portal-backend/lib/job-alert/store"
	notificationhandler "job-portal-backend/lib/notification"
	notificationstore "job-portal-backend/lib/notification/store"
	"job-portal-backend/models"
	alertapimodels "job-portal-backend/models/api/alert"
	dbmodels "job-portal-backend/models/db"
)

func getInstance(ctx context.Context, delay time.Duration) (Provider, notificationhandler.Provider) {
	notifier := notificationhandler.New(notificationstore.NewMemoryInstance(), nil)
	return New(ctx, store.NewMemoryInstance(), notifier, delay), notifier
}

func alertMessages(t *testing.T, notifier notificationhandler.Provider, userID string) []string {
	list, err := notifier.List(userID)
	require.NoError(t, err)
	result := []string{}
	for _, item := range list.Items {
		if item.Type == models.NotificationAlert {
			result = append(result, item.Message)
		}
	}
	return result
}

func TestCreate(t *testing.T) {
	handler, notifier := getInstance(context.Background(), 0)

	t.Run("created", func(t *testing.T) {
		result, err := handler.Create("user-1", alertapimodels.AlertData{Type: models.AlertTypeKeyword, Value: " React "})
		require.NoError(t, err)
		require.False(t, result.Duplicate)
		require.Equal(t, "React", result.Alert.Value)
	})
	t.Run("duplicate leaves list unchanged", func(t *testing.T) {
		before, err := handler.List("user-1")
		require.NoError(t, err)
		result, err := handler.Create("user-1", alertapimodels.AlertData{Type: models.AlertTypeKeyword, Value: "react"})
		require.NoError(t, err)
		require.True(t, result.Duplicate)
		after, err := handler.List("user-1")
		require.NoError(t, err)
		require.Equal(t, before, after)

		list, err := notifier.List("user-1")
		require.NoError(t, err)
		require.Equal(t, `You already have an alert for "react".`, list.Items[0].Message)
		require.Equal(t, models.NotificationInfo, list.Items[0].Type)
	})
	t.Run("same value for another user", func(t *testing.T) {
		result, err := handler.Create("user-2", alertapimodels.AlertData{Type: models.AlertTypeKeyword, Value: "react"})
		require.NoError(t, err)
		require.False(t, result.Duplicate)
	})
	t.Run("unknown category", func(t *testing.T) {
		_, err := handler.Create("user-1", alertapimodels.AlertData{Type: models.AlertTypeCategory, Value: "Astronomy"})
		require.True(t, errors.Is(err, models.ErrValidation))
	})
	t.Run("empty value", func(t *testing.T) {
		_, err := handler.Create("user-1", alertapimodels.AlertData{Type: models.AlertTypeKeyword, Value: "  "})
		require.True(t, errors.Is(err, models.ErrValidation))
	})
}

func TestCreateConcurrentDuplicates(t *testing.T) {
	handler, _ := getInstance(context.Background(), 0)

	const workers = 16
	results := make(chan alertapimodels.CreateResult, workers)
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for n := 0; n < workers; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := handler.Create("user-1", alertapimodels.AlertData{Type: models.AlertTypeKeyword, Value: "Golang"})
			results <- result
			errs <- err
		}()
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	created := 0
	for result := range results {
		if !result.Duplicate {
			created++
		}
	}
	require.Equal(t, 1, created)
	list, err := handler.List("user-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestRemove(t *testing.T) {
	handler, notifier := getInstance(context.Background(), 0)
	result, err := handler.Create("user-1", alertapimodels.AlertData{Type: models.AlertTypeCategory, Value: "Finance"})
	require.NoError(t, err)

	t.Run("other owner", func(t *testing.T) {
		err := handler.Remove("user-2", result.Alert.ID)
		require.True(t, errors.Is(err, models.ErrNotFound))
	})
	t.Run("removed", func(t *testing.T) {
		require.NoError(t, handler.Remove("user-1", result.Alert.ID))
		list, err := handler.List("user-1")
		require.NoError(t, err)
		require.Empty(t, list)
		notifications, err := notifier.List("user-1")
		require.NoError(t, err)
		require.Equal(t, `Job alert for "Finance" removed.`, notifications.Items[0].Message)
	})
	t.Run("missing", func(t *testing.T) {
		err := handler.Remove("user-1", result.Alert.ID)
		require.True(t, errors.Is(err, models.ErrNotFound))
	})
}

func TestOnJobPosted(t *testing.T) {
	job := dbmodels.Job{
		BaseModel:   dbmodels.BaseModel{ID: "job-1"},
		Title:       "Senior React Developer",
		Description: "Build UIs",
	}

	t.Run("keyword alert fires once", func(t *testing.T) {
		handler, notifier := getInstance(context.Background(), 0)
		_, err := handler.Create("user-1", alertapimodels.AlertData{Type: models.AlertTypeKeyword, Value: "react"})
		require.NoError(t, err)
		_, err = handler.Create("user-1", alertapimodels.AlertData{Type: models.AlertTypeKeyword, Value: "golang"})
		require.NoError(t, err)

		handler.OnJobPosted(job)
		messages := alertMessages(t, notifier, "user-1")
		require.Len(t, messages, 1)
		require.Contains(t, messages[0], "Senior React Developer")
		require.Contains(t, messages[0], "react")
		require.Equal(t, `New Job Alert: "Senior React Developer" matches your "react" alert.`, messages[0])
	})
	t.Run("notifies every owner", func(t *testing.T) {
		handler, notifier := getInstance(context.Background(), 0)
		_, err := handler.Create("user-1", alertapimodels.AlertData{Type: models.AlertTypeKeyword, Value: "ui"})
		require.NoError(t, err)
		_, err = handler.Create("user-2", alertapimodels.AlertData{Type: models.AlertTypeKeyword, Value: "developer"})
		require.NoError(t, err)

		handler.OnJobPosted(job)
		require.Len(t, alertMessages(t, notifier, "user-1"), 1)
		require.Len(t, alertMessages(t, notifier, "user-2"), 1)
	})
	t.Run("deferred", func(t *testing.T) {
		handler, notifier := getInstance(context.Background(), 30*time.Millisecond)
		_, err := handler.Create("user-1", alertapimodels.AlertData{Type: models.AlertTypeKeyword, Value: "react"})
		require.NoError(t, err)

		handler.OnJobPosted(job)
		require.Empty(t, alertMessages(t, notifier, "user-1"))
		require.Eventually(t, func() bool {
			return len(alertMessages(t, notifier, "user-1")) == 1
		}, time.Second, 10*time.Millisecond)
	})
	t.Run("dropped on shutdown", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		handler, notifier := getInstance(ctx, 50*time.Millisecond)
		_, err := handler.Create("user-1", alertapimodels.AlertData{Type: models.AlertTypeKeyword, Value: "react"})
		require.NoError(t, err)

		handler.OnJobPosted(job)
		cancel()
		time.Sleep(100 * time.Millisecond)
		require.Empty(t, alertMessages(t, notifier, "user-1"))
	})
}

func TestMatchAgreesWithCategoryCount(t *testing.T) {
	jobs := []dbmodels.Job{
		{Title: "Financial Analyst", Description: "Budgets"},
		{Title: "Nurse", Description: "Night shifts at the clinic"},
		{Title: "Sales Lead", Description: "Grow customer accounts"},
		{Title: "Site Engineer", Description: "Civil works"},
		{Title: "Recruiter", Description: "Hiring pipeline"},
		{Title: "Painter", Description: "Walls"},
	}
	for _, c := range category.List() {
		alert := dbmodels.JobAlert{Type: models.AlertTypeCategory, Value: c.Name}
		for _, job := range jobs {
			matched := len(Match(job, []dbmodels.JobAlert{alert})) == 1
			require.Equal(t, category.MatchesJob(c.Keywords, job.Title, job.Description), matched,
				"%s / %s", c.Name, job.Title)
		}
	}
}

func TestMatchKeyword(t *testing.T) {
	job := dbmodels.Job{Title: "Go Engineer", Description: "Distributed SYSTEMS"}
	alerts := []dbmodels.JobAlert{
		{Type: models.AlertTypeKeyword, Value: "systems"},
		{Type: models.AlertTypeKeyword, Value: "rust"},
		{Type: models.AlertTypeCategory, Value: "Unknown"},
	}
	matched := Match(job, alerts)
	require.Len(t, matched, 1)
	require.True(t, strings.EqualFold("systems", matched[0].Value))
}
