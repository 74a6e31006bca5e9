package cvhandler

import (
	"bytes"
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"job-portal-backend/lib/cv/store"
	filestorage "job-portal-backend/lib/file-storage"
	notificationhandler "job-portal-backend/lib/notification"
	notificationstore "job-portal-backend/lib/notification/store"
	"job-portal-backend/models"
	cvapimodels "job-portal-backend/models/api/cv"
)

func getInstance() impl {
	filestorage.NewHandler(nil, "job-portal")
	return impl{
		store:    store.NewMemoryInstance(),
		notifier: notificationhandler.New(notificationstore.NewMemoryInstance(), nil),
		files:    filestorage.Instance,
	}
}

func TestEnsureProfile(t *testing.T) {
	handler := getInstance()
	view, err := handler.EnsureProfile("user-1", "jane.doe@example.com")
	require.NoError(t, err)
	require.Equal(t, "jane.doe", view.Name)
	require.Equal(t, "jane.doe@example.com", view.ContactEmail)
	require.Empty(t, view.Skills)

	again, err := handler.EnsureProfile("user-1", "other@example.com")
	require.NoError(t, err)
	require.Equal(t, view.ID, again.ID)
	require.Equal(t, "jane.doe", again.Name)
}

func TestUpdate(t *testing.T) {
	handler := getInstance()
	_, err := handler.EnsureProfile("user-1", "jane@example.com")
	require.NoError(t, err)

	t.Run("skills unique case insensitive", func(t *testing.T) {
		view, err := handler.Update("user-1", cvapimodels.CvData{
			Name:       "Jane Doe",
			Title:      "Engineer",
			Experience: []string{"Acme", " "},
			Skills:     []string{"Go", "go", "SQL", "GO "},
		})
		require.NoError(t, err)
		require.Equal(t, []string{"Go", "SQL"}, view.Skills)
		require.Equal(t, []string{"Acme"}, view.Experience)

		got, err := handler.Get("user-1")
		require.NoError(t, err)
		require.Equal(t, "Jane Doe", got.Name)

		notifications, err := handler.notifier.List("user-1")
		require.NoError(t, err)
		require.Equal(t, "Profile updated successfully!", notifications.Items[0].Message)
	})
	t.Run("invalid email", func(t *testing.T) {
		_, err := handler.Update("user-1", cvapimodels.CvData{Name: "Jane", ContactEmail: "nope"})
		require.True(t, errors.Is(err, models.ErrValidation))
	})
	t.Run("missing profile", func(t *testing.T) {
		_, err := handler.Update("user-2", cvapimodels.CvData{Name: "Jane"})
		require.True(t, errors.Is(err, models.ErrNotFound))
	})
}

func TestSearch(t *testing.T) {
	handler := getInstance()
	for _, item := range []struct {
		user, name, title string
		skills            []string
	}{
		{"u1", "Jane Doe", "Backend Engineer", []string{"Go"}},
		{"u2", "John Roe", "Nurse", []string{"Triage"}},
		{"u3", "Ann Lee", "Designer", []string{"Figma", "golang basics"}},
	} {
		_, err := handler.EnsureProfile(item.user, item.user+"@example.com")
		require.NoError(t, err)
		_, err = handler.Update(item.user, cvapimodels.CvData{Name: item.name, Title: item.title, Skills: item.skills})
		require.NoError(t, err)
	}
	names := func(list []cvapimodels.CvView) []string {
		result := []string{}
		for _, item := range list {
			result = append(result, item.Name)
		}
		return result
	}

	list, err := handler.Search(cvapimodels.CvFilter{Search: "go"})
	require.NoError(t, err)
	require.Equal(t, []string{"Jane Doe", "Ann Lee"}, names(list))

	list, err = handler.Search(cvapimodels.CvFilter{Search: "NURSE"})
	require.NoError(t, err)
	require.Equal(t, []string{"John Roe"}, names(list))

	list, err = handler.Search(cvapimodels.CvFilter{})
	require.NoError(t, err)
	require.Len(t, list, 3)
}

func TestFiles(t *testing.T) {
	handler := getInstance()
	view, err := handler.EnsureProfile("user-1", "jane@example.com")
	require.NoError(t, err)

	_, err = handler.UploadFile(context.Background(), "user-1", "cv.pdf", bytes.NewReader([]byte("%PDF")), 4, "application/pdf")
	require.True(t, errors.Is(err, models.ErrUnavailable))

	_, _, _, err = handler.GetFile(context.Background(), view.ID)
	require.True(t, errors.Is(err, models.ErrNotFound))

	fileName, body, err := handler.ExportPdf(view.ID)
	require.NoError(t, err)
	require.Equal(t, "cv-jane.pdf", fileName)
	require.NotEmpty(t, body)
}
