package pdfexport

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	cvapimodels "job-portal-backend/models/api/cv"
)

func TestGenerateCv(t *testing.T) {
	cv := cvapimodels.CvView{
		CvData: cvapimodels.CvData{
			Name:         "Jane Doe",
			Title:        "Backend Engineer",
			Experience:   []string{"Acme, 2019-2023", "Globex, 2023-now"},
			Skills:       []string{"Go", "PostgreSQL"},
			ContactEmail: "jane@example.com",
		},
	}
	body, err := GenerateCv(cv)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(body, []byte("%PDF-")))

	empty, err := GenerateCv(cvapimodels.CvView{CvData: cvapimodels.CvData{Name: "No Data"}})
	require.NoError(t, err)
	require.NotEmpty(t, empty)
}
