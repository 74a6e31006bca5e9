package alertapimodels

import (
	"strings"

	"github.com/pkg/errors"
	"job-portal-backend/models"
	dbmodels "job-portal-backend/models/db"
)

type AlertData struct {
	Type  models.AlertType `json:"type"`
	Value string           `json:"value"`
}

func (a *AlertData) Validate() error {
	a.Value = strings.TrimSpace(a.Value)
	if !a.Type.IsValid() {
		return errors.Errorf("unknown alert type %q", a.Type)
	}
	if a.Value == "" {
		return errors.New("alert value is required")
	}
	return nil
}

type AlertView struct {
	AlertData
	ID string `json:"id"`
}

func AlertConvert(rec dbmodels.JobAlert) AlertView {
	return AlertView{
		AlertData: AlertData{
			Type:  rec.Type,
			Value: rec.Value,
		},
		ID: rec.ID,
	}
}

type CreateResult struct {
	Alert     AlertView `json:"alert"`
	Duplicate bool      `json:"duplicate"` // an equal alert already existed
}
