package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "job-portal-backend/models/db"
)

func AutoMigrateDB() error {
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.Job{}); err != nil {
		return errors.Wrap(err, "migrate Job")
	}
	if err := DB.AutoMigrate(&dbmodels.Cv{}); err != nil {
		return errors.Wrap(err, "migrate Cv")
	}
	if err := DB.AutoMigrate(&dbmodels.Application{}); err != nil {
		return errors.Wrap(err, "migrate Application")
	}
	if err := DB.AutoMigrate(&dbmodels.Interview{}); err != nil {
		return errors.Wrap(err, "migrate Interview")
	}
	if err := DB.AutoMigrate(&dbmodels.CompanyProfile{}); err != nil {
		return errors.Wrap(err, "migrate CompanyProfile")
	}
	if err := DB.AutoMigrate(&dbmodels.Notification{}); err != nil {
		return errors.Wrap(err, "migrate Notification")
	}
	if err := DB.AutoMigrate(&dbmodels.JobAlert{}); err != nil {
		return errors.Wrap(err, "migrate JobAlert")
	}
	// one alert per owner, type and case-folded value
	err := DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_job_alert_owner_value ON job_alerts (user_id, type, lower(value))").Error
	if err != nil {
		return errors.Wrap(err, "index JobAlert")
	}
	log.Info("migrations done")
	return nil
}
