package initializers

import (
	"job-portal-backend/config"
	"job-portal-backend/db"

	log "github.com/sirupsen/logrus"
)

func InitDBConnection() {
	if !config.Conf.UsePostgres() {
		log.Info("storage driver is memory, database connection skipped")
		return
	}
	err := db.Connect(config.Conf.Database.Host, config.Conf.Database.Port, config.Conf.Database.Name,
		config.Conf.Database.User, config.Conf.Database.Password, *config.Conf.Database.DebugMode, *config.Conf.Database.MigrateOnStart)
	if err != nil {
		panic(err.Error())
	}
}
