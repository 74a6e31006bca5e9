package db

import (
	"fmt"

	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB stays nil when the service runs on the in-memory stores.
var DB *gorm.DB

func Connect(host string, port string, database string, user string, pass string, debugMode bool, migrate bool) (err error) {
	if DB == nil {
		dbConnString := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", host, port, user, database, pass)
		db, err := gorm.Open(postgres.Open(dbConnString), &gorm.Config{
			Logger: gorm_logrus.New(),
		})
		if err != nil {
			return errors.Wrap(err, "database connection failed")
		}
		if debugMode {
			db.Logger = logger.Default.LogMode(logger.Info)
			DB = db.Debug()
		} else {
			DB = db
		}
		if migrate {
			err = AutoMigrateDB()
		}
		log.Info("connected to database")
		return err
	}
	return nil
}

func PingDB() error {
	if DB == nil {
		return nil
	}
	db, err := DB.DB()
	if err != nil {
		return err
	}
	return db.Ping()
}

// Transaction runs fn inside a database transaction.
// Without a database connection fn is called with a nil tx.
func Transaction(fn func(tx *gorm.DB) error) error {
	if DB == nil {
		return fn(nil)
	}
	return DB.Transaction(fn)
}
