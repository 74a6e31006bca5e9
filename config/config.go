package config

import (
	"time"

	"github.com/gotify/configor"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var Conf *Configuration

const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
		DemoMode   *bool  `default:"true" env:"APP_DEMO_MODE"`
	}
	Storage struct {
		Driver string `default:"memory" env:"STORAGE_DRIVER"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"job-portal" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret      string `default:"job-portal-secret" env:"JWT_SECRET"`
		JWTExpireInSec int64  `default:"86400" env:"JWT_EXPIRE_IN_SEC"`
	}
	Alerts struct {
		NotifyDelay time.Duration `default:"2s" env:"ALERTS_NOTIFY_DELAY"`
	}
	Session struct {
		SavedJobsTTL time.Duration `default:"12h" env:"SESSION_SAVED_JOBS_TTL"`
	}
	Seed struct {
		Enabled  *bool `default:"true" env:"SEED_ENABLED"`
		JobCount int   `default:"15" env:"SEED_JOB_COUNT"`
		CvCount  int   `default:"10" env:"SEED_CV_COUNT"`
	}
	YandexGPT struct {
		IAMToken  string `default:"" env:"YANDEX_GPT_IAM_TOKEN"`
		CatalogID string `default:"" env:"YANDEX_GPT_CATALOG_ID"`
	}
	S3 struct {
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName      string `default:"job-portal" env:"S3_BUCKET_NAME"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		From       string `default:"" env:"SMTP_FROM"`
	}
	Redis struct {
		Addr            string        `default:"" env:"REDIS_ADDR"`
		Password        string        `default:"" env:"REDIS_PASSWORD"`
		RateLimit       int64         `default:"120" env:"RATE_LIMIT"`
		RateLimitWindow time.Duration `default:"1m" env:"RATE_LIMIT_WINDOW"`
	}
}

func (c Configuration) UsePostgres() bool {
	return c.Storage.Driver == StorageDriverPostgres
}

func (c Configuration) IsDemoMode() bool {
	return c.App.DemoMode != nil && *c.App.DemoMode
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Debug(".env not loaded, using process environment")
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
