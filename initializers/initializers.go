package initializers

import (
	"context"

	"job-portal-backend/config"
	"job-portal-backend/fiberlog"
	"job-portal-backend/lib/analytics"
	applicationhandler "job-portal-backend/lib/application"
	companyprofilehandler "job-portal-backend/lib/company-profile"
	cvhandler "job-portal-backend/lib/cv"
	xlsexport "job-portal-backend/lib/export/xls"
	filestorage "job-portal-backend/lib/file-storage"
	yagptclient "job-portal-backend/lib/gpt/yagpt-client"
	interviewhandler "job-portal-backend/lib/interview"
	jobhandler "job-portal-backend/lib/job"
	jobalerthandler "job-portal-backend/lib/job-alert"
	notificationhandler "job-portal-backend/lib/notification"
	"job-portal-backend/lib/ratelimit"
	savedjobshandler "job-portal-backend/lib/saved-jobs"
	seedhandler "job-portal-backend/lib/seed"
	connectionhub "job-portal-backend/lib/ws/hub/connection-hub"
	s3client "job-portal-backend/s3"

	log "github.com/sirupsen/logrus"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	xlsexport.NewHandler()
	connectionhub.Init()
	notificationhandler.NewHandler()
	savedjobshandler.NewHandler(config.Conf.Session.SavedJobsTTL)
	filestorage.NewHandler(s3client.Client, config.Conf.S3.BucketName)
	jobalerthandler.NewHandler(ctx, config.Conf.Alerts.NotifyDelay)
	jobhandler.NewHandler()
	cvhandler.NewHandler()
	companyprofilehandler.NewHandler()
	applicationhandler.NewHandler()
	interviewhandler.NewHandler()
	analytics.NewHandler()
	InitRateLimit()
	InitSeed(ctx)
}

func InitRateLimit() {
	err := ratelimit.NewHandler(config.Conf.Redis.Addr, config.Conf.Redis.Password,
		config.Conf.Redis.RateLimit, config.Conf.Redis.RateLimitWindow)
	if err != nil {
		log.WithError(err).Error("rate limiter disabled")
	}
}

// InitSeed loads the demo data in the background so the API starts serving
// right away; job listings answer 503 until the load finishes.
func InitSeed(ctx context.Context) {
	generator := yagptclient.NewClient(config.Conf.YandexGPT.IAMToken, config.Conf.YandexGPT.CatalogID)
	seedhandler.NewHandler(generator, seedhandler.Counts{
		Jobs: config.Conf.Seed.JobCount,
		Cvs:  config.Conf.Seed.CvCount,
	})
	if config.Conf.Seed.Enabled == nil || !*config.Conf.Seed.Enabled {
		return
	}
	go func() {
		if err := seedhandler.Instance.Run(ctx); err != nil {
			log.WithError(err).Error("demo data load failed")
		}
	}()
}
