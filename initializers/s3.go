package initializers

import (
	"context"

	"job-portal-backend/config"
	s3client "job-portal-backend/s3"

	log "github.com/sirupsen/logrus"
)

func InitS3(ctx context.Context) {
	if config.Conf.S3.Endpoint == "" {
		log.Info("S3 endpoint is not set, file uploads are disabled")
		return
	}
	minioClient, err := s3client.NewClient(config.Conf.S3.Endpoint, config.Conf.S3.AccessKeyID,
		config.Conf.S3.SecretAccessKey, *config.Conf.S3.UseSSL)
	if err != nil {
		log.WithError(err).Error("failed to create S3 client")
		return
	}
	if err = s3client.MakeBucket(ctx, minioClient, config.Conf.S3.BucketName); err != nil {
		log.WithError(err).Error("S3 connection failed, bucket check returned an error")
	}

	s3client.Client = minioClient
	log.Info("S3 client initialized")
}
