package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"job-portal-backend/models"
)

type FileKind string

const (
	FileKindCv         FileKind = "cv"
	FileKindAttachment FileKind = "attachment"
	FileKindLogo       FileKind = "logo"
)

type Provider interface {
	Upload(ctx context.Context, kind FileKind, ownerID, fileName string, file io.Reader, fileSize int64, contentType string) (key string, err error)
	Get(ctx context.Context, key string) (body []byte, contentType string, err error)
}

var Instance Provider

// NewHandler wires object storage; a nil client makes every call fail with
// models.ErrUnavailable.
func NewHandler(client *minio.Client, bucketName string) {
	Instance = impl{
		client:     client,
		bucketName: bucketName,
	}
}

type impl struct {
	client     *minio.Client
	bucketName string
}

func (i impl) Upload(ctx context.Context, kind FileKind, ownerID, fileName string, file io.Reader, fileSize int64, contentType string) (key string, err error) {
	if i.client == nil {
		return "", errors.Wrap(models.ErrUnavailable, "file storage")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key = ObjectKey(kind, ownerID, fileName)
	_, err = i.client.PutObject(ctx, i.bucketName, key, file, fileSize, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "file upload failed")
	}
	log.
		WithField("owner_id", ownerID).
		WithField("object_key", key).
		Info("file uploaded")
	return key, nil
}

func (i impl) Get(ctx context.Context, key string) (body []byte, contentType string, err error) {
	if i.client == nil {
		return nil, "", errors.Wrap(models.ErrUnavailable, "file storage")
	}
	object, err := i.client.GetObject(ctx, i.bucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", errors.Wrap(err, "file download failed")
	}
	defer object.Close()
	info, err := object.Stat()
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, "", errors.Wrapf(models.ErrNotFound, "file %s", key)
		}
		return nil, "", errors.Wrap(err, "file download failed")
	}
	buf := new(bytes.Buffer)
	if _, err = io.Copy(buf, object); err != nil {
		return nil, "", errors.Wrap(err, "file download failed")
	}
	return buf.Bytes(), info.ContentType, nil
}

// ObjectKey builds "<kind>/<owner>/<uuid><ext>"; the original name stays on the entity.
func ObjectKey(kind FileKind, ownerID, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("%s/%s/%s%s", kind, ownerID, uuid.NewString(), ext)
}
