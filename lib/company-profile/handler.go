package companyprofilehandler

import (
	"context"
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"job-portal-backend/lib/company-profile/store"
	filestorage "job-portal-backend/lib/file-storage"
	notificationhandler "job-portal-backend/lib/notification"
	initchecker "job-portal-backend/lib/utils/init-checker"
	"job-portal-backend/models"
	companyapimodels "job-portal-backend/models/api/company"
	dbmodels "job-portal-backend/models/db"
)

const (
	defaultCompanyName = "StriveTech"
	defaultDescription = "StriveTech is at the forefront of digital innovation, creating solutions that empower businesses and individuals. We are a team of passionate creators, thinkers, and builders dedicated to pushing the boundaries of technology."
	defaultCulture     = "Our culture is built on collaboration, continuous learning, and a shared drive for excellence. We believe in empowering our team members, fostering a supportive environment, and celebrating our collective successes."
)

type Provider interface {
	EnsureProfile(userID string) (companyapimodels.CompanyProfileView, error)
	Get(userID string) (companyapimodels.CompanyProfileView, error)
	Save(userID string, data companyapimodels.CompanyProfileData) (companyapimodels.CompanyProfileView, error)
	UploadLogo(ctx context.Context, userID, fileName string, file io.Reader, fileSize int64, contentType string) (companyapimodels.CompanyProfileView, error)
	GetLogo(ctx context.Context, userID string) (body []byte, contentType string, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:    store.Default(),
		notifier: notificationhandler.Instance,
		files:    filestorage.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"notifier", instance.notifier,
		"files", instance.files,
	)
	Instance = instance
}

type impl struct {
	store    store.Provider
	notifier notificationhandler.Provider
	files    filestorage.Provider
}

func LogoUrl(userID string) string {
	return "/api/v1/files/logo/" + userID
}

func (i impl) EnsureProfile(userID string) (companyapimodels.CompanyProfileView, error) {
	rec, err := i.store.GetByUserID(userID)
	if err != nil {
		return companyapimodels.CompanyProfileView{}, err
	}
	if rec != nil {
		return companyapimodels.CompanyProfileConvert(*rec), nil
	}
	newRec := dbmodels.CompanyProfile{
		UserID:      userID,
		CompanyName: defaultCompanyName,
		Description: defaultDescription,
		Culture:     defaultCulture,
	}
	if _, err = i.store.Create(newRec); err != nil {
		return companyapimodels.CompanyProfileView{}, errors.Wrap(err, "company profile create failed")
	}
	log.WithField("user_id", userID).Info("company profile created")
	return companyapimodels.CompanyProfileConvert(newRec), nil
}

func (i impl) Get(userID string) (companyapimodels.CompanyProfileView, error) {
	rec, err := i.get(userID)
	if err != nil {
		return companyapimodels.CompanyProfileView{}, err
	}
	return companyapimodels.CompanyProfileConvert(*rec), nil
}

func (i impl) Save(userID string, data companyapimodels.CompanyProfileData) (companyapimodels.CompanyProfileView, error) {
	if err := data.Validate(); err != nil {
		return companyapimodels.CompanyProfileView{}, errors.Wrap(models.ErrValidation, err.Error())
	}
	updMap := map[string]interface{}{
		"company_name": data.CompanyName,
		"description":  data.Description,
		"culture":      data.Culture,
	}
	if data.LogoUrl != "" {
		updMap["logo_url"] = data.LogoUrl
	}
	if err := i.store.Update(userID, updMap); err != nil {
		return companyapimodels.CompanyProfileView{}, err
	}
	i.notifier.Send(userID, models.GetNotifyCompanyUpdated())
	log.WithField("user_id", userID).Info("company profile updated")
	return i.Get(userID)
}

func (i impl) UploadLogo(ctx context.Context, userID, fileName string, file io.Reader, fileSize int64, contentType string) (companyapimodels.CompanyProfileView, error) {
	if _, err := i.get(userID); err != nil {
		return companyapimodels.CompanyProfileView{}, err
	}
	key, err := i.files.Upload(ctx, filestorage.FileKindLogo, userID, fileName, file, fileSize, contentType)
	if err != nil {
		return companyapimodels.CompanyProfileView{}, err
	}
	updMap := map[string]interface{}{
		"logo_url": LogoUrl(userID),
		"logo_key": key,
	}
	if err = i.store.Update(userID, updMap); err != nil {
		return companyapimodels.CompanyProfileView{}, err
	}
	return i.Get(userID)
}

func (i impl) GetLogo(ctx context.Context, userID string) (body []byte, contentType string, err error) {
	rec, err := i.get(userID)
	if err != nil {
		return nil, "", err
	}
	if rec.LogoKey == "" {
		return nil, "", errors.Wrapf(models.ErrNotFound, "logo of %s", userID)
	}
	return i.files.Get(ctx, rec.LogoKey)
}

func (i impl) get(userID string) (*dbmodels.CompanyProfile, error) {
	rec, err := i.store.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrapf(models.ErrNotFound, "company profile of %s", userID)
	}
	return rec, nil
}
