package cvhandler

import (
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"job-portal-backend/lib/cv/store"
	pdfexport "job-portal-backend/lib/export/pdf"
	filestorage "job-portal-backend/lib/file-storage"
	notificationhandler "job-portal-backend/lib/notification"
	"job-portal-backend/lib/utils/helpers"
	initchecker "job-portal-backend/lib/utils/init-checker"
	"job-portal-backend/models"
	cvapimodels "job-portal-backend/models/api/cv"
	dbmodels "job-portal-backend/models/db"
)

type Provider interface {
	// EnsureProfile creates the user's CV on first sign-in.
	EnsureProfile(userID, email string) (cvapimodels.CvView, error)
	Get(userID string) (cvapimodels.CvView, error)
	GetByID(id string) (cvapimodels.CvView, error)
	Update(userID string, data cvapimodels.CvData) (cvapimodels.CvView, error)
	Search(filter cvapimodels.CvFilter) ([]cvapimodels.CvView, error)
	UploadFile(ctx context.Context, userID, fileName string, file io.Reader, fileSize int64, contentType string) (cvapimodels.CvView, error)
	GetFile(ctx context.Context, id string) (fileName string, body []byte, contentType string, err error)
	ExportPdf(id string) (fileName string, body []byte, err error)
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

func (i impl) getLogger(userID string) *log.Entry {
	return log.WithField("user_id", userID)
}

func (i impl) EnsureProfile(userID, email string) (cvapimodels.CvView, error) {
	rec, err := i.store.GetByUserID(userID)
	if err != nil {
		return cvapimodels.CvView{}, err
	}
	if rec != nil {
		return cvapimodels.CvConvert(*rec), nil
	}
	newRec := dbmodels.Cv{
		UserID:       userID,
		Name:         helpers.EmailPrefix(email),
		ContactEmail: email,
		Experience:   dbmodels.StringList{},
		Skills:       dbmodels.StringList{},
	}
	newRec.ID, err = i.store.Create(newRec)
	if err != nil {
		return cvapimodels.CvView{}, errors.Wrap(err, "cv create failed")
	}
	i.getLogger(userID).WithField("cv_id", newRec.ID).Info("cv profile created")
	return cvapimodels.CvConvert(newRec), nil
}

func (i impl) Get(userID string) (cvapimodels.CvView, error) {
	rec, err := i.getByUser(userID)
	if err != nil {
		return cvapimodels.CvView{}, err
	}
	return cvapimodels.CvConvert(*rec), nil
}

func (i impl) GetByID(id string) (cvapimodels.CvView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return cvapimodels.CvView{}, err
	}
	if rec == nil {
		return cvapimodels.CvView{}, errors.Wrapf(models.ErrNotFound, "cv %s", id)
	}
	return cvapimodels.CvConvert(*rec), nil
}

func (i impl) Update(userID string, data cvapimodels.CvData) (cvapimodels.CvView, error) {
	if err := data.Validate(); err != nil {
		return cvapimodels.CvView{}, errors.Wrap(models.ErrValidation, err.Error())
	}
	rec, err := i.getByUser(userID)
	if err != nil {
		return cvapimodels.CvView{}, err
	}
	rec.Name = data.Name
	rec.Title = strings.TrimSpace(data.Title)
	rec.Experience = nonEmpty(data.Experience)
	rec.Skills = helpers.UniqueFold(data.Skills)
	rec.AvatarUrl = strings.TrimSpace(data.AvatarUrl)
	rec.ContactEmail = data.ContactEmail
	rec.Phone = data.Phone
	if err = i.store.Save(*rec); err != nil {
		return cvapimodels.CvView{}, errors.Wrap(err, "cv update failed")
	}
	i.notifier.Send(userID, models.GetNotifyProfileUpdated())
	i.getLogger(userID).WithField("cv_id", rec.ID).Info("cv profile updated")
	return cvapimodels.CvConvert(*rec), nil
}

func (i impl) Search(filter cvapimodels.CvFilter) ([]cvapimodels.CvView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := []cvapimodels.CvView{}
	for _, rec := range FilterCandidates(list, filter.Search) {
		result = append(result, cvapimodels.CvConvert(rec))
	}
	return result, nil
}

func (i impl) UploadFile(ctx context.Context, userID, fileName string, file io.Reader, fileSize int64, contentType string) (cvapimodels.CvView, error) {
	rec, err := i.getByUser(userID)
	if err != nil {
		return cvapimodels.CvView{}, err
	}
	key, err := i.files.Upload(ctx, filestorage.FileKindCv, userID, fileName, file, fileSize, contentType)
	if err != nil {
		return cvapimodels.CvView{}, err
	}
	rec.CvFileName = fileName
	rec.CvFileKey = key
	if err = i.store.Save(*rec); err != nil {
		return cvapimodels.CvView{}, errors.Wrap(err, "cv update failed")
	}
	i.getLogger(userID).WithField("file_name", fileName).Info("cv file uploaded")
	return cvapimodels.CvConvert(*rec), nil
}

func (i impl) GetFile(ctx context.Context, id string) (fileName string, body []byte, contentType string, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", nil, "", err
	}
	if rec == nil || rec.CvFileKey == "" {
		return "", nil, "", errors.Wrapf(models.ErrNotFound, "cv file of %s", id)
	}
	body, contentType, err = i.files.Get(ctx, rec.CvFileKey)
	if err != nil {
		return "", nil, "", err
	}
	return rec.CvFileName, body, contentType, nil
}

func (i impl) ExportPdf(id string) (fileName string, body []byte, err error) {
	view, err := i.GetByID(id)
	if err != nil {
		return "", nil, err
	}
	body, err = pdfexport.GenerateCv(view)
	if err != nil {
		return "", nil, errors.Wrap(err, "cv pdf export failed")
	}
	return "cv-" + strings.ReplaceAll(view.Name, " ", "_") + ".pdf", body, nil
}

func (i impl) getByUser(userID string) (*dbmodels.Cv, error) {
	rec, err := i.store.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrapf(models.ErrNotFound, "cv of user %s", userID)
	}
	return rec, nil
}

func nonEmpty(list []string) dbmodels.StringList {
	result := dbmodels.StringList{}
	for _, item := range list {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
