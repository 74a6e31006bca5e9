package seedhandler

import (
	"context"
	"encoding/json"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"job-portal-backend/db"
	applicationstore "job-portal-backend/lib/application/store"
	cvstore "job-portal-backend/lib/cv/store"
	yagptclient "job-portal-backend/lib/gpt/yagpt-client"
	"job-portal-backend/lib/utils/helpers"
	jobstore "job-portal-backend/lib/job/store"
	initchecker "job-portal-backend/lib/utils/init-checker"
	"job-portal-backend/models"
	seedapimodels "job-portal-backend/models/api/seed"
	dbmodels "job-portal-backend/models/db"
)

const (
	ErrorMessage          = "Could not connect to the AI service. Please check your API key and try again."
	generatedUserIDPrefix = "generated-"
)

type Provider interface {
	// Run loads the demo data once; later calls after a success are no-ops.
	Run(ctx context.Context) error
	Status() seedapimodels.StatusView
	// Ready returns models.ErrDataNotLoaded while data is loading or after a failed load.
	Ready() error
}

var Instance Provider

type Counts struct {
	Jobs int
	Cvs  int
}

func NewHandler(generator yagptclient.Provider, counts Counts) {
	Instance = New(generator, jobstore.Default(), cvstore.Default(), applicationstore.Default(), counts)
}

func New(generator yagptclient.Provider, jobStore jobstore.Provider, cvStore cvstore.Provider, applicationStore applicationstore.Provider, counts Counts) Provider {
	initchecker.CheckInit(
		"generator", generator,
		"jobStore", jobStore,
		"cvStore", cvStore,
		"applicationStore", applicationStore,
	)
	return &impl{
		generator:        generator,
		jobStore:         jobStore,
		cvStore:          cvStore,
		applicationStore: applicationStore,
		counts:           counts,
		transaction:      db.Transaction,
		status:           seedapimodels.StatusView{State: seedapimodels.SeedStateIdle},
	}
}

type impl struct {
	generator        yagptclient.Provider
	jobStore         jobstore.Provider
	cvStore          cvstore.Provider
	applicationStore applicationstore.Provider
	counts           Counts
	transaction      func(fn func(tx *gorm.DB) error) error

	mu     sync.Mutex
	status seedapimodels.StatusView
}

type rawJob struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type rawCv struct {
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	Skills     []string `json:"skills"`
	Experience []string `json:"experience"`
}

func (i *impl) Status() seedapimodels.StatusView {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.status
}

func (i *impl) Ready() error {
	status := i.Status()
	switch status.State {
	case seedapimodels.SeedStateLoading:
		return errors.Wrap(models.ErrDataNotLoaded, "demo data is loading")
	case seedapimodels.SeedStateFailed:
		return errors.Wrap(models.ErrDataNotLoaded, status.Error)
	}
	return nil
}

func (i *impl) Run(ctx context.Context) error {
	if !i.begin() {
		return nil
	}
	logger := log.WithField("task", "seed")

	loaded, err := i.loadedCounts()
	if err != nil {
		logger.WithError(err).Error("demo data check failed")
		i.finish(seedapimodels.StatusView{State: seedapimodels.SeedStateFailed, Error: ErrorMessage})
		return errors.Wrap(err, ErrorMessage)
	}
	if loaded != nil {
		logger.
			WithField("jobs", loaded.JobCount).
			WithField("cvs", loaded.CvCount).
			Info("demo data already stored")
		i.finish(*loaded)
		return nil
	}
	logger.Info("loading demo data")

	jobs, cvs, err := i.generate(ctx)
	if err == nil && helpers.IsContextDone(ctx) {
		err = errors.New("demo data load cancelled")
	}
	if err == nil {
		err = i.transaction(func(tx *gorm.DB) error {
			return i.store(tx, jobs, cvs)
		})
	}
	if err != nil {
		logger.WithError(err).Error("demo data load failed")
		i.finish(seedapimodels.StatusView{State: seedapimodels.SeedStateFailed, Error: ErrorMessage})
		return errors.Wrap(err, ErrorMessage)
	}
	logger.
		WithField("jobs", len(jobs)).
		WithField("cvs", len(cvs)).
		Info("demo data loaded")
	i.finish(seedapimodels.StatusView{State: seedapimodels.SeedStateLoaded, JobCount: len(jobs), CvCount: len(cvs)})
	return nil
}

// begin moves the state to loading unless data is loaded or already loading.
func (i *impl) begin() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.status.State == seedapimodels.SeedStateLoaded || i.status.State == seedapimodels.SeedStateLoading {
		return false
	}
	i.status = seedapimodels.StatusView{State: seedapimodels.SeedStateLoading}
	return true
}

// loadedCounts reports the stored demo data left by an earlier run, nil when there is none.
func (i *impl) loadedCounts() (*seedapimodels.StatusView, error) {
	marker, err := i.cvStore.GetByUserID(GeneratedUserID(0))
	if err != nil {
		return nil, errors.Wrap(err, "cv read failed")
	}
	jobs, err := i.jobStore.ListByEmployer(models.DemoEmployerID)
	if err != nil {
		return nil, errors.Wrap(err, "jobs read failed")
	}
	if marker == nil && len(jobs) == 0 {
		return nil, nil
	}
	cvs, err := i.cvStore.List()
	if err != nil {
		return nil, errors.Wrap(err, "cvs read failed")
	}
	cvCount := 0
	for _, rec := range cvs {
		if strings.HasPrefix(rec.UserID, generatedUserIDPrefix) {
			cvCount++
		}
	}
	return &seedapimodels.StatusView{State: seedapimodels.SeedStateLoaded, JobCount: len(jobs), CvCount: cvCount}, nil
}

func (i *impl) finish(status seedapimodels.StatusView) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.status = status
}

func (i *impl) generate(ctx context.Context) (jobs []rawJob, cvs []rawCv, err error) {
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		text, err := i.generator.GenerateByPromptAndText(gCtx, systemPrompt, jobsPrompt(i.counts.Jobs))
		if err != nil {
			return errors.Wrap(err, "jobs generation failed")
		}
		return errors.Wrap(decodeArray(text, &jobs), "jobs response is not valid")
	})
	g.Go(func() error {
		text, err := i.generator.GenerateByPromptAndText(gCtx, systemPrompt, cvsPrompt(i.counts.Cvs))
		if err != nil {
			return errors.Wrap(err, "cvs generation failed")
		}
		return errors.Wrap(decodeArray(text, &cvs), "cvs response is not valid")
	})
	if err = g.Wait(); err != nil {
		return nil, nil, err
	}
	return jobs, cvs, nil
}

func (i *impl) store(tx *gorm.DB, jobs []rawJob, cvs []rawCv) error {
	jobStore := i.jobStore.WithTx(tx)
	cvStore := i.cvStore.WithTx(tx)
	applicationStore := i.applicationStore.WithTx(tx)
	now := time.Now()
	jobIDs := make([]string, 0, len(jobs))
	for n, item := range jobs {
		clicks := int64(rand.Intn(250) + 20)
		views := clicks + int64(rand.Intn(800)+50)
		id, err := jobStore.Create(dbmodels.Job{
			BaseModel: dbmodels.BaseModel{
				CreatedAt: now.Add(-time.Duration(n) * time.Minute),
			},
			Title:       strings.TrimSpace(item.Title),
			Company:     strings.TrimSpace(item.Company),
			Location:    strings.TrimSpace(item.Location),
			Description: strings.TrimSpace(item.Description),
			EmployerID:  models.DemoEmployerID,
			Views:       views,
			Clicks:      clicks,
		})
		if err != nil {
			return errors.Wrap(err, "job store failed")
		}
		jobIDs = append(jobIDs, id)
	}
	userIDs := make([]string, 0, len(cvs))
	for n, item := range cvs {
		userID := GeneratedUserID(n)
		_, err := cvStore.Create(dbmodels.Cv{
			UserID:     userID,
			Name:       strings.TrimSpace(item.Name),
			Title:      strings.TrimSpace(item.Title),
			Skills:     dbmodels.StringList(item.Skills),
			Experience: dbmodels.StringList(item.Experience),
		})
		if err != nil {
			return errors.Wrap(err, "cv store failed")
		}
		userIDs = append(userIDs, userID)
	}
	if len(jobIDs) > 5 && len(userIDs) > 8 {
		for _, rec := range demoApplications(now, jobIDs, userIDs) {
			if _, err := applicationStore.Create(rec); err != nil {
				return errors.Wrap(err, "application store failed")
			}
		}
	}
	return nil
}

func GeneratedUserID(n int) string {
	return generatedUserIDPrefix + strconv.Itoa(n)
}

// decodeArray decodes the first JSON array found in text, ignoring any
// surrounding prose or code fences.
func decodeArray(text string, v interface{}) error {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end < start {
		return errors.New("no JSON array in response")
	}
	return json.Unmarshal([]byte(text[start:end+1]), v)
}
