package savedjobshandler

import (
	"fmt"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"
)

// Provider holds each user's saved jobs for the session lifetime only.
type Provider interface {
	Toggle(userID, jobID string) (saved bool)
	Set(userID, jobID string, saved bool)
	IDs(userID string) map[string]bool
}

var Instance Provider

func NewHandler(sessionTTL time.Duration) {
	Instance = New(sessionTTL)
}

func New(sessionTTL time.Duration) Provider {
	return &impl{
		cache: cache.New(sessionTTL, sessionTTL),
	}
}

type impl struct {
	mu    sync.Mutex
	cache *cache.Cache
}

const cacheKeyPattern = "saved-jobs:%v"

func getCacheKey(userID string) string {
	return fmt.Sprintf(cacheKeyPattern, userID)
}

func (i *impl) Toggle(userID, jobID string) (saved bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	ids := i.load(userID)
	saved = !ids[jobID]
	i.store(userID, ids, jobID, saved)
	return saved
}

func (i *impl) Set(userID, jobID string, saved bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.store(userID, i.load(userID), jobID, saved)
}

func (i *impl) IDs(userID string) map[string]bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	ids := i.load(userID)
	result := make(map[string]bool, len(ids))
	for id := range ids {
		result[id] = true
	}
	return result
}

func (i *impl) load(userID string) map[string]bool {
	value, ok := i.cache.Get(getCacheKey(userID))
	if !ok {
		return map[string]bool{}
	}
	return value.(map[string]bool)
}

func (i *impl) store(userID string, ids map[string]bool, jobID string, saved bool) {
	if saved {
		ids[jobID] = true
	} else {
		delete(ids, jobID)
	}
	i.cache.Set(getCacheKey(userID), ids, cache.DefaultExpiration)
	log.
		WithField("user_id", userID).
		WithField("job_id", jobID).
		WithField("saved", saved).
		Debug("saved jobs changed")
}
