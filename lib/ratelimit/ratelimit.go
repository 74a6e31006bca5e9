package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const keyPrefix = "job-portal:ratelimit"

var fixedWindowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

var Instance Provider

type Provider interface {
	Allow(ctx context.Context, key string) bool
}

// NewHandler keeps Instance nil when no redis address is configured.
func NewHandler(addr, password string, limit int64, window time.Duration) error {
	if strings.TrimSpace(addr) == "" {
		log.Info("rate limit disabled, redis address is not configured")
		return nil
	}
	instance, err := New(redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	}), limit, window)
	if err != nil {
		return err
	}
	Instance = instance
	return nil
}

func New(client *redis.Client, limit int64, window time.Duration) (Provider, error) {
	if limit <= 0 || window <= 0 {
		return nil, errors.New("rate limiter requires positive limit and window")
	}
	return impl{
		client: client,
		limit:  limit,
		window: window,
	}, nil
}

type impl struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// Allow counts the request in the current fixed window.
// Redis failures let the request through.
func (i impl) Allow(ctx context.Context, key string) bool {
	windowMs := i.window.Milliseconds()
	if windowMs <= 0 {
		return true
	}
	key = strings.TrimSpace(key)
	if key == "" {
		key = "unknown"
	}
	slot := time.Now().UTC().UnixMilli() / windowMs
	redisKey := fmt.Sprintf("%s:%s:%d", keyPrefix, key, slot)

	ctx, cancel := context.WithTimeout(ctx, 250*time.Millisecond)
	defer cancel()
	count, err := fixedWindowScript.Run(ctx, i.client, []string{redisKey}, windowMs).Int64()
	if err != nil {
		log.WithError(err).WithField("key", key).Warn("rate limit check failed")
		return true
	}
	return count <= i.limit
}
