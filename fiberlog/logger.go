package fiberlog

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// getLogrusFields evaluates the tags, dropping empty strings.
func getLogrusFields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	f := make(log.Fields)
	for k, ft := range ftm {
		value := ft(c, d)
		if strValue, ok := value.(string); ok && strValue == "" {
			continue
		}
		f[k] = value
	}
	return f
}

// New returns the access log middleware: one entry per request, leveled by status.
func New(config ...Config) fiber.Handler {
	cfg := configDefault(config...)
	logger := cfg.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	pid := os.Getpid()
	ftm := getFuncTagMap(cfg)
	return func(c *fiber.Ctx) error {
		d := &data{
			pid:   pid,
			start: time.Now(),
		}
		err := c.Next()
		d.end = time.Now()
		if c.Method() == fiber.MethodOptions || (cfg.Skip != nil && cfg.Skip(c)) {
			return err
		}
		fields := getLogrusFields(ftm, c, d)
		status := responseStatus(c, err)
		if _, ok := fields[TagStatus]; ok {
			fields[TagStatus] = status
		}
		logger.WithFields(fields).Log(levelByStatus(status), getMessage(c))
		return err
	}
}

// responseStatus accounts for errors the app error handler has not written yet.
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}

func levelByStatus(status int) log.Level {
	switch {
	case status >= fiber.StatusInternalServerError:
		return log.ErrorLevel
	case status >= fiber.StatusMultipleChoices:
		return log.WarnLevel
	}
	return log.InfoLevel
}

func getMessage(c *fiber.Ctx) string {
	return "api request " + c.Method() + " " + c.Route().Path
}
