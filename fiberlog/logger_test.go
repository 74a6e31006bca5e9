package fiberlog

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestLogger() (*logrus.Logger, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger, buf
}

func TestNew(t *testing.T) {
	t.Run("client error", func(t *testing.T) {
		logger, buf := newTestLogger()
		app := fiber.New()
		app.Use(New(Config{
			Logger: logger,
			Tags:   []string{TagMethod, TagPath, TagStatus, TagUserID, "unknown"},
		}))
		app.Get("/jobs/:id", func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusNotFound).SendString("missing")
		})

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/jobs/42", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		entry := map[string]interface{}{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "warning", entry["level"])
		require.Equal(t, "api request GET /jobs/:id", entry["msg"])
		require.Equal(t, "GET", entry["method"])
		require.Equal(t, "/jobs/42", entry["path"])
		require.Equal(t, float64(404), entry["status"])
		require.NotContains(t, entry, "userID")
		require.NotContains(t, entry, "unknown")
	})
	t.Run("returned error", func(t *testing.T) {
		logger, buf := newTestLogger()
		app := fiber.New()
		app.Use(New(Config{Logger: logger}))
		app.Get("/boom", func(c *fiber.Ctx) error {
			return fiber.ErrServiceUnavailable
		})

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

		entry := map[string]interface{}{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "error", entry["level"])
		require.Equal(t, float64(503), entry["status"])
	})
	t.Run("skip", func(t *testing.T) {
		logger, buf := newTestLogger()
		app := fiber.New()
		app.Use(New(Config{
			Logger: logger,
			Skip: func(c *fiber.Ctx) bool {
				return c.Path() == "/status"
			},
		}))
		app.Get("/status", func(c *fiber.Ctx) error {
			return c.SendString("ok")
		})

		_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/status", nil))
		require.NoError(t, err)
		require.Zero(t, buf.Len())
	})
}
