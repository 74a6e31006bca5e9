package controllers

import (
	"bytes"
	"io"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	authutils "job-portal-backend/lib/utils/auth-utils"
	"job-portal-backend/models"
	apimodels "job-portal-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("request body parse failed")
		return errors.New("could not read the request data")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := strings.TrimSpace(ctx.Params("id"))
	if id == "" {
		return "", errors.New("id is required")
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("user_id", authutils.GetStringClaim(ctx, "sub")).
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path())
}

var errorStatuses = []struct {
	err    error
	status int
}{
	{models.ErrNotFound, fiber.StatusNotFound},
	{models.ErrIllegalTransition, fiber.StatusConflict},
	{models.ErrBusy, fiber.StatusConflict},
	{models.ErrValidation, fiber.StatusBadRequest},
	{models.ErrForbidden, fiber.StatusForbidden},
	{models.ErrDataNotLoaded, fiber.StatusServiceUnavailable},
	{models.ErrUnavailable, fiber.StatusServiceUnavailable},
}

// ErrorStatus maps a handler error to its HTTP status.
func ErrorStatus(err error) int {
	for _, item := range errorStatuses {
		if errors.Is(err, item.err) {
			return item.status
		}
	}
	return fiber.StatusInternalServerError
}

// SendError answers with the error text for known errors and with msg otherwise.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	status := ErrorStatus(err)
	if status == fiber.StatusInternalServerError {
		logger.WithError(err).Error(msg)
		return ctx.Status(status).JSON(apimodels.NewError(msg))
	}
	logger.WithError(err).Warn(msg)
	return ctx.Status(status).JSON(apimodels.NewError(err.Error()))
}

func (c *BaseAPIController) SendFile(ctx *fiber.Ctx, fileName, contentType string, body []byte) error {
	return c.SendStream(ctx, fileName, contentType, bytes.NewReader(body))
}

func (c *BaseAPIController) SendStream(ctx *fiber.Ctx, fileName, contentType string, body io.Reader) error {
	ctx.Set(fiber.HeaderContentType, contentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+url.PathEscape(fileName)+`"`)
	return ctx.SendStream(body)
}
