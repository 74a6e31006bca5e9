package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"job-portal-backend/controllers"
	applicationhandler "job-portal-backend/lib/application"
	filestorage "job-portal-backend/lib/file-storage"
	"job-portal-backend/middleware"
	apimodels "job-portal-backend/models/api"
	applicationapimodels "job-portal-backend/models/api/application"
)

type applicationApiController struct {
	controllers.BaseAPIController
}

func InitApplicationApiRouters(app *fiber.App) {
	controller := applicationApiController{}
	app.Route("applications", func(router fiber.Router) {
		router.Post("", middleware.EmployeeRequired(), controller.create)
		router.Get("", middleware.EmployeeRequired(), controller.listMine)
		router.Post("attachments", middleware.EmployeeRequired(), controller.uploadAttachment)
		router.Put(":id/status", middleware.EmployerRequired(), controller.updateStatus)
	})
	app.Route("jobs/:id/applicants", func(router fiber.Router) {
		router.Use(middleware.EmployerRequired())
		router.Get("", controller.applicants)
		router.Get("export", controller.export)
	})
}

// @Summary Apply for a job
// @Tags Applications
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicationapimodels.ApplyData	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications [post]
func (c *applicationApiController) create(ctx *fiber.Ctx) error {
	var payload applicationapimodels.ApplyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := applicationhandler.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to submit the application")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary My applications
// @Tags Applications
// @Description Applications of the current user grouped by status
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.StatusColumn}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications [get]
func (c *applicationApiController) listMine(ctx *fiber.Ctx) error {
	columns, err := applicationhandler.Instance.ListByUser(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to list applications")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(columns))
}

// @Summary Upload application attachment
// @Tags Applications
// @Description Stores a file and returns the attachment to send with the application
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   file				formData	file	true	"attachment"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.AttachmentData}
// @Failure 400 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/applications/attachments [post]
func (c *applicationApiController) uploadAttachment(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("file is required"))
	}
	reader, err := file.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to read the attachment")
	}
	defer reader.Close()
	contentType := file.Header.Get(fiber.HeaderContentType)
	key, err := filestorage.Instance.Upload(ctx.UserContext(), filestorage.FileKindAttachment,
		middleware.GetUserID(ctx), file.Filename, reader, file.Size, contentType)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to upload the attachment")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(applicationapimodels.AttachmentData{
		Name: file.Filename,
		Type: contentType,
		Key:  key,
	}))
}

// @Summary Change application status
// @Tags Applications
// @Description Moves the application along Applied, Under Review, Interviewing, Offer Received / Rejected
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"application ID"
// @Param	body body	 applicationapimodels.StatusData	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/{id}/status [put]
func (c *applicationApiController) updateStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicationapimodels.StatusData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := applicationhandler.Instance.UpdateStatus(ctx.UserContext(), middleware.GetUserID(ctx), id, payload.Status)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to change the application status")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Job applicants
// @Tags Applications
// @Description Applicants of the job, newest first, with counts per status
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"job ID"
// @Param   status				query		string	false	"status filter, all by default"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicantList}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/{id}/applicants [get]
func (c *applicationApiController) applicants(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := applicationhandler.Instance.Applicants(middleware.GetUserID(ctx), id, ctx.Query("status"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to list applicants")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Job applicants. Export to Excel
// @Tags Applications
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"job ID"
// @Param   status				query		string	false	"status filter, all by default"
// @Success 200
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/{id}/applicants/export [get]
func (c *applicationApiController) export(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := applicationhandler.Instance.ExportApplicants(middleware.GetUserID(ctx), id, ctx.Query("status"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to export applicants")
	}
	fileName := fmt.Sprintf("applicants-%v.xlsx", time.Now().Format("20060102-150405"))
	return c.SendStream(ctx, fileName, xlsxContentType, data)
}
