package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-portal-backend/controllers"
	cvhandler "job-portal-backend/lib/cv"
	"job-portal-backend/middleware"
	apimodels "job-portal-backend/models/api"
	cvapimodels "job-portal-backend/models/api/cv"
)

type cvApiController struct {
	controllers.BaseAPIController
}

func InitCvApiRouters(app *fiber.App) {
	controller := cvApiController{}
	app.Route("profile/cv", func(router fiber.Router) {
		router.Use(middleware.EmployeeRequired())
		router.Get("", controller.get)
		router.Put("", controller.update)
		router.Post("file", controller.uploadFile)
	})
	app.Route("cvs", func(router fiber.Router) {
		router.Get("", middleware.EmployerRequired(), controller.search)
		router.Get(":id", controller.getByID)
		router.Get(":id/pdf", controller.exportPdf)
		router.Get(":id/file", controller.file)
	})
}

// @Summary My CV
// @Tags Candidate profile
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=cvapimodels.CvView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/profile/cv [get]
func (c *cvApiController) get(ctx *fiber.Ctx) error {
	view, err := cvhandler.Instance.Get(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to get the CV")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update my CV
// @Tags Candidate profile
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 cvapimodels.CvData	true	"request body"
// @Success 200 {object} apimodels.Response{data=cvapimodels.CvView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profile/cv [put]
func (c *cvApiController) update(ctx *fiber.Ctx) error {
	var payload cvapimodels.CvData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := cvhandler.Instance.Update(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to update the CV")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Upload CV file
// @Tags Candidate profile
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   file				formData	file	true	"CV document"
// @Success 200 {object} apimodels.Response{data=cvapimodels.CvView}
// @Failure 400 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/profile/cv/file [post]
func (c *cvApiController) uploadFile(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("file is required"))
	}
	reader, err := file.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to read the CV file")
	}
	defer reader.Close()
	view, err := cvhandler.Instance.UploadFile(ctx.UserContext(), middleware.GetUserID(ctx),
		file.Filename, reader, file.Size, file.Header.Get(fiber.HeaderContentType))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to upload the CV file")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Candidate pool
// @Tags Candidate profile
// @Description CVs whose name, title or skills contain the search term
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   search				query		string	false	"search term"
// @Success 200 {object} apimodels.Response{data=[]cvapimodels.CvView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cvs [get]
func (c *cvApiController) search(ctx *fiber.Ctx) error {
	var filter cvapimodels.CvFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := cvhandler.Instance.Search(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to search candidates")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get CV
// @Tags Candidate profile
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"CV ID"
// @Success 200 {object} apimodels.Response{data=cvapimodels.CvView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/cvs/{id} [get]
func (c *cvApiController) getByID(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := cvhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to get the CV")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary CV as PDF
// @Tags Candidate profile
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"CV ID"
// @Success 200
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cvs/{id}/pdf [get]
func (c *cvApiController) exportPdf(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileName, body, err := cvhandler.Instance.ExportPdf(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to export the CV")
	}
	return c.SendFile(ctx, fileName, "application/pdf", body)
}

// @Summary Download uploaded CV file
// @Tags Candidate profile
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"CV ID"
// @Success 200
// @Failure 404 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/cvs/{id}/file [get]
func (c *cvApiController) file(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileName, body, contentType, err := cvhandler.Instance.GetFile(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to get the CV file")
	}
	return c.SendFile(ctx, fileName, contentType, body)
}
