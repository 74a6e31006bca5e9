package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-portal-backend/controllers"
	companyprofilehandler "job-portal-backend/lib/company-profile"
	"job-portal-backend/middleware"
	apimodels "job-portal-backend/models/api"
	companyapimodels "job-portal-backend/models/api/company"
)

type companyApiController struct {
	controllers.BaseAPIController
}

func InitCompanyApiRouters(app *fiber.App) {
	controller := companyApiController{}
	app.Route("company", func(router fiber.Router) {
		router.Use(middleware.EmployerRequired())
		router.Get("", controller.get)
		router.Put("", controller.save)
		router.Post("logo", controller.uploadLogo)
	})
}

// InitFileApiRouters serves stored images that pages embed without a token.
func InitFileApiRouters(app *fiber.App) {
	controller := companyApiController{}
	app.Get("files/logo/:id", controller.logo)
}

// @Summary Company profile
// @Tags Company
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=companyapimodels.CompanyProfileView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/company [get]
func (c *companyApiController) get(ctx *fiber.Ctx) error {
	view, err := companyprofilehandler.Instance.Get(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to get the company profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update company profile
// @Tags Company
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 companyapimodels.CompanyProfileData	true	"request body"
// @Success 200 {object} apimodels.Response{data=companyapimodels.CompanyProfileView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/company [put]
func (c *companyApiController) save(ctx *fiber.Ctx) error {
	var payload companyapimodels.CompanyProfileData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := companyprofilehandler.Instance.Save(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to update the company profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Upload company logo
// @Tags Company
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   file				formData	file	true	"logo image"
// @Success 200 {object} apimodels.Response{data=companyapimodels.CompanyProfileView}
// @Failure 400 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/company/logo [post]
func (c *companyApiController) uploadLogo(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("file is required"))
	}
	reader, err := file.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to read the logo")
	}
	defer reader.Close()
	view, err := companyprofilehandler.Instance.UploadLogo(ctx.UserContext(), middleware.GetUserID(ctx),
		file.Filename, reader, file.Size, file.Header.Get(fiber.HeaderContentType))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to upload the logo")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Company logo image
// @Tags Company
// @Param   id		path		string	true	"employer user ID"
// @Success 200
// @Failure 404 {object} apimodels.Response
// @router /api/v1/files/logo/{id} [get]
func (c *companyApiController) logo(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body, contentType, err := companyprofilehandler.Instance.GetLogo(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to get the logo")
	}
	ctx.Set(fiber.HeaderContentType, contentType)
	return ctx.Send(body)
}
