package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-portal-backend/controllers"
	jobalerthandler "job-portal-backend/lib/job-alert"
	"job-portal-backend/middleware"
	apimodels "job-portal-backend/models/api"
	alertapimodels "job-portal-backend/models/api/alert"
)

type alertApiController struct {
	controllers.BaseAPIController
}

func InitAlertApiRouters(app *fiber.App) {
	controller := alertApiController{}
	app.Route("alerts", func(router fiber.Router) {
		router.Use(middleware.EmployeeRequired())
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Delete(":id", controller.remove)
	})
}

// @Summary Job alerts
// @Tags Job alerts
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]alertapimodels.AlertView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/alerts [get]
func (c *alertApiController) list(ctx *fiber.Ctx) error {
	list, err := jobalerthandler.Instance.List(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to list job alerts")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Create job alert
// @Tags Job alerts
// @Description Keyword or category alert; an existing alert with the same value is returned with duplicate=true
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 alertapimodels.AlertData	true	"request body"
// @Success 200 {object} apimodels.Response{data=alertapimodels.CreateResult}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/alerts [post]
func (c *alertApiController) create(ctx *fiber.Ctx) error {
	var payload alertapimodels.AlertData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := jobalerthandler.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to create the job alert")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Remove job alert
// @Tags Job alerts
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"alert ID"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/alerts/{id} [delete]
func (c *alertApiController) remove(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = jobalerthandler.Instance.Remove(middleware.GetUserID(ctx), id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to remove the job alert")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
