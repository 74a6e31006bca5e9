package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-portal-backend/controllers"
	seedhandler "job-portal-backend/lib/seed"
	apimodels "job-portal-backend/models/api"
)

type seedApiController struct {
	controllers.BaseAPIController
}

// InitSeedApiRouters is mounted without authorization so clients can poll the load state.
func InitSeedApiRouters(app *fiber.App) {
	controller := seedApiController{}
	app.Route("seed", func(router fiber.Router) {
		router.Get("status", controller.status)
	})
}

// InitSeedRunApiRouters exposes the manual reload after a failed seed.
func InitSeedRunApiRouters(app *fiber.App) {
	controller := seedApiController{}
	app.Post("seed", controller.run)
}

// @Summary Demo data status
// @Tags Seed
// @Success 200 {object} apimodels.Response{data=seedapimodels.StatusView}
// @router /api/v1/seed/status [get]
func (c *seedApiController) status(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(seedhandler.Instance.Status()))
}

// @Summary Load demo data
// @Tags Seed
// @Description Generates demo jobs and candidates; a no-op once data is loaded
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=seedapimodels.StatusView}
// @Failure 503 {object} apimodels.Response
// @router /api/v1/seed [post]
func (c *seedApiController) run(ctx *fiber.Ctx) error {
	if err := seedhandler.Instance.Run(ctx.UserContext()); err != nil {
		c.GetLogger(ctx).WithError(err).Error("demo data load failed")
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(apimodels.NewError(seedhandler.ErrorMessage))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(seedhandler.Instance.Status()))
}
