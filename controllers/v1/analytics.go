package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"job-portal-backend/controllers"
	"job-portal-backend/lib/analytics"
	"job-portal-backend/middleware"
	apimodels "job-portal-backend/models/api"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type analyticsApiController struct {
	controllers.BaseAPIController
}

func InitAnalyticsApiRouters(app *fiber.App) {
	controller := analyticsApiController{}
	app.Route("analytics", func(router fiber.Router) {
		router.Use(middleware.EmployerRequired())
		router.Get("jobs", controller.jobs)
		router.Get("jobs/export", controller.jobsExport)
	})
}

// @Summary Job analytics
// @Tags Analytics
// @Description Views, clicks, applications and rates per employer job
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=analyticsapimodels.Summary}
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/analytics/jobs [get]
func (c *analyticsApiController) jobs(ctx *fiber.Ctx) error {
	data, err := analytics.Instance.Jobs(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to build job analytics")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Job analytics. Export to Excel
// @Tags Analytics
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/analytics/jobs/export [get]
func (c *analyticsApiController) jobsExport(ctx *fiber.Ctx) error {
	data, err := analytics.Instance.JobsExportToXls(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to export job analytics")
	}
	fileName := fmt.Sprintf("job-analytics-%v.xlsx", time.Now().Format("20060102-150405"))
	return c.SendStream(ctx, fileName, xlsxContentType, data)
}
