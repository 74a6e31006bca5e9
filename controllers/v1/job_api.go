package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-portal-backend/controllers"
	jobhandler "job-portal-backend/lib/job"
	seedhandler "job-portal-backend/lib/seed"
	"job-portal-backend/middleware"
	apimodels "job-portal-backend/models/api"
	jobapimodels "job-portal-backend/models/api/job"
)

type jobApiController struct {
	controllers.BaseAPIController
}

func InitJobApiRouters(app *fiber.App) {
	controller := jobApiController{}
	app.Route("jobs", func(router fiber.Router) {
		router.Use(controller.dataLoaded)
		router.Get("", controller.search)
		router.Get("categories", controller.categories)
		router.Get("companies", controller.companies)
		router.Get("mine", middleware.EmployerRequired(), controller.listMine)
		router.Post("", middleware.EmployerRequired(), controller.create)
		router.Get(":id", controller.get)
		router.Post(":id/view", controller.view)
		router.Post(":id/click", controller.click)
		router.Post(":id/save", middleware.EmployeeRequired(), controller.toggleSaved)
	})
}

func (c *jobApiController) dataLoaded(ctx *fiber.Ctx) error {
	if err := seedhandler.Instance.Ready(); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Demo data is not available")
	}
	return ctx.Next()
}

// @Summary Search jobs
// @Tags Jobs
// @Description Jobs matching the filter, newest first
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   search				query		string	false	"title, company or description"
// @Param   location			query		string	false	"location substring"
// @Param   category			query		string	false	"category name"
// @Param   saved_only			query		bool	false	"only saved jobs"
// @Success 200 {object} apimodels.Response{data=[]jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs [get]
func (c *jobApiController) search(ctx *fiber.Ctx) error {
	var filter jobapimodels.JobFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := jobhandler.Instance.Search(middleware.GetUserID(ctx), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to search jobs")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Job categories
// @Tags Jobs
// @Description Static job categories with the number of matching jobs
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]jobapimodels.CategoryCount}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/categories [get]
func (c *jobApiController) categories(ctx *fiber.Ctx) error {
	list, err := jobhandler.Instance.CategoryCounts()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to count jobs by category")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Companies
// @Tags Jobs
// @Description Companies with their jobs, most jobs first
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]jobapimodels.CompanyView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/companies [get]
func (c *jobApiController) companies(ctx *fiber.Ctx) error {
	list, err := jobhandler.Instance.Companies()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to aggregate companies")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Employer jobs
// @Tags Jobs
// @Description Jobs posted by the current employer with applicant counts
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]jobapimodels.EmployerJobView}
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/mine [get]
func (c *jobApiController) listMine(ctx *fiber.Ctx) error {
	list, err := jobhandler.Instance.ListByEmployer(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to list employer jobs")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Post a job
// @Tags Jobs
// @Description Creates a job and notifies matching job alerts
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 jobapimodels.JobData	true	"request body"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs [post]
func (c *jobApiController) create(ctx *fiber.Ctx) error {
	var payload jobapimodels.JobData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := jobhandler.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to post the job")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Get job
// @Tags Jobs
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"job ID"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/{id} [get]
func (c *jobApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := jobhandler.Instance.GetByID(middleware.GetUserID(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to get the job")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Record job view
// @Tags Jobs
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"job ID"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/jobs/{id}/view [post]
func (c *jobApiController) view(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = jobhandler.Instance.RecordView(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to record the job view")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Record job click
// @Tags Jobs
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"job ID"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/jobs/{id}/click [post]
func (c *jobApiController) click(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = jobhandler.Instance.RecordClick(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to record the job click")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Save or unsave job
// @Tags Jobs
// @Description Toggles the job in the session saved list
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"job ID"
// @Success 200 {object} apimodels.Response{data=bool}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/jobs/{id}/save [post]
func (c *jobApiController) toggleSaved(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	saved, err := jobhandler.Instance.ToggleSaved(middleware.GetUserID(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to save the job")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(saved))
}
