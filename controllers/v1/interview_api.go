package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-portal-backend/controllers"
	"job-portal-backend/lib/calendar"
	interviewhandler "job-portal-backend/lib/interview"
	"job-portal-backend/middleware"
	apimodels "job-portal-backend/models/api"
	interviewapimodels "job-portal-backend/models/api/interview"
)

type interviewApiController struct {
	controllers.BaseAPIController
}

func InitInterviewApiRouters(app *fiber.App) {
	controller := interviewApiController{}
	app.Route("interviews", func(router fiber.Router) {
		router.Post("", middleware.EmployerRequired(), controller.schedule)
		router.Get("upcoming", middleware.EmployerRequired(), controller.upcoming)
		router.Get("", middleware.EmployeeRequired(), controller.listMine)
		router.Get(":id/ics", controller.calendar)
	})
}

// @Summary Schedule interview
// @Tags Interviews
// @Description Creates the interview and moves the application to Interviewing
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 interviewapimodels.InterviewData	true	"request body"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews [post]
func (c *interviewApiController) schedule(ctx *fiber.Ctx) error {
	var payload interviewapimodels.InterviewData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := interviewhandler.Instance.Schedule(ctx.UserContext(), middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to schedule the interview")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Upcoming interviews
// @Tags Interviews
// @Description Interviews for the employer's jobs, soonest first
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]interviewapimodels.UpcomingView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/upcoming [get]
func (c *interviewApiController) upcoming(ctx *fiber.Ctx) error {
	list, err := interviewhandler.Instance.Upcoming(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to list interviews")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary My interviews
// @Tags Interviews
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]interviewapimodels.UpcomingView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews [get]
func (c *interviewApiController) listMine(ctx *fiber.Ctx) error {
	list, err := interviewhandler.Instance.ListForCandidate(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to list interviews")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Interview calendar file
// @Tags Interviews
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"interview ID"
// @Success 200
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/interviews/{id}/ics [get]
func (c *interviewApiController) calendar(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileName, body, err := interviewhandler.Instance.Calendar(middleware.GetUserID(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to build the calendar file")
	}
	return c.SendFile(ctx, fileName, calendar.ContentType, body)
}
