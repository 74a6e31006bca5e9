package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-portal-backend/controllers"
	companyprofilehandler "job-portal-backend/lib/company-profile"
	cvhandler "job-portal-backend/lib/cv"
	"job-portal-backend/middleware"
	"job-portal-backend/models"
	apimodels "job-portal-backend/models/api"
	sessionapimodels "job-portal-backend/models/api/session"
)

type sessionApiController struct {
	controllers.BaseAPIController
}

func InitSessionApiRouters(app *fiber.App) {
	controller := sessionApiController{}
	app.Route("session", func(router fiber.Router) {
		router.Post("start", controller.start)
	})
}

// @Summary Start session
// @Tags Session
// @Description Creates the CV (employee) or company profile (employer) on first sign-in and returns it
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=sessionapimodels.SessionView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/session/start [post]
func (c *sessionApiController) start(ctx *fiber.Ctx) error {
	view := sessionapimodels.SessionView{
		UserID: middleware.GetUserID(ctx),
		Email:  middleware.GetUserEmail(ctx),
		Role:   middleware.GetUserRole(ctx),
	}
	if view.UserID == "" || !view.Role.IsValid() {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("session token has no user or role"))
	}
	switch view.Role {
	case models.UserRoleEmployee:
		cv, err := cvhandler.Instance.EnsureProfile(view.UserID, view.Email)
		if err != nil {
			return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to prepare the candidate profile")
		}
		view.Cv = &cv
	case models.UserRoleEmployer:
		company, err := companyprofilehandler.Instance.EnsureProfile(view.UserID)
		if err != nil {
			return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to prepare the company profile")
		}
		view.Company = &company
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
