package middleware

import (
	"github.com/gofiber/fiber/v2"
	authutils "job-portal-backend/lib/utils/auth-utils"
	"job-portal-backend/models"
	apimodels "job-portal-backend/models/api"
)

func GetUserID(ctx *fiber.Ctx) string {
	return authutils.GetStringClaim(ctx, "sub")
}

func GetUserEmail(ctx *fiber.Ctx) string {
	return authutils.GetStringClaim(ctx, "email")
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	return models.UserRole(authutils.GetStringClaim(ctx, "role"))
}

func RoleRequired(role models.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if GetUserID(ctx) == "" || GetUserRole(ctx) != role {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation is available to the " + role.ToHuman() + " only"))
		}
		return ctx.Next()
	}
}

func EmployeeRequired() fiber.Handler {
	return RoleRequired(models.UserRoleEmployee)
}

func EmployerRequired() fiber.Handler {
	return RoleRequired(models.UserRoleEmployer)
}
