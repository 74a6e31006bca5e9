package middleware

import (
	"github.com/gofiber/fiber/v2"
	"job-portal-backend/lib/ratelimit"
	apimodels "job-portal-backend/models/api"
)

// RateLimit keys requests by user id, falling back to the client ip.
// Without a configured limiter every request passes.
func RateLimit() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if ratelimit.Instance == nil {
			return ctx.Next()
		}
		key := GetUserID(ctx)
		if key == "" {
			key = "ip:" + ctx.IP()
		}
		if !ratelimit.Instance.Allow(ctx.UserContext(), key) {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(apimodels.NewError("too many requests"))
		}
		return ctx.Next()
	}
}
