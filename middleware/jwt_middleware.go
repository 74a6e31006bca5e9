package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"job-portal-backend/config"
	apimodels "job-portal-backend/models/api"
)

func AuthorizationRequired() fiber.Handler {
	return jwtware.New(jwtConfig("header:Authorization"))
}

// WsAuthorizationRequired also accepts the token as ?token= since browsers
// cannot set headers on a websocket upgrade.
func WsAuthorizationRequired() fiber.Handler {
	return jwtware.New(jwtConfig("header:Authorization,query:token"))
}

func jwtConfig(lookup string) jwtware.Config {
	return jwtware.Config{
		Claims:      jwt.MapClaims{},
		TokenLookup: lookup,
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(config.Conf.Auth.JWTSecret),
		},
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("invalid or expired session token"))
		},
	}
}
