package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
	"job-portal-backend/config"
	apiv1 "job-portal-backend/controllers/v1"
	"job-portal-backend/fiberlog"
	"job-portal-backend/initializers"
	authutils "job-portal-backend/lib/utils/auth-utils"
	"job-portal-backend/lib/ws"
	"job-portal-backend/middleware"
	"job-portal-backend/models"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // cv and logo uploads
	})
	app.Use(fiberRecover.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	apiv1.InitSeedApiRouters(apiV1)
	apiv1.InitFileApiRouters(apiV1)

	// everything below requires a session token
	apiV1.Use(middleware.AuthorizationRequired())
	apiV1.Use(middleware.RateLimit())
	apiv1.InitSessionApiRouters(apiV1)
	apiv1.InitSeedRunApiRouters(apiV1)
	apiv1.InitJobApiRouters(apiV1)
	apiv1.InitApplicationApiRouters(apiV1)
	apiv1.InitInterviewApiRouters(apiV1)
	apiv1.InitCvApiRouters(apiV1)
	apiv1.InitCompanyApiRouters(apiV1)
	apiv1.InitAlertApiRouters(apiV1)
	apiv1.InitNotificationApiRouters(apiV1)
	apiv1.InitAnalyticsApiRouters(apiV1)

	//websocket
	wsApp := fiber.New()
	app.Mount("/ws", wsApp)
	wsApp.Use(middleware.WsAuthorizationRequired())
	ws.InitWs(wsApp)

	if config.Conf.IsDemoMode() {
		logDemoTokens()
	}

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		_ = <-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}

func logDemoTokens() {
	expire := time.Duration(config.Conf.Auth.JWTExpireInSec) * time.Second
	demoUsers := []struct {
		id    string
		email string
		role  models.UserRole
	}{
		{models.DemoEmployeeID, models.DemoEmployeeEmail, models.UserRoleEmployee},
		{models.DemoEmployerID, models.DemoEmployerEmail, models.UserRoleEmployer},
	}
	for _, user := range demoUsers {
		token, err := authutils.GetToken(config.Conf.Auth.JWTSecret, expire, user.id, user.email, user.role)
		if err != nil {
			log.WithError(err).Error("failed to issue demo token")
			continue
		}
		log.
			WithField("user_id", user.id).
			WithField("role", user.role).
			WithField("token", token).
			Info("demo session token")
	}
}
