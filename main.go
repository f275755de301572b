package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"talenttrek-backend/config"
	apiv1 "talenttrek-backend/controllers/v1"
	_ "talenttrek-backend/docs"
	"talenttrek-backend/fiberlog"
	"talenttrek-backend/initializers"
	"talenttrek-backend/middleware"
)

// @title TalentTrek API
// @version 1.0
// @description Генерация вопросов для интервью по должности
// @BasePath /
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New()
	app.Use(fiberRecover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: fiberlog.RequestIDLocal,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(config.Conf.CorsOrigins(), ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST",
	}))

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	app.Get("/", apiv1.Greeting)

	//api
	api := fiber.New()
	api.Use(fiberlog.New(*initializers.LoggerConfig))
	api.Use(middleware.ErrNotify(config.Conf.ErrNotify.Addr))
	api.Use(middleware.WithBodyLimit(int64(config.Conf.App.BodyLimit)))
	app.Mount("/api", api)
	apiv1.InitInterviewApiRouters(api)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-c
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	port := config.Conf.ListenPort()
	log.WithField("port", port).Info("Server is running")
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
