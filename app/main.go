package main

import (
	"errors"
	"os"
	"os/signal"
	"sync"
	"time"

	"hospital/config"
	"hospital/middleware"
	"hospital/services/hospital/delivery"
	"hospital/services/hospital/repository"
	"hospital/services/hospital/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var log *logrus.Logger
var wg sync.WaitGroup

const repoTimeout = 30 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, reading configuration from environment")
	}

	log = config.GetLogrusInstance()

	startHTTP()
}

func startHTTP() {
	log.Info("Starting HTTP")

	engine := html.New("./views", ".html")

	cfg := config.GetFiberConfig()
	cfg.Views = engine
	cfg.ErrorHandler = serverError

	app := fiber.New(cfg)

	app.Use(helmet.New())
	app.Use(compress.New())
	app.Use(recover.New())
	app.Use(middleware.MethodOverride())
	app.Static("/", "./public")

	db, err := config.BootDB()
	if err != nil {
		log.Fatalf("Failed to boot DB: %v", err)
		return
	}

	flash := middleware.NewFlash()

	patientRepo := repository.NewPatientRepository(db)
	roomRepo := repository.NewRoomRepository(db)

	patientAudit := config.NewAuditLogger(config.GetPatientAuditLogPath(), false)
	roomAudit := config.NewAuditLogger(config.GetRoomAuditLogPath(), true)

	patientUC := usecase.NewPatientUseCase(patientRepo, patientAudit, repoTimeout)
	roomUC := usecase.NewRoomUseCase(roomRepo, roomAudit, repoTimeout)

	delivery.NewPageDelivery(app, flash)
	delivery.NewPatientDelivery(app, patientUC, flash)
	delivery.NewRoomDelivery(app, roomUC, flash)

	app.Use(delivery.NotFound(log))

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server on port %s", config.GetFiberHttpPort())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, os.Kill)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	wg.Wait()
	log.Info("Server shut down gracefully")
}

// serverError is the top-level boundary: failures are logged with detail
// server-side while the user only ever sees the generic error page.
func serverError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	log.Errorf("%d - %s - %v", code, c.OriginalURL(), err)

	return c.Status(code).Render("error", fiber.Map{
		"StatusCode": code,
		"Message":    "Something went wrong on the server. Please try again later.",
	})
}
