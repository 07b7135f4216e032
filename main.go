package main

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"

	"scholarflow/app/config"
	"scholarflow/app/logger"
	"scholarflow/app/routes/attendance"
	"scholarflow/app/routes/audit"
	"scholarflow/app/routes/auth"
	"scholarflow/app/routes/classes"
	"scholarflow/app/routes/dashboard"
	"scholarflow/app/routes/imaging"
	"scholarflow/app/routes/notifications"
	"scholarflow/app/routes/reports"
	"scholarflow/app/routes/students"
	"scholarflow/app/routes/subjects"
	"scholarflow/app/routes/teachers"
	"scholarflow/app/services"
	"scholarflow/app/store"
)

// errorHandler maps service errors onto HTTP statuses. Validation failures
// carry the offending-record count so the caller can show it.
func errorHandler(c *fiber.Ctx, err error) error {
	var (
		validationErr     *services.ValidationError
		authorizationErr  *services.AuthorizationError
		notFoundErr       *services.NotFoundError
		authenticationErr *services.AuthenticationError
	)

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validationErr.Message,
			"count": validationErr.Count,
		})
	case errors.As(err, &authorizationErr):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": authorizationErr.Message})
	case errors.As(err, &notFoundErr):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": notFoundErr.Error()})
	case errors.As(err, &authenticationErr):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.LogLevel)
	if err := log.Initialize(cfg.LogDir); err != nil {
		log.Fatalf("initialize logger: %v", err)
	}

	var backend store.Backend
	if cfg.State.PostgresURI != "" {
		pg, err := store.NewPostgresBackend(cfg.State.PostgresURI)
		if err != nil {
			log.Fatalf("open postgres state backend: %v", err)
		}
		defer pg.Close()
		backend = pg
		log.Infof("state backend: postgres")
	} else {
		fb, err := store.NewFileBackend(cfg.State.Path)
		if err != nil {
			log.Fatalf("open file state backend: %v", err)
		}
		backend = fb
		log.Infof("state backend: file %s", cfg.State.Path)
	}

	svc := services.New(store.New(backend), log, cfg.SharedPassword)
	auth.SetSecret(cfg.JWTSecret)

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(fiberlogger.New())
	app.Use(cors.New())

	auth.SetupAuthRoutes(app, svc)
	dashboard.SetupDashboardRoutes(app, svc)
	students.SetupStudentsRoutes(app, svc)
	teachers.SetupTeachersRoutes(app, svc)
	classes.SetupClassesRoutes(app, svc)
	subjects.SetupSubjectsRoutes(app, svc)
	attendance.SetupAttendanceRoutes(app, svc)
	reports.SetupReportsRoutes(app, svc)
	notifications.SetupNotificationsRoutes(app, svc)
	audit.SetupAuditRoutes(app, svc)
	imaging.SetupImagingRoutes(app, imaging.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model))

	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	log.Infof("Server starting on %s", cfg.ListenAddr)
	log.Fatalf("%v", app.Listen(cfg.ListenAddr))
}
