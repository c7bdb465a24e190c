package main

import (
	"log"
	"path/filepath"
	"strings"

	"asistencia/app/config"
	"asistencia/app/database"
	"asistencia/app/routes/attendance"
	"asistencia/app/routes/auth"
	"asistencia/app/routes/grades"
	"asistencia/app/routes/levels"
	"asistencia/app/routes/students"
	"asistencia/app/routes/teachers"
	"asistencia/app/routes/users"
	"asistencia/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// errorHandler renders uncaught errors as the API's JSON error shape. The
// original error is logged; clients only see a generic message on 500s.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if code == fiber.StatusInternalServerError {
		log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(code).JSON(fiber.Map{"error": "Error del servidor"})
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func main() {
	config.Init()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	services.StartScheduler(auth.PurgeExpiredResetTokens)

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(config.AppConfig.AllowedOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, " + auth.UserIDHeader,
	}))

	// API routes
	auth.SetupAuthRoutes(app)
	users.SetupUsersRoutes(app)
	teachers.SetupTeachersRoutes(app)
	levels.SetupLevelsRoutes(app)
	grades.SetupGradesRoutes(app)
	students.SetupStudentsRoutes(app)
	attendance.SetupAttendanceRoutes(app)

	// Anything under /api that no handler claimed is a JSON 404.
	app.Use("/api", func(c *fiber.Ctx) error {
		return c.Status(404).JSON(fiber.Map{"error": "No encontrado"})
	})

	// Static frontend. Unmatched non-API paths fall back to the SPA shell so
	// client-side routing keeps working on deep links.
	staticDir := config.AppConfig.StaticDir
	app.Static("/", staticDir)
	app.Get("/*", func(c *fiber.Ctx) error {
		return c.SendFile(filepath.Join(staticDir, "index.html"))
	})

	log.Printf("Server starting on port %s (%s)", config.AppConfig.Port, config.AppConfig.Env)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
