package grades

import (
	"asistencia/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupGradesRoutes(app *fiber.App) {
	api := app.Group("/api/grades")
	api.Use(auth.RequireUser)

	api.Get("/", GetGradesAPI)
	api.Get("/:id", GetGradeAPI)
	api.Get("/:id/students", GetGradeStudentsAPI)
	api.Post("/", CreateGradeAPI)
	api.Put("/:id", UpdateGradeAPI)
	api.Delete("/:id", DeleteGradeAPI)
}
