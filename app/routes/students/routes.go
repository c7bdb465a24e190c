package students

import (
	"asistencia/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.RequireUser)

	api.Get("/", GetStudentsAPI)
	api.Get("/:id", GetStudentAPI)
	api.Post("/", CreateStudentAPI)
	api.Put("/:id", UpdateStudentAPI)
	api.Delete("/:id", DeleteStudentAPI)
}
