package levels

import (
	"asistencia/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupLevelsRoutes(app *fiber.App) {
	api := app.Group("/api/levels")
	api.Use(auth.RequireUser)

	api.Get("/", GetLevelsAPI)
	api.Get("/:id", GetLevelAPI)
	api.Post("/", CreateLevelAPI)
	api.Put("/:id", UpdateLevelAPI)
	api.Delete("/:id", DeleteLevelAPI)
}
