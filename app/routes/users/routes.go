package users

import (
	"asistencia/app/config"
	"asistencia/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupUsersRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/users", auth.RequireUser, GetUsersAPI)
	api.Get("/user/:email", auth.RequireUser, GetUserByEmailAPI)

	// Raw dump including stored credentials. Development convenience only;
	// never expose on a production surface.
	if config.IsDevelopment() {
		api.Get("/debug/users", GetRawUsersAPI)
	}
}
