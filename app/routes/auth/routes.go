package auth

import "github.com/gofiber/fiber/v2"

func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/login", LoginAPI)
	api.Post("/signup", SignupAPI)
	api.Post("/recover-password", RecoverPasswordAPI)
	api.Post("/reset-password", ResetPasswordAPI)
}
