package users

import (
	"database/sql"
	"log"

	"asistencia/app/config"
	"asistencia/app/database"
	"asistencia/app/models"

	"github.com/gofiber/fiber/v2"
)

var (
	getAllUsers    = database.GetAllUsers
	getUserByEmail = database.GetUserByEmail
)

func GetUsersAPI(c *fiber.Ctx) error {
	users, err := getAllUsers(config.GetDB())
	if err != nil {
		log.Printf("users: failed to fetch users: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Error del servidor"})
	}

	public := make([]models.PublicUser, len(users))
	for i, u := range users {
		public[i] = u.Public()
	}

	return c.JSON(fiber.Map{
		"users": public,
		"count": len(public),
	})
}

func GetUserByEmailAPI(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Email es obligatorio"})
	}

	user, err := getUserByEmail(config.GetDB(), email)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Usuario no encontrado"})
		}
		log.Printf("users: failed to fetch user by email: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Error del servidor"})
	}

	return c.JSON(fiber.Map{"user": user.Public()})
}

// GetRawUsersAPI returns full user rows, credential hash and recovery word
// included. Registered only when the app runs in development.
func GetRawUsersAPI(c *fiber.Ctx) error {
	users, err := getAllUsers(config.GetDB())
	if err != nil {
		log.Printf("users: failed to fetch raw users: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Error del servidor"})
	}

	return c.JSON(fiber.Map{
		"users": users,
		"count": len(users),
	})
}
