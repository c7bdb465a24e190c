package auth

import (
	"database/sql"
	"log"
	"strconv"

	"asistencia/app/config"

	"github.com/gofiber/fiber/v2"
)

// UserIDHeader carries the caller's numeric user id. It is a plain integer,
// not a signed token.
const UserIDHeader = "X-User-Id"

// RequireUser gates a route on the X-User-Id header. This is a capability
// check only: it verifies that the header holds the id of an existing user,
// not that the caller owns any credential. On success the resolved user is
// attached to the request locals.
func RequireUser(c *fiber.Ctx) error {
	raw := c.Get(UserIDHeader)
	if raw == "" {
		return c.Status(401).JSON(fiber.Map{"error": "No autorizado"})
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "No autorizado"})
	}

	user, err := getUserByID(config.GetDB(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(401).JSON(fiber.Map{"error": "No autorizado"})
		}
		log.Printf("auth gate: failed to fetch user %d: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Error del servidor"})
	}

	c.Locals("user_id", user.ID)
	c.Locals("user", user)
	return c.Next()
}
