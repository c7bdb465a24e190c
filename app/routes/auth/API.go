package auth

import (
	"database/sql"
	"log"

	"asistencia/app/config"
	"asistencia/app/database"
	"asistencia/app/models"
	"asistencia/app/validate"

	"github.com/gofiber/fiber/v2"
)

// Query functions are package variables so tests can substitute storage.
var (
	getUserByEmail     = database.GetUserByEmail
	getUserByID        = database.GetUserByID
	getUserByRecovery  = database.GetUserByEmailAndRecovery
	createUser         = database.CreateUser
	updateUserPassword = database.UpdateUserPassword
)

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Solicitud inválida"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Faltan campos obligatorios"})
	}

	user, err := getUserByEmail(config.GetDB(), req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			// Same response as a wrong password: never reveal which field failed.
			return c.Status(401).JSON(fiber.Map{"error": "Credenciales inválidas"})
		}
		log.Printf("login: failed to fetch user: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Error del servidor"})
	}

	if !CheckPasswordHash(req.Password, user.Password) {
		return c.Status(401).JSON(fiber.Map{"error": "Credenciales inválidas"})
	}

	return c.JSON(fiber.Map{"user": user.Public()})
}

func SignupAPI(c *fiber.Ctx) error {
	type SignupRequest struct {
		Name         string `json:"name" validate:"required"`
		Email        string `json:"email" validate:"required,email"`
		Password     string `json:"password" validate:"required"`
		RecoveryWord string `json:"recoveryWord" validate:"required"`
		Role         string `json:"role" validate:"required"`
	}

	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Solicitud inválida"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Faltan campos obligatorios"})
	}

	role := models.Role(req.Role)
	if !role.Valid() {
		return c.Status(400).JSON(fiber.Map{"error": "Rol inválido"})
	}

	// Fast path only; the unique index on email is the authoritative guard
	// against a concurrent signup with the same address.
	if _, err := getUserByEmail(config.GetDB(), req.Email); err == nil {
		return c.Status(400).JSON(fiber.Map{"error": "El email ya existe"})
	} else if err != sql.ErrNoRows {
		log.Printf("signup: failed to check email: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Error del servidor"})
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		log.Printf("signup: failed to hash password: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Error del servidor"})
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Password:     hashed,
		RecoveryWord: req.RecoveryWord,
		Role:         role,
	}
	if err := createUser(config.GetDB(), user); err != nil {
		if database.IsUniqueViolation(err) {
			return c.Status(400).JSON(fiber.Map{"error": "El email ya existe"})
		}
		log.Printf("signup: failed to create user: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Error del servidor"})
	}

	return c.Status(201).JSON(fiber.Map{"user": user.Public()})
}

func RecoverPasswordAPI(c *fiber.Ctx) error {
	type RecoverRequest struct {
		Email        string `json:"email" validate:"required,email"`
		RecoveryWord string `json:"recoveryWord" validate:"required"`
	}

	var req RecoverRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Solicitud inválida"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Faltan campos obligatorios"})
	}

	user, err := getUserByRecovery(config.GetDB(), req.Email, req.RecoveryWord)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(401).JSON(fiber.Map{"error": "Datos de recuperación inválidos"})
		}
		log.Printf("recover-password: failed to fetch user: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Error del servidor"})
	}

	// Whoever holds this token can reset the password; it expires after
	// resetTokenTTL and is valid for a single reset.
	token := resetTokens.Issue(user.ID)
	return c.JSON(fiber.Map{"token": token})
}

func ResetPasswordAPI(c *fiber.Ctx) error {
	type ResetRequest struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	var req ResetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Solicitud inválida"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Faltan campos obligatorios"})
	}

	userID, ok := resetTokens.Consume(req.Token)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Token inválido o expirado"})
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		log.Printf("reset-password: failed to hash password: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Error del servidor"})
	}

	if err := updateUserPassword(config.GetDB(), userID, hashed); err != nil {
		log.Printf("reset-password: failed to update password: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Error del servidor"})
	}

	return c.JSON(fiber.Map{"success": true})
}
