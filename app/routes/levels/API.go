package levels

import (
	"database/sql"
	"log"

	"asistencia/app/config"
	"asistencia/app/database"
	"asistencia/app/models"
	"asistencia/app/validate"

	"github.com/gofiber/fiber/v2"
)

var (
	getAllLevels = database.GetAllLevels
	getLevelByID = database.GetLevelByID
	createLevel  = database.CreateLevel
	updateLevel  = database.UpdateLevel
	deleteLevel  = database.DeleteLevel
)

type levelRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func GetLevelsAPI(c *fiber.Ctx) error {
	levels, err := getAllLevels(config.GetDB())
	if err != nil {
		log.Printf("levels: failed to fetch levels: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Error del servidor"})
	}

	return c.JSON(fiber.Map{
		"levels": levels,
		"count":  len(levels),
	})
}

func GetLevelAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}

	level, err := getLevelByID(config.GetDB(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Nivel no encontrado"})
		}
		log.Printf("levels: failed to fetch level %d: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Error del servidor"})
	}

	return c.JSON(fiber.Map{"level": level})
}

func CreateLevelAPI(c *fiber.Ctx) error {
	var req levelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Solicitud inválida"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Faltan campos obligatorios"})
	}

	level := &models.Level{Name: req.Name, Description: req.Description}
	if err := createLevel(config.GetDB(), level); err != nil {
		log.Printf("levels: failed to create level: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Error del servidor"})
	}

	return c.Status(201).JSON(fiber.Map{"level": level})
}

func UpdateLevelAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}

	var req levelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Solicitud inválida"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Faltan campos obligatorios"})
	}

	level := &models.Level{ID: id, Name: req.Name, Description: req.Description}
	if err := updateLevel(config.GetDB(), level); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Nivel no encontrado"})
		}
		log.Printf("levels: failed to update level %d: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Error del servidor"})
	}

	return c.JSON(fiber.Map{"level": level})
}

func DeleteLevelAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}

	if err := deleteLevel(config.GetDB(), id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Nivel no encontrado"})
		}
		log.Printf("levels: failed to delete level %d: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Error del servidor"})
	}

	return c.JSON(fiber.Map{"success": true})
}
