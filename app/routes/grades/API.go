package grades

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
	getAllGrades       = database.GetAllGrades
	getGradeByID       = database.GetGradeByID
	getStudentsByGrade = database.GetStudentsByGrade
	createGrade        = database.CreateGrade
	updateGrade        = database.UpdateGrade
	deleteGrade        = database.DeleteGrade
)

type gradeRequest struct {
	Name      string `json:"name" validate:"required"`
	LevelID   int    `json:"level_id" validate:"required,gt=0"`
	TeacherID *int   `json:"teacher_id"`
}

func GetGradesAPI(c *fiber.Ctx) error {
	grades, err := getAllGrades(config.GetDB())
	if err != nil {
		log.Printf("grades: failed to fetch grades: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Error del servidor"})
	}

	return c.JSON(fiber.Map{
		"grades": grades,
		"count":  len(grades),
	})
}

func GetGradeAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}

	grade, err := getGradeByID(config.GetDB(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Grado no encontrado"})
		}
		log.Printf("grades: failed to fetch grade %d: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Error del servidor"})
	}

	return c.JSON(fiber.Map{"grade": grade})
}

func GetGradeStudentsAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}

	students, err := getStudentsByGrade(config.GetDB(), id)
	if err != nil {
		log.Printf("grades: failed to fetch students for grade %d: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Error del servidor"})
	}

	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

func CreateGradeAPI(c *fiber.Ctx) error {
	var req gradeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Solicitud inválida"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Faltan campos obligatorios"})
	}

	grade := &models.Grade{Name: req.Name, LevelID: req.LevelID, TeacherID: req.TeacherID}
	if err := createGrade(config.GetDB(), grade); err != nil {
		log.Printf("grades: failed to create grade: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Error del servidor"})
	}

	return c.Status(201).JSON(fiber.Map{"grade": grade})
}

func UpdateGradeAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}

	var req gradeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Solicitud inválida"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Faltan campos obligatorios"})
	}

	grade := &models.Grade{ID: id, Name: req.Name, LevelID: req.LevelID, TeacherID: req.TeacherID}
	if err := updateGrade(config.GetDB(), grade); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Grado no encontrado"})
		}
		log.Printf("grades: failed to update grade %d: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Error del servidor"})
	}

	return c.JSON(fiber.Map{"grade": grade})
}

func DeleteGradeAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}

	if err := deleteGrade(config.GetDB(), id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Grado no encontrado"})
		}
		log.Printf("grades: failed to delete grade %d: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Error del servidor"})
	}

	return c.JSON(fiber.Map{"success": true})
}
