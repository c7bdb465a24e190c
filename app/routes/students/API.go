package students

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
	getAllStudents     = database.GetAllStudents
	getStudentsByGrade = database.GetStudentsByGrade
	getStudentByID     = database.GetStudentByID
	createStudent      = database.CreateStudent
	updateStudent      = database.UpdateStudent
	deleteStudent      = database.DeleteStudent
)

type studentRequest struct {
	Name     string `json:"name" validate:"required"`
	Guardian string `json:"guardian"`
	GradeID  *int   `json:"grade_id"`
}

func GetStudentsAPI(c *fiber.Ctx) error {
	gradeID := c.QueryInt("grade_id", 0)

	var (
		students []*models.Student
		err      error
	)
	if gradeID > 0 {
		students, err = getStudentsByGrade(config.GetDB(), gradeID)
	} else {
		students, err = getAllStudents(config.GetDB())
	}
	if err != nil {
		log.Printf("students: failed to fetch students: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Error del servidor"})
	}

	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

func GetStudentAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}

	student, err := getStudentByID(config.GetDB(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Estudiante no encontrado"})
		}
		log.Printf("students: failed to fetch student %d: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Error del servidor"})
	}

	return c.JSON(fiber.Map{"student": student})
}

func CreateStudentAPI(c *fiber.Ctx) error {
	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Solicitud inválida"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Faltan campos obligatorios"})
	}

	student := &models.Student{Name: req.Name, Guardian: req.Guardian, GradeID: req.GradeID}
	if err := createStudent(config.GetDB(), student); err != nil {
		log.Printf("students: failed to create student: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Error del servidor"})
	}

	return c.Status(201).JSON(fiber.Map{"student": student})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}

	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Solicitud inválida"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Faltan campos obligatorios"})
	}

	student := &models.Student{ID: id, Name: req.Name, Guardian: req.Guardian, GradeID: req.GradeID}
	if err := updateStudent(config.GetDB(), student); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Estudiante no encontrado"})
		}
		log.Printf("students: failed to update student %d: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Error del servidor"})
	}

	return c.JSON(fiber.Map{"student": student})
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}

	if err := deleteStudent(config.GetDB(), id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Estudiante no encontrado"})
		}
		log.Printf("students: failed to delete student %d: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Error del servidor"})
	}

	return c.JSON(fiber.Map{"success": true})
}
