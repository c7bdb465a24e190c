package attendance

import (
	"database/sql"
	"log"
	"time"

	"asistencia/app/config"
	"asistencia/app/database"
	"asistencia/app/models"
	"asistencia/app/validate"

	"github.com/gofiber/fiber/v2"
)

var (
	getAttendanceByStudent      = database.GetAttendanceByStudent
	getAttendanceByGradeAndDate = database.GetAttendanceByGradeAndDate
	upsertAttendance            = database.UpsertAttendance
	deleteAttendance            = database.DeleteAttendance
)

const dateLayout = "2006-01-02"

func GetAttendanceByStudentAPI(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("studentId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}

	records, err := getAttendanceByStudent(config.GetDB(), studentID)
	if err != nil {
		log.Printf("attendance: failed to fetch records for student %d: %v", studentID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Error del servidor"})
	}

	return c.JSON(fiber.Map{
		"attendance": records,
		"count":      len(records),
		"student_id": studentID,
	})
}

func GetAttendanceByGradeAndDateAPI(c *fiber.Ctx) error {
	gradeID, err := c.ParamsInt("gradeId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}

	date, err := time.Parse(dateLayout, c.Params("date"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Formato de fecha inválido. Use YYYY-MM-DD"})
	}

	records, err := getAttendanceByGradeAndDate(config.GetDB(), gradeID, date)
	if err != nil {
		log.Printf("attendance: failed to fetch records for grade %d: %v", gradeID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Error del servidor"})
	}

	return c.JSON(fiber.Map{
		"attendance": records,
		"count":      len(records),
		"grade_id":   gradeID,
		"date":       date.Format(dateLayout),
	})
}

func CreateOrUpdateAttendanceAPI(c *fiber.Ctx) error {
	type attendanceRequest struct {
		StudentID int    `json:"student_id" validate:"required,gt=0"`
		Date      string `json:"date" validate:"required"`
		Status    string `json:"status" validate:"required"`
		Notes     string `json:"notes"`
	}

	var req attendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Solicitud inválida"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Faltan campos obligatorios"})
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Formato de fecha inválido. Use YYYY-MM-DD"})
	}

	status := models.AttendanceStatus(req.Status)
	if !status.Valid() {
		return c.Status(400).JSON(fiber.Map{"error": "Estado inválido. Debe ser present, absent, late o excused"})
	}

	record := &models.Attendance{
		StudentID: req.StudentID,
		Date:      date,
		Status:    status,
		Notes:     req.Notes,
	}
	if err := upsertAttendance(config.GetDB(), record); err != nil {
		log.Printf("attendance: failed to save record: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Error del servidor"})
	}

	return c.Status(201).JSON(fiber.Map{"attendance": record})
}

func DeleteAttendanceAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}

	if err := deleteAttendance(config.GetDB(), id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Registro no encontrado"})
		}
		log.Printf("attendance: failed to delete record %d: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Error del servidor"})
	}

	return c.JSON(fiber.Map{"success": true})
}
