package attendance

import (
	"asistencia/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/attendance")
	api.Use(auth.RequireUser)

	api.Get("/student/:studentId", GetAttendanceByStudentAPI)
	api.Get("/grade/:gradeId/date/:date", GetAttendanceByGradeAndDateAPI)
	api.Post("/", CreateOrUpdateAttendanceAPI)
	api.Delete("/:id", DeleteAttendanceAPI)
}
