package attendance

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"asistencia/app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceStore struct {
	seq     int
	records map[int]*models.Attendance
}

func stubAttendanceStore(t *testing.T) *fakeAttendanceStore {
	t.Helper()
	f := &fakeAttendanceStore{records: make(map[int]*models.Attendance)}

	origByStudent, origByGrade := getAttendanceByStudent, getAttendanceByGradeAndDate
	origUpsert, origDelete := upsertAttendance, deleteAttendance
	t.Cleanup(func() {
		getAttendanceByStudent, getAttendanceByGradeAndDate = origByStudent, origByGrade
		upsertAttendance, deleteAttendance = origUpsert, origDelete
	})

	getAttendanceByStudent = func(_ *sql.DB, studentID int) ([]*models.Attendance, error) {
		var matched []*models.Attendance
		for _, r := range f.records {
			if r.StudentID == studentID {
				matched = append(matched, r)
			}
		}
		return matched, nil
	}
	getAttendanceByGradeAndDate = func(_ *sql.DB, _ int, _ time.Time) ([]*models.Attendance, error) {
		return nil, nil
	}
	upsertAttendance = func(_ *sql.DB, a *models.Attendance) error {
		for _, existing := range f.records {
			if existing.StudentID == a.StudentID && existing.Date.Equal(a.Date) {
				existing.Status = a.Status
				existing.Notes = a.Notes
				existing.UpdatedAt = time.Now()
				a.ID = existing.ID
				return nil
			}
		}
		f.seq++
		a.ID = f.seq
		a.CreatedAt = time.Now()
		a.UpdatedAt = a.CreatedAt
		cp := *a
		f.records[a.ID] = &cp
		return nil
	}
	deleteAttendance = func(_ *sql.DB, id int) error {
		if _, ok := f.records[id]; !ok {
			return sql.ErrNoRows
		}
		delete(f.records, id)
		return nil
	}

	return f
}

func newAttendanceApp() *fiber.App {
	app := fiber.New()
	app.Get("/api/attendance/student/:studentId", GetAttendanceByStudentAPI)
	app.Get("/api/attendance/grade/:gradeId/date/:date", GetAttendanceByGradeAndDateAPI)
	app.Post("/api/attendance", CreateOrUpdateAttendanceAPI)
	app.Delete("/api/attendance/:id", DeleteAttendanceAPI)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestCreateAttendance(t *testing.T) {
	stubAttendanceStore(t)
	app := newAttendanceApp()

	resp := doJSON(t, app, http.MethodPost, "/api/attendance", map[string]interface{}{
		"student_id": 5,
		"date":       "2026-03-02",
		"status":     "present",
	})
	require.Equal(t, 201, resp.StatusCode)
	record := decodeBody(t, resp)["attendance"].(map[string]interface{})
	assert.Equal(t, float64(1), record["id"])
	assert.Equal(t, "present", record["status"])
}

func TestCreateAttendanceUpsertsSameDay(t *testing.T) {
	store := stubAttendanceStore(t)
	app := newAttendanceApp()

	doJSON(t, app, http.MethodPost, "/api/attendance", map[string]interface{}{
		"student_id": 5, "date": "2026-03-02", "status": "present",
	}).Body.Close()
	resp := doJSON(t, app, http.MethodPost, "/api/attendance", map[string]interface{}{
		"student_id": 5, "date": "2026-03-02", "status": "late",
	})
	require.Equal(t, 201, resp.StatusCode)

	require.Len(t, store.records, 1, "one record per student and day")
	assert.Equal(t, models.Late, store.records[1].Status)
}

func TestCreateAttendanceInvalidDate(t *testing.T) {
	stubAttendanceStore(t)
	app := newAttendanceApp()

	resp := doJSON(t, app, http.MethodPost, "/api/attendance", map[string]interface{}{
		"student_id": 5,
		"date":       "02/03/2026",
		"status":     "present",
	})
	require.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "Formato de fecha inválido. Use YYYY-MM-DD", decodeBody(t, resp)["error"])
}

func TestCreateAttendanceInvalidStatus(t *testing.T) {
	stubAttendanceStore(t)
	app := newAttendanceApp()

	resp := doJSON(t, app, http.MethodPost, "/api/attendance", map[string]interface{}{
		"student_id": 5,
		"date":       "2026-03-02",
		"status":     "presente",
	})
	require.Equal(t, 400, resp.StatusCode)
	assert.Contains(t, decodeBody(t, resp)["error"], "Estado inválido")
}

func TestCreateAttendanceMissingFields(t *testing.T) {
	stubAttendanceStore(t)
	app := newAttendanceApp()

	resp := doJSON(t, app, http.MethodPost, "/api/attendance", map[string]interface{}{
		"date": "2026-03-02",
	})
	assert.Equal(t, 400, resp.StatusCode)
}

func TestGetAttendanceByStudent(t *testing.T) {
	stubAttendanceStore(t)
	app := newAttendanceApp()
	doJSON(t, app, http.MethodPost, "/api/attendance", map[string]interface{}{
		"student_id": 5, "date": "2026-03-02", "status": "absent",
	}).Body.Close()

	resp := doJSON(t, app, http.MethodGet, "/api/attendance/student/5", nil)
	require.Equal(t, 200, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(1), body["count"])
	assert.Equal(t, float64(5), body["student_id"])
}

func TestGetAttendanceByGradeInvalidDate(t *testing.T) {
	stubAttendanceStore(t)
	app := newAttendanceApp()

	resp := doJSON(t, app, http.MethodGet, "/api/attendance/grade/3/date/hoy", nil)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestDeleteAttendance(t *testing.T) {
	stubAttendanceStore(t)
	app := newAttendanceApp()
	doJSON(t, app, http.MethodPost, "/api/attendance", map[string]interface{}{
		"student_id": 5, "date": "2026-03-02", "status": "absent",
	}).Body.Close()

	resp := doJSON(t, app, http.MethodDelete, "/api/attendance/1", nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, true, decodeBody(t, resp)["success"])

	resp = doJSON(t, app, http.MethodDelete, "/api/attendance/1", nil)
	assert.Equal(t, 404, resp.StatusCode)
}
