package database

import (
	"database/sql"
	"time"

	"asistencia/app/models"
)

func GetAttendanceByStudent(db *sql.DB, studentID int) ([]*models.Attendance, error) {
	query := `SELECT id, student_id, date, status, notes, created_at, updated_at
			  FROM attendance WHERE student_id = $1 ORDER BY date DESC`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

func GetAttendanceByGradeAndDate(db *sql.DB, gradeID int, date time.Time) ([]*models.Attendance, error) {
	query := `SELECT a.id, a.student_id, a.date, a.status, a.notes, a.created_at, a.updated_at
			  FROM attendance a
			  JOIN students s ON s.id = a.student_id
			  WHERE s.grade_id = $1 AND a.date = $2
			  ORDER BY a.student_id`

	rows, err := db.Query(query, gradeID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

// UpsertAttendance inserts the record or, if one already exists for the
// student and date, replaces its status and notes in the same statement.
func UpsertAttendance(db *sql.DB, a *models.Attendance) error {
	query := `INSERT INTO attendance (student_id, date, status, notes)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (student_id, date)
			  DO UPDATE SET status = EXCLUDED.status, notes = EXCLUDED.notes, updated_at = NOW()
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, a.StudentID, a.Date, a.Status, a.Notes).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func DeleteAttendance(db *sql.DB, id int) error {
	result, err := db.Exec(`DELETE FROM attendance WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func scanAttendanceRows(rows *sql.Rows) ([]*models.Attendance, error) {
	var records []*models.Attendance
	for rows.Next() {
		a := &models.Attendance{}
		if err := rows.Scan(&a.ID, &a.StudentID, &a.Date, &a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}
