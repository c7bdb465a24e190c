package database

import (
	"database/sql"

	"asistencia/app/models"
)

func GetAllStudents(db *sql.DB) ([]*models.Student, error) {
	query := `SELECT id, name, guardian, grade_id, created_at, updated_at
			  FROM students ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s := &models.Student{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Guardian, &s.GradeID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func GetStudentsByGrade(db *sql.DB, gradeID int) ([]*models.Student, error) {
	query := `SELECT id, name, guardian, grade_id, created_at, updated_at
			  FROM students WHERE grade_id = $1 ORDER BY name`

	rows, err := db.Query(query, gradeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s := &models.Student{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Guardian, &s.GradeID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func GetStudentByID(db *sql.DB, id int) (*models.Student, error) {
	s := &models.Student{}
	query := `SELECT id, name, guardian, grade_id, created_at, updated_at
			  FROM students WHERE id = $1`

	err := db.QueryRow(query, id).Scan(&s.ID, &s.Name, &s.Guardian, &s.GradeID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func CreateStudent(db *sql.DB, s *models.Student) error {
	query := `INSERT INTO students (name, guardian, grade_id)
			  VALUES ($1, $2, $3)
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, s.Name, s.Guardian, s.GradeID).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func UpdateStudent(db *sql.DB, s *models.Student) error {
	query := `UPDATE students SET name = $1, guardian = $2, grade_id = $3, updated_at = NOW()
			  WHERE id = $4
			  RETURNING created_at, updated_at`

	return db.QueryRow(query, s.Name, s.Guardian, s.GradeID, s.ID).
		Scan(&s.CreatedAt, &s.UpdatedAt)
}

func DeleteStudent(db *sql.DB, id int) error {
	result, err := db.Exec(`DELETE FROM students WHERE id = $1`, id)
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
