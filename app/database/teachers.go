package database

import (
	"database/sql"

	"asistencia/app/models"
)

func GetAllTeachers(db *sql.DB) ([]*models.Teacher, error) {
	query := `SELECT id, name, email, phone, specialty, created_at, updated_at
			  FROM teachers ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		t := &models.Teacher{}
		if err := rows.Scan(&t.ID, &t.Name, &t.Email, &t.Phone, &t.Specialty, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

func GetTeacherByID(db *sql.DB, id int) (*models.Teacher, error) {
	t := &models.Teacher{}
	query := `SELECT id, name, email, phone, specialty, created_at, updated_at
			  FROM teachers WHERE id = $1`

	err := db.QueryRow(query, id).Scan(&t.ID, &t.Name, &t.Email, &t.Phone, &t.Specialty, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func CreateTeacher(db *sql.DB, t *models.Teacher) error {
	query := `INSERT INTO teachers (name, email, phone, specialty)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, t.Name, t.Email, t.Phone, t.Specialty).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func UpdateTeacher(db *sql.DB, t *models.Teacher) error {
	query := `UPDATE teachers SET name = $1, email = $2, phone = $3, specialty = $4, updated_at = NOW()
			  WHERE id = $5
			  RETURNING created_at, updated_at`

	return db.QueryRow(query, t.Name, t.Email, t.Phone, t.Specialty, t.ID).
		Scan(&t.CreatedAt, &t.UpdatedAt)
}

func DeleteTeacher(db *sql.DB, id int) error {
	result, err := db.Exec(`DELETE FROM teachers WHERE id = $1`, id)
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
