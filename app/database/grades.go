package database

import (
	"database/sql"

	"asistencia/app/models"
)

func GetAllGrades(db *sql.DB) ([]*models.Grade, error) {
	rows, err := db.Query(`SELECT id, name, level_id, teacher_id FROM grades ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []*models.Grade
	for rows.Next() {
		g := &models.Grade{}
		if err := rows.Scan(&g.ID, &g.Name, &g.LevelID, &g.TeacherID); err != nil {
			return nil, err
		}
		grades = append(grades, g)
	}
	return grades, rows.Err()
}

func GetGradeByID(db *sql.DB, id int) (*models.Grade, error) {
	g := &models.Grade{}
	err := db.QueryRow(`SELECT id, name, level_id, teacher_id FROM grades WHERE id = $1`, id).
		Scan(&g.ID, &g.Name, &g.LevelID, &g.TeacherID)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func CreateGrade(db *sql.DB, g *models.Grade) error {
	return db.QueryRow(`INSERT INTO grades (name, level_id, teacher_id) VALUES ($1, $2, $3) RETURNING id`,
		g.Name, g.LevelID, g.TeacherID).Scan(&g.ID)
}

func UpdateGrade(db *sql.DB, g *models.Grade) error {
	return db.QueryRow(`UPDATE grades SET name = $1, level_id = $2, teacher_id = $3 WHERE id = $4 RETURNING id`,
		g.Name, g.LevelID, g.TeacherID, g.ID).Scan(&g.ID)
}

func DeleteGrade(db *sql.DB, id int) error {
	result, err := db.Exec(`DELETE FROM grades WHERE id = $1`, id)
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
