package database

import (
	"database/sql"

	"asistencia/app/models"
)

func GetAllLevels(db *sql.DB) ([]*models.Level, error) {
	rows, err := db.Query(`SELECT id, name, description FROM levels ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var levels []*models.Level
	for rows.Next() {
		l := &models.Level{}
		if err := rows.Scan(&l.ID, &l.Name, &l.Description); err != nil {
			return nil, err
		}
		levels = append(levels, l)
	}
	return levels, rows.Err()
}

func GetLevelByID(db *sql.DB, id int) (*models.Level, error) {
	l := &models.Level{}
	err := db.QueryRow(`SELECT id, name, description FROM levels WHERE id = $1`, id).
		Scan(&l.ID, &l.Name, &l.Description)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func CreateLevel(db *sql.DB, l *models.Level) error {
	return db.QueryRow(`INSERT INTO levels (name, description) VALUES ($1, $2) RETURNING id`,
		l.Name, l.Description).Scan(&l.ID)
}

func UpdateLevel(db *sql.DB, l *models.Level) error {
	return db.QueryRow(`UPDATE levels SET name = $1, description = $2 WHERE id = $3 RETURNING id`,
		l.Name, l.Description, l.ID).Scan(&l.ID)
}

func DeleteLevel(db *sql.DB, id int) error {
	result, err := db.Exec(`DELETE FROM levels WHERE id = $1`, id)
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
