package database

import (
	"database/sql"
	"errors"

	"asistencia/app/models"

	"github.com/lib/pq"
)

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, name, email, password, recovery_word, role, created_at, updated_at
			  FROM users WHERE email = $1`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password,
		&user.RecoveryWord, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID int) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, name, email, password, recovery_word, role, created_at, updated_at
			  FROM users WHERE id = $1`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password,
		&user.RecoveryWord, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByEmailAndRecovery(db *sql.DB, email, recoveryWord string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, name, email, password, recovery_word, role, created_at, updated_at
			  FROM users WHERE email = $1 AND recovery_word = $2`

	err := db.QueryRow(query, email, recoveryWord).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password,
		&user.RecoveryWord, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetAllUsers(db *sql.DB) ([]*models.User, error) {
	query := `SELECT id, name, email, password, recovery_word, role, created_at, updated_at
			  FROM users ORDER BY id`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(
			&user.ID, &user.Name, &user.Email, &user.Password,
			&user.RecoveryWord, &user.Role, &user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func CreateUser(db *sql.DB, user *models.User) error {
	query := `INSERT INTO users (name, email, password, recovery_word, role)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, user.Name, user.Email, user.Password, user.RecoveryWord, user.Role).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func UpdateUserPassword(db *sql.DB, userID int, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return err
}

// IsUniqueViolation reports whether err is a Postgres unique constraint
// violation (error code 23505).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
