package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	steps := []struct {
		name string
		fn   func(*sql.DB) error
	}{
		{"users", createUsersTable},
		{"teachers", createTeachersTable},
		{"levels", createLevelsTable},
		{"grades", createGradesTable},
		{"students", createStudentsTable},
		{"attendance", createAttendanceTable},
	}

	for _, step := range steps {
		if err := step.fn(db); err != nil {
			log.Printf("Failed to run migration for %s: %v", step.name, err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createUsersTable(db *sql.DB) error {
	// The unique index on email is the authoritative guard against duplicate
	// signups; the handler's existence check is only a fast path.
	query := `
		CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			recovery_word TEXT NOT NULL,
			role VARCHAR(10) NOT NULL CHECK (role IN ('teacher', 'student', 'admin')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	_, err := db.Exec(query)
	return err
}

func createTeachersTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS teachers (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone VARCHAR(30) NOT NULL DEFAULT '',
			specialty TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	_, err := db.Exec(query)
	return err
}

func createLevelsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS levels (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT ''
		)
	`
	_, err := db.Exec(query)
	return err
}

func createGradesTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS grades (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			level_id INTEGER NOT NULL REFERENCES levels(id),
			teacher_id INTEGER REFERENCES teachers(id)
		)
	`
	_, err := db.Exec(query)
	return err
}

func createStudentsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS students (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			guardian TEXT NOT NULL DEFAULT '',
			grade_id INTEGER REFERENCES grades(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	_, err := db.Exec(query)
	return err
}

func createAttendanceTable(db *sql.DB) error {
	// One record per student and day; writes upsert on this key.
	query := `
		CREATE TABLE IF NOT EXISTS attendance (
			id SERIAL PRIMARY KEY,
			student_id INTEGER NOT NULL REFERENCES students(id),
			date DATE NOT NULL,
			status VARCHAR(10) NOT NULL CHECK (status IN ('present', 'absent', 'late', 'excused')),
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (student_id, date)
		)
	`
	_, err := db.Exec(query)
	return err
}
