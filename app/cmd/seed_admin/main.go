package main

import (
	"fmt"
	"os"

	"asistencia/app/config"
	"asistencia/app/database"
	"asistencia/app/models"
	"asistencia/app/routes/auth"
)

func main() {
	config.Init()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		return
	}
	defer db.Close()

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		fmt.Println("ADMIN_PASSWORD is required")
		return
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		return
	}

	user := &models.User{
		Name:         envOr("ADMIN_NAME", "Administrador"),
		Email:        envOr("ADMIN_EMAIL", "admin@escuela.local"),
		Password:     hashed,
		RecoveryWord: envOr("ADMIN_RECOVERY_WORD", "recuperacion"),
		Role:         models.RoleAdmin,
	}

	if err := database.CreateUser(db, user); err != nil {
		if database.IsUniqueViolation(err) {
			fmt.Printf("User already exists: %s\n", user.Email)
			return
		}
		fmt.Printf("Error creating user: %v\n", err)
		return
	}

	fmt.Printf("Admin created successfully: %s (id %d)\n", user.Email, user.ID)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
