package main

import (
	"log"

	"asistencia/app/config"
	"asistencia/app/database"
)

func main() {
	log.Println("Starting manual migration...")

	config.Init()
	db := config.GetDB()
	if db == nil {
		log.Fatal("Failed to get database instance")
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Manual migration completed successfully!")
}
