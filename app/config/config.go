package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB             *sql.DB
	Port           string
	Env            string
	AllowedOrigins []string
	StaticDir      string
}

var AppConfig *Config

// Init loads environment configuration and opens the database connection pool.
func Init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	cfg := &Config{
		Port:           getEnv("PORT", "4000"),
		Env:            getEnv("APP_ENV", "development"),
		AllowedOrigins: splitOrigins(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")),
		StaticDir:      getEnv("STATIC_DIR", "./static"),
	}

	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_NAME", "asistencia"),
		getEnv("DB_SSLMODE", "disable"),
	)

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	cfg.DB = db
	AppConfig = cfg
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	if AppConfig == nil {
		return nil
	}
	return AppConfig.DB
}

// IsDevelopment reports whether the app runs with development conveniences
// enabled, such as the unauthenticated debug endpoints.
func IsDevelopment() bool {
	return AppConfig != nil && AppConfig.Env == "development"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
