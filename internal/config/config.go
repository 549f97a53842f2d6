package config

import (
	"log"
	"os"

	"featuregate-be/internal/entity"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Flags    FlagConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type FlagConfig struct {
	// Scope selects which principal kinds this deployment accepts:
	// organization, user, or both.
	Scope      entity.ScopeMode
	AuditTopic string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Flags: FlagConfig{
			Scope:      entity.ScopeMode(getEnv("FLAG_SCOPE", string(entity.ScopeOrganization))),
			AuditTopic: getEnv("AUDIT_TOPIC_NAME", "FLAG_AUDIT_EVENTS"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
