package main

import (
	"log"
	"os"

	"featuregate-be/internal/model"
	"featuregate-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding feature catalog...")

	features := []model.Feature{
		{Name: "beta_dashboard", DisplayName: "Beta Dashboard", Description: "Redesigned analytics dashboard, gradual rollout", Active: false},
		{Name: "csv_export", DisplayName: "CSV Export", Description: "Export report data as CSV", Active: true},
		{Name: "sso_login", DisplayName: "SSO Login", Description: "Single sign-on via the identity provider", Active: true},
		{Name: "audit_trail_ui", DisplayName: "Audit Trail UI", Description: "In-app viewer for the audit trail", Active: false},
	}

	for _, f := range features {
		var existing model.Feature
		if err := db.Where("name = ?", f.Name).First(&existing).Error; err == nil {
			log.Printf("Feature '%s' already exists, skipping...", f.Name)
			continue
		}

		if err := db.Create(&f).Error; err != nil {
			log.Printf("Error creating feature '%s': %v", f.Name, err)
		} else {
			log.Printf("Created feature: %s (%s)", f.DisplayName, f.Name)
		}
	}

	log.Println("Feature seeding completed!")
}
