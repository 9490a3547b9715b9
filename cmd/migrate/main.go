package main

import (
	"log"
	"os"

	"medichat-be/internal/model"
	"medichat-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("Error: DATABASE_URL is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. Pre-Migration: extensions GORM AutoMigrate does not handle
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Printf("Warn: Failed to create pgcrypto extension: %v. Continuing...", err)
	}

	// 4. AutoMigrate all models
	models := []interface{}{
		&model.User{},
		&model.Chat{},
		&model.ChatMessage{},
		&model.Bot{},
		&model.Tag{},
		&model.TagGroup{},
		&model.RequestLog{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Seed the default assistant identity used to attribute replies
	function := "assistant"
	bot := model.Bot{
		Name:     "medichat-assistant",
		Function: &function,
	}
	if err := db.Where(model.Bot{Name: bot.Name}).FirstOrCreate(&bot).Error; err != nil {
		log.Printf("Warn: Failed to seed default assistant: %v", err)
	}

	log.Println("Success: Database migration completed via GORM.")
}
