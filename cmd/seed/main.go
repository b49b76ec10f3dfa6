package main

import (
	"log"
	"os"
	"time"

	"wingman-ai-be/internal/model"
	"wingman-ai-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Seeds the initial admin account. Credentials come from env so nothing
// secret lands in the repo.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	adminEmail := os.Getenv("SEED_ADMIN_EMAIL")
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Fatal("Error: SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD must be set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding admin account...")

	var existing model.User
	if err := db.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		color.Yellow("Admin '%s' already exists, skipping...", adminEmail)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: Failed to hash password: %v", err)
	}
	hashStr := string(hash)

	now := time.Now()
	admin := model.User{
		Id:              uuid.New(),
		Email:           adminEmail,
		FullName:        "Administrator",
		PasswordHash:    &hashStr,
		Role:            "admin",
		Status:          "active",
		EmailVerified:   true,
		EmailVerifiedAt: &now,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Error: Failed to create admin: %v", err)
	}

	color.Green("Admin account created: %s", adminEmail)
}
