package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sourishdey2005/Annaprasanna/models"
)

// LoadEnv reads .env if present; system env always wins.
func LoadEnv(log *zap.Logger) {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system env")
	}
}

// InitDB opens the database and migrates the schema. The handle is returned
// rather than stored in a package variable so every service receives its store
// explicitly and tests can substitute their own.
func InitDB(log *zap.Logger) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&models.MealRecord{},
		&models.Settings{},
	); err != nil {
		log.Fatal("AutoMigrate failed", zap.Error(err))
	}

	return db
}
