package config

import (
	"fmt"
	"os"

	"github.com/anilkaliya/LifeOs/models"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

var App AppConfig

type AppConfig struct {
	Port               string
	Env                string
	ClientURL          string
	SessionSecret      string
	JWTSecret          string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleCallbackURL  string
}

// Load reads .env (when present) and fills App from the environment.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using environment as-is")
	}

	App = AppConfig{
		Port:               getenv("PORT", "5001"),
		Env:                getenv("ENV", "development"),
		ClientURL:          getenv("CLIENT_URL", "http://localhost:5173"),
		SessionSecret:      os.Getenv("SESSION_SECRET"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleCallbackURL:  getenv("GOOGLE_CALLBACK_URL", "http://localhost:5001/api/auth/callback/google"),
	}

	if App.SessionSecret == "" {
		App.SessionSecret = "dev-secret-change-in-production"
		log.Warn().Msg("SESSION_SECRET not set, using an insecure development default")
	}
}

func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Meal{},
		&models.Workout{},
		&models.LearningSession{},
		&models.SkinCareLog{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("automigrate failed")
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
