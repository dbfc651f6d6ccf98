package utils

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config carries the environment-level settings. It is built once at
// startup and handed to the components that need it rather than read
// from process globals.
type Config struct {
	Port          string
	MongoURI      string
	DatabaseName  string
	JWTSecret     string
	PostmarkToken string
	EmailSender   string
}

// LoadConfig reads configuration from a .env file if present, falling
// back to plain environment variables
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found. Proceeding with environment variables.")
	}

	cfg := Config{
		Port:          os.Getenv("PORT"),
		MongoURI:      os.Getenv("MONGO_URI"),
		DatabaseName:  os.Getenv("DB_NAME"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		PostmarkToken: os.Getenv("POSTMARK_API_TOKEN"),
		EmailSender:   os.Getenv("EMAIL_SENDER"),
	}
	if cfg.Port == "" {
		cfg.Port = "8000"
	}
	if cfg.MongoURI == "" {
		cfg.MongoURI = "mongodb://localhost:27017"
	}
	if cfg.DatabaseName == "" {
		cfg.DatabaseName = "shopcart"
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is not set")
	}
	return cfg, nil
}
