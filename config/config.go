package config

import (
	"encoding/base64"
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port         string
	MongoURI     string
	DBName       string
	PasetoSecret string
	Timezone     string
}

// LoadConfig reads environment variables (optionally from a .env file) and
// materializes the application configuration.
func LoadConfig() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using system environment variables")
	}

	cfg := &AppConfig{
		Port:         getEnv("PORT", "3000"),
		MongoURI:     getEnv("MONGOSTRING", ""),
		DBName:       getEnv("DB_NAME", "attendance-tracker-db"),
		PasetoSecret: getEnv("PASETO_SECRET", ""),
		Timezone:     getEnv("TIMEZONE", "UTC"),
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	return cfg
}

// Validate ensures required fields are populated and the token secret decodes
// to exactly 32 bytes, as required by PASETO v2 local mode.
func (c *AppConfig) Validate() error {
	if c.MongoURI == "" {
		return errors.New("MONGOSTRING must be provided")
	}
	if c.PasetoSecret == "" {
		return errors.New("PASETO_SECRET must be provided")
	}

	secretBytes, err := base64.URLEncoding.DecodeString(c.PasetoSecret)
	if err != nil {
		return errors.New("PASETO_SECRET is not valid Base64 URL-encoded data")
	}
	if len(secretBytes) != 32 {
		return errors.New("PASETO_SECRET must decode to exactly 32 bytes")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
