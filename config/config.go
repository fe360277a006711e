package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	VaultPath          string
	StorageBackend     string // "file" or "postgres"
	DatabaseURL        string
	SlackToken         string
	SlackReviewChannel string
	LogLevel           string
}

// LoadConfig loads configuration from environment variables
// It first tries to load from .env file, then falls back to system environment variables
func LoadConfig() *Config {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
	}

	return &Config{
		VaultPath:          getEnv("VAULT_PATH", "./vault"),
		StorageBackend:     getEnv("STORAGE_BACKEND", "file"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		SlackToken:         getEnv("SLACK_BOT_TOKEN", ""),
		SlackReviewChannel: getEnv("SLACK_REVIEW_CHANNEL", ""),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) Validate() error {
	switch c.StorageBackend {
	case "file":
		if c.VaultPath == "" {
			return fmt.Errorf("VAULT_PATH is required for the file backend")
		}
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q (expected \"file\" or \"postgres\")", c.StorageBackend)
	}
	if c.SlackToken != "" && c.SlackReviewChannel == "" {
		return fmt.Errorf("SLACK_REVIEW_CHANNEL is required when SLACK_BOT_TOKEN is set")
	}
	return nil
}
