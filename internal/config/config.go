package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Session store backends
const (
	SessionStoreMemory   = "memory"
	SessionStorePostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	BotToken     string
	OpenAIAPIKey string
	PhotoPath    string
	SessionStore string
	Database     DatabaseConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:     os.Getenv("BOT_TOKEN"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		PhotoPath:    getEnv("PHOTO_PATH", "img/007.jpg"),
		SessionStore: getEnv("SESSION_STORE", SessionStoreMemory),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "miumiu"),
			User:     getEnv("DB_USER", "miumiu"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}

	switch cfg.SessionStore {
	case SessionStoreMemory:
	case SessionStorePostgres:
		if cfg.Database.Password == "" {
			return nil, fmt.Errorf("DB_PASSWORD is required when SESSION_STORE is %q", SessionStorePostgres)
		}
	default:
		return nil, fmt.Errorf("unknown SESSION_STORE %q; allowed: %s, %s", cfg.SessionStore, SessionStoreMemory, SessionStorePostgres)
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
