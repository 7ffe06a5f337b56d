package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken         string
	OpenAIKey        string
	AdminIDs         []int64
	QuestionsPerPage int
	BroadcastDelay   time.Duration
	MaxVoiceDuration int
	Database         DatabaseConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables. Only BOT_TOKEN
// is fatal when missing; an absent OPENAI_API_KEY merely disables the
// AI feedback feature.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	adminIDs, err := parseAdminIDs(os.Getenv("ADMIN_IDS"))
	if err != nil {
		return nil, err
	}

	perPage, err := getEnvInt("QUESTIONS_PER_PAGE", 5)
	if err != nil {
		return nil, err
	}

	delayMs, err := getEnvInt("BROADCAST_DELAY_MS", 100)
	if err != nil {
		return nil, err
	}

	maxVoice, err := getEnvInt("MAX_VOICE_DURATION_SECONDS", 180)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		BotToken:         os.Getenv("BOT_TOKEN"),
		OpenAIKey:        os.Getenv("OPENAI_API_KEY"),
		AdminIDs:         adminIDs,
		QuestionsPerPage: perPage,
		BroadcastDelay:   time.Duration(delayMs) * time.Millisecond,
		MaxVoiceDuration: maxVoice,
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "speakify"),
			User:     getEnv("DB_USER", "speakify"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
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

// IsAdmin reports whether the given identity is a configured admin.
func (c *Config) IsAdmin(userID int64) bool {
	for _, id := range c.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func parseAdminIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ADMIN_IDS contains invalid id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, value)
	}
	return n, nil
}
