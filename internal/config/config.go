// Package config loads service configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/example/echoslice/internal/queue"
)

// Config holds everything the process needs at startup.
type Config struct {
	Port string
	Mode string // "dev" or "prod"; selects logger and gin modes

	DBType string // "sqlite" or "postgres"
	DBPath string // sqlite file path
	DBURL  string // postgres connection URL

	QueueLimit        int
	QueueReviewTarget int

	TelegramBotToken string
	TelegramChatID   int64
}

// Load reads configuration from the environment. A missing .env file is not
// an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:              envString("PORT", "8080"),
		Mode:              envString("APP_MODE", "dev"),
		DBType:            envString("DB_TYPE", "sqlite"),
		DBPath:            envString("DB_PATH", "data/echoslice.db"),
		DBURL:             os.Getenv("DATABASE_URL"),
		QueueLimit:        envInt("QUEUE_LIMIT", queue.DefaultLimit),
		QueueReviewTarget: envInt("QUEUE_REVIEW_TARGET", queue.DefaultReviewTarget),
		TelegramBotToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:    envInt64("TELEGRAM_CHAT_ID", 0),
	}
}

// Driver returns the sql driver name and DSN for the configured database.
func (c *Config) Driver() (driver, dsn string) {
	if c.DBType == "postgres" {
		return "postgres", c.DBURL
	}
	return "sqlite3", c.DBPath
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
