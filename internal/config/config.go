// Package config reads configuration from the environment and builds the
// process logger.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration values.
type Config struct {
	// HTTP server
	Port string

	// Logging
	LogFile  string
	LogLevel slog.Level

	// Retrieval
	TopK int

	// Context store: "memory" or "surrealdb"
	StoreBackend string

	// SurrealDB connection (only used with the surrealdb backend)
	SurrealDBURL       string
	SurrealDBNamespace string
	SurrealDBDatabase  string
	SurrealDBUser      string
	SurrealDBPass      string
}

// Load reads configuration from environment variables. A .env file in the
// working directory is picked up first when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port: getEnv("FAQBOT_PORT", "8080"),

		LogFile:  getEnv("FAQBOT_LOG_FILE", "/tmp/faqbot.log"),
		LogLevel: parseLogLevel(getEnv("FAQBOT_LOG_LEVEL", "INFO")),

		TopK: getEnvInt("FAQBOT_TOP_K", 3),

		StoreBackend: getEnv("FAQBOT_CONTEXT_STORE", "memory"),

		SurrealDBURL:       getEnv("SURREALDB_URL", "ws://localhost:8000/rpc"),
		SurrealDBNamespace: getEnv("SURREALDB_NAMESPACE", "faqbot"),
		SurrealDBDatabase:  getEnv("SURREALDB_DATABASE", "conversations"),
		SurrealDBUser:      getEnv("SURREALDB_USER", "root"),
		SurrealDBPass:      getEnv("SURREALDB_PASS", "root"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
