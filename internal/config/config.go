// internal/config/config.go

// Package config centralizes environment-driven settings. A .env file is
// honored in development via godotenv autoload in main.
package config

import (
	"os"
	"strconv"
)

// Config holds every runtime setting the server reads.
type Config struct {
	// Addr is the listen address, ":8080" by default. PORT overrides the
	// port for platform deployments.
	Addr string

	// LogLevel is a logrus level name ("debug", "info", ...).
	LogLevel string

	// StoreBackend selects the room state store: "memory" (default) or
	// "redis".
	StoreBackend string

	RedisAddr string
	RedisDB   int

	// HistoryQueue is the Redis list that receives action records; empty
	// disables the recorder even when Redis is configured.
	HistoryQueue string
}

// Load reads the configuration from the environment, applying defaults.
func Load() Config {
	cfg := Config{
		Addr:         getEnv("ADDR", ":8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		StoreBackend: getEnv("STORE_BACKEND", "memory"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:      getEnvInt("REDIS_DB", 0),
		HistoryQueue: getEnv("HISTORY_QUEUE_NAME", "uno_actions"),
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	return cfg
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
