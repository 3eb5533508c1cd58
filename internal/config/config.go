// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"bptrack/internal/domain"
)

// Config holds application configuration.
type Config struct {
	Addr           string
	WebDir         string
	DatabaseURL    string // empty selects the in-memory store
	LogLevel       string
	LogPretty      bool
	CORSOrigins    []string
	TrendMinPoints int
	HistoryLimit   int
}

// Load reads a .env file if present, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:           getEnv("ADDR", ":8080"),
		WebDir:         getEnv("WEB_DIR", "web"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogPretty:      getEnvAsBool("LOG_PRETTY", false),
		CORSOrigins:    getEnvAsList("CORS_ORIGINS", []string{"*"}),
		TrendMinPoints: getEnvAsInt("TREND_MIN_POINTS", domain.DefaultMinTrendPoints),
		HistoryLimit:   getEnvAsInt("HISTORY_LIMIT", 90),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that numeric settings are usable.
func (c *Config) Validate() error {
	if c.TrendMinPoints < 1 {
		return errors.New("TREND_MIN_POINTS must be >= 1")
	}
	if c.HistoryLimit < 1 {
		return errors.New("HISTORY_LIMIT must be >= 1")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvAsList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
