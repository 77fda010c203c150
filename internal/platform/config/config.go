package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backend selectors.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// DataBackend selects the entry store: "memory" (default) or "sqlite"
	// for a durable history.
	DataBackend  string
	SQLiteDBPath string

	// RateLimit uses the ulule/limiter format, e.g. "60-M" for 60 per minute.
	RateLimit          string
	CORSAllowedOrigins []string

	IdempotencyTTL       time.Duration
	IdempotencyCacheSize int
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Environment variables override .env values.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("DATA_BACKEND", BackendMemory)
	viper.SetDefault("SQLITE_DB_PATH", "data/ledger.db")
	viper.SetDefault("RATE_LIMIT", "60-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("IDEMPOTENCY_TTL", "24h")
	viper.SetDefault("IDEMPOTENCY_CACHE_SIZE", 1024)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.DataBackend = viper.GetString("DATA_BACKEND")
	cfg.SQLiteDBPath = viper.GetString("SQLITE_DB_PATH")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = viper.GetStringSlice("CORS_ALLOWED_ORIGINS")
	cfg.IdempotencyCacheSize = viper.GetInt("IDEMPOTENCY_CACHE_SIZE")

	switch cfg.DataBackend {
	case BackendMemory, BackendSQLite:
	default:
		return nil, fmt.Errorf("invalid DATA_BACKEND %q: must be %q or %q", cfg.DataBackend, BackendMemory, BackendSQLite)
	}

	if cfg.DataBackend == BackendSQLite && cfg.SQLiteDBPath == "" {
		return nil, fmt.Errorf("SQLITE_DB_PATH must be set when DATA_BACKEND is %q", BackendSQLite)
	}

	ttlStr := viper.GetString("IDEMPOTENCY_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		ttl = 24 * time.Hour
		log.Printf("Warning: Invalid value for IDEMPOTENCY_TTL ('%s'). Defaulting to %s.\n", ttlStr, ttl)
	}
	cfg.IdempotencyTTL = ttl

	return cfg, nil
}
