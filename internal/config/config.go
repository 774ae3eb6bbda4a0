package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type StoreBackend string

const (
	StoreSQLite StoreBackend = "sqlite"
	StoreRedis  StoreBackend = "redis"
)

// Config holds everything the sleeplog binary reads from its environment.
type Config struct {
	DBPath        string
	Store         StoreBackend
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	StorageKey    string
	LogLevel      string
	LogCalls      bool
}

// DefaultConfig returns the configuration used when no variables are set.
// DBPath is left empty and resolved against the home directory by Load.
func DefaultConfig() Config {
	return Config{
		Store:      StoreSQLite,
		RedisAddr:  "localhost:6379",
		StorageKey: "sleepData",
		LogLevel:   "warn",
	}
}

// Load reads a .env file from the working directory if present, then applies
// SLEEPLOG_* environment variables on top of the defaults.
func Load() (Config, error) {
	_ = godotenv.Load()
	cfg := DefaultConfig()

	if v := os.Getenv("SLEEPLOG_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("SLEEPLOG_STORE"); v != "" {
		cfg.Store = StoreBackend(v)
	}
	if v := os.Getenv("SLEEPLOG_REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv("SLEEPLOG_REDIS_PASSWORD"); v != "" {
		cfg.RedisPassword = v
	}
	if v := os.Getenv("SLEEPLOG_REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return cfg, fmt.Errorf("SLEEPLOG_REDIS_DB must be a non-negative integer, got %q", v)
		}
		cfg.RedisDB = n
	}
	if v := os.Getenv("SLEEPLOG_STORAGE_KEY"); v != "" {
		cfg.StorageKey = v
	}
	if v := os.Getenv("SLEEPLOG_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("SLEEPLOG_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	if cfg.Store != StoreSQLite && cfg.Store != StoreRedis {
		return cfg, fmt.Errorf("SLEEPLOG_STORE must be %q or %q, got %q", StoreSQLite, StoreRedis, cfg.Store)
	}

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".sleeplog", "sleeplog.db")
	}
	return cfg, nil
}
