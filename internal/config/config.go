// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Store backends selectable with GROCERYLIST_STORE.
const (
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr    string
	Store         string
	DBPath        string
	DatabaseURL   string
	StorageKey    string
	AlertDuration time.Duration
	LogLevel      slog.Level
}

// Load reads configuration from environment variables and returns a validated Config.
// GROCERYLIST_DATABASE_URL is required only when GROCERYLIST_STORE=postgres.
// Optional variables with defaults: GROCERYLIST_LISTEN_ADDR (127.0.0.1:8080),
// GROCERYLIST_STORE (sqlite), GROCERYLIST_DB_PATH (grocerylist.db),
// GROCERYLIST_STORAGE_KEY (grocery_list), GROCERYLIST_ALERT_DURATION (2s),
// GROCERYLIST_LOG_LEVEL (info).
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:    "127.0.0.1:8080",
		Store:         StoreSQLite,
		DBPath:        "grocerylist.db",
		StorageKey:    "grocery_list",
		AlertDuration: 2 * time.Second,
		LogLevel:      slog.LevelInfo,
	}

	if v, ok := os.LookupEnv("GROCERYLIST_LISTEN_ADDR"); ok {
		cfg.ListenAddr = v
	}

	if v, ok := os.LookupEnv("GROCERYLIST_STORE"); ok {
		switch store := strings.ToLower(strings.TrimSpace(v)); store {
		case StoreSQLite, StorePostgres, StoreMemory:
			cfg.Store = store
		default:
			return nil, fmt.Errorf("GROCERYLIST_STORE has invalid value %q (want sqlite, postgres or memory)", v)
		}
	}

	if v, ok := os.LookupEnv("GROCERYLIST_DB_PATH"); ok {
		cfg.DBPath = v
	}

	cfg.DatabaseURL = os.Getenv("GROCERYLIST_DATABASE_URL")
	if cfg.Store == StorePostgres && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("GROCERYLIST_DATABASE_URL is required when GROCERYLIST_STORE=%s", StorePostgres)
	}

	if v, ok := os.LookupEnv("GROCERYLIST_STORAGE_KEY"); ok {
		if strings.TrimSpace(v) == "" {
			return nil, errors.New("GROCERYLIST_STORAGE_KEY must not be empty")
		}
		cfg.StorageKey = v
	}

	if v, ok := os.LookupEnv("GROCERYLIST_ALERT_DURATION"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("GROCERYLIST_ALERT_DURATION has invalid duration %q: %w", v, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("GROCERYLIST_ALERT_DURATION must be positive, got %s", parsed)
		}
		cfg.AlertDuration = parsed
	}

	if v, ok := os.LookupEnv("GROCERYLIST_LOG_LEVEL"); ok {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("GROCERYLIST_LOG_LEVEL has invalid level %q: %w", v, err)
		}
	}

	return cfg, nil
}
