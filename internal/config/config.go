// Package config reads server settings from the environment, after
// loading a .env file from the working directory when one exists.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage backends
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// Defaults
const (
	DefaultPort           = 8080
	DefaultStorageType    = StorageTypeSQLite
	DefaultSQLitePath     = "./data/pokerledger.db"
	DefaultCurrencySymbol = "$"
)

// Config holds server settings
type Config struct {
	Port           int
	StorageType    string
	RedisURL       string
	SQLitePath     string
	CurrencySymbol string
	LogLevel       slog.Level
	StaticDir      string
}

// Load reads .env (if present) and then the process environment
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function such as os.Getenv
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:           DefaultPort,
		StorageType:    DefaultStorageType,
		RedisURL:       getenv("REDIS_URL"),
		SQLitePath:     DefaultSQLitePath,
		CurrencySymbol: DefaultCurrencySymbol,
		LogLevel:       slog.LevelInfo,
		StaticDir:      getenv("STATIC_DIR"),
	}

	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("invalid PORT %q", v)
		}
		cfg.Port = port
	}

	if v := getenv("STORAGE_TYPE"); v != "" {
		cfg.StorageType = strings.ToLower(v)
	}
	switch cfg.StorageType {
	case StorageTypeMemory, StorageTypeSQLite:
	case StorageTypeRedis:
		if cfg.RedisURL == "" {
			return Config{}, errors.New("REDIS_URL required when STORAGE_TYPE=redis")
		}
	default:
		return Config{}, fmt.Errorf("invalid STORAGE_TYPE %q: must be memory, redis or sqlite", cfg.StorageType)
	}

	if v := getenv("SQLITE_PATH"); v != "" {
		cfg.SQLitePath = v
	}
	if v := getenv("CURRENCY_SYMBOL"); v != "" {
		cfg.CurrencySymbol = v
	}

	if v := getenv("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("invalid LOG_LEVEL %q: %w", v, err)
		}
	}

	return cfg, nil
}
