// Package config reads the process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvAddr       = "COLDLOAD_ADDR"
	EnvTablesDir  = "COLDLOAD_TABLES_DIR"
	EnvLogLevel   = "COLDLOAD_LOG_LEVEL"
	EnvLegacyZero = "COLDLOAD_LEGACY_ZERO"
	EnvRateLimit  = "COLDLOAD_RATE_LIMIT"
	EnvRateBurst  = "COLDLOAD_RATE_BURST"
)

type Config struct {
	Addr       string  // HTTP listen address
	TablesDir  string  // directory of table CSV files, empty for built-in tables
	LogLevel   string  // zerolog level name
	LegacyZero bool    // a parsed 0 falls back to the field default
	RateLimit  float64 // calculation requests per second per client, 0 for unlimited
	RateBurst  int     // requests a client may burst above RateLimit
}

// Load reads the given env files (".env" when none are given) into the
// process environment and builds a Config from it. Missing env files are
// not an error; variables already set in the environment win.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	cfg := Config{
		Addr:      getenv(EnvAddr, ":8080"),
		TablesDir: os.Getenv(EnvTablesDir),
		LogLevel:  getenv(EnvLogLevel, "info"),
		RateBurst: 10,
	}

	if s := os.Getenv(EnvLegacyZero); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLegacyZero, err)
		}
		cfg.LegacyZero = b
	}

	if s := os.Getenv(EnvRateLimit); s != "" {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || f < 0 {
			return Config{}, fmt.Errorf("%s: invalid rate %q", EnvRateLimit, s)
		}
		cfg.RateLimit = f
	}

	if s := os.Getenv(EnvRateBurst); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("%s: invalid burst %q", EnvRateBurst, s)
		}
		cfg.RateBurst = n
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
