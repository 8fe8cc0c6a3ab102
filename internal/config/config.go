package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config holds process-level settings.
type Config struct {
	DBPath              string
	VocabularyPath      string
	DefaultDurationDays int // 0 disables the default-duration policy
	LogUseCases         bool
}

// DefaultConfig returns settings used when no environment overrides exist.
func DefaultConfig() Config {
	return Config{
		DefaultDurationDays: 1,
	}
}

// Load reads configuration from FARMTRIP_* environment variables.
func Load() (Config, error) {
	cfg := DefaultConfig()

	cfg.DBPath = os.Getenv("FARMTRIP_DB")
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, err
		}
		cfg.DBPath = filepath.Join(home, ".farmtrip", "farmtrip.db")
	}
	cfg.VocabularyPath = os.Getenv("FARMTRIP_VOCABULARY")

	if v := os.Getenv("FARMTRIP_DEFAULT_DURATION_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 10 {
			cfg.DefaultDurationDays = n
		}
	}
	if v := os.Getenv("FARMTRIP_LOG"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	return cfg, nil
}
