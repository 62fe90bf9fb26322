// Package cli provides common initialization shared by the binaries.
package cli

import (
	"log/slog"

	"github.com/joho/godotenv"

	"finreport/internal/config"
	applog "finreport/internal/log"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadConfig loads configuration from the environment and validates it.
func LoadConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetupLogger initializes structured logging at the configured level and
// sets it as the default logger. An unknown level falls back to info
// with a warning, so a typo in LOG_LEVEL never kills a report run.
func SetupLogger(level string) *applog.Logger {
	parsed, err := applog.ParseLevel(level)
	if err != nil {
		parsed = slog.LevelInfo
	}
	logger := applog.New(applog.Config{Level: parsed, Component: applog.ComponentApp})
	applog.SetDefault(logger)
	if err != nil {
		logger.Warn("Unknown log level, using info", applog.FieldError, err)
	}
	return logger
}
