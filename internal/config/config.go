package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Backends selectable through DATA_BACKEND.
const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
)

// Chart output formats selectable through CHART_FORMAT.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

type Config struct {
	// Ingestion
	InputDir     string
	DataBackend  string
	SQLiteDBPath string

	// Report
	OutputDir   string
	ReportTitle string
	Currency    string
	ChartFormat string

	// Chart trend lines
	SmoothWeight float64

	// Logging
	LogLevel string
}

func Load() *Config {
	return &Config{
		InputDir:     getEnv("INPUT_DIR", "./input"),
		DataBackend:  getEnv("DATA_BACKEND", BackendCSV),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", ""),

		OutputDir:   getEnv("OUTPUT_DIR", "./output"),
		ReportTitle: getEnv("REPORT_TITLE", "Expenses report"),
		Currency:    getEnv("CURRENCY", "€"),
		ChartFormat: getEnv("CHART_FORMAT", FormatSVG),

		SmoothWeight: getEnvFloat("SMOOTH_WEIGHT", 0.9),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	switch c.DataBackend {
	case BackendCSV:
		if c.InputDir == "" {
			errs = append(errs, "input directory cannot be empty when using the csv backend")
		}
	case BackendSQLite:
		if c.SQLiteDBPath == "" {
			errs = append(errs, "SQLITE_DB_PATH cannot be empty when using the sqlite backend")
		} else if _, err := os.Stat(c.SQLiteDBPath); err != nil {
			errs = append(errs, fmt.Sprintf("cannot read SQLite database '%s': %v", c.SQLiteDBPath, err))
		}
	default:
		errs = append(errs, fmt.Sprintf("invalid data backend '%s': must be one of [%s %s]", c.DataBackend, BackendCSV, BackendSQLite))
	}

	if c.ChartFormat != FormatSVG && c.ChartFormat != FormatPNG {
		errs = append(errs, fmt.Sprintf("invalid chart format '%s': must be one of [%s %s]", c.ChartFormat, FormatSVG, FormatPNG))
	}

	if c.OutputDir == "" {
		errs = append(errs, "output directory cannot be empty")
	}

	if c.SmoothWeight < 0 || c.SmoothWeight > 1 {
		errs = append(errs, fmt.Sprintf("invalid smooth weight %v: must be between 0 and 1", c.SmoothWeight))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}
