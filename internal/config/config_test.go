package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.DataBackend != BackendCSV {
		t.Fatalf("expected csv backend by default, got %s", cfg.DataBackend)
	}
	if cfg.InputDir != "./input" || cfg.OutputDir != "./output" {
		t.Fatalf("unexpected directories: %s, %s", cfg.InputDir, cfg.OutputDir)
	}
	if cfg.SmoothWeight != 0.9 {
		t.Fatalf("expected smooth weight 0.9, got %v", cfg.SmoothWeight)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate, got %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("INPUT_DIR", "/tmp/in")
	t.Setenv("CURRENCY", "$")
	t.Setenv("SMOOTH_WEIGHT", "0.5")
	t.Setenv("CHART_FORMAT", "png")

	cfg := Load()
	if cfg.InputDir != "/tmp/in" || cfg.Currency != "$" {
		t.Fatalf("env not picked up: %+v", cfg)
	}
	if cfg.SmoothWeight != 0.5 {
		t.Fatalf("expected 0.5, got %v", cfg.SmoothWeight)
	}
	if cfg.ChartFormat != FormatPNG {
		t.Fatalf("expected png, got %s", cfg.ChartFormat)
	}
}

func TestLoadIgnoresBadFloat(t *testing.T) {
	t.Setenv("SMOOTH_WEIGHT", "not-a-number")
	if cfg := Load(); cfg.SmoothWeight != 0.9 {
		t.Fatalf("expected fallback 0.9, got %v", cfg.SmoothWeight)
	}
}

func TestValidate(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "missing.db")

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad backend", func(c *Config) { c.DataBackend = "sheets" }, "invalid data backend"},
		{"sqlite without path", func(c *Config) { c.DataBackend = BackendSQLite }, "SQLITE_DB_PATH"},
		{"sqlite missing file", func(c *Config) { c.DataBackend = BackendSQLite; c.SQLiteDBPath = dbPath }, "cannot read"},
		{"bad chart format", func(c *Config) { c.ChartFormat = "jpeg" }, "invalid chart format"},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }, "output directory"},
		{"weight too big", func(c *Config) { c.SmoothWeight = 1.5 }, "smooth weight"},
		{"weight negative", func(c *Config) { c.SmoothWeight = -0.1 }, "smooth weight"},
	}
	for _, tc := range cases {
		cfg := Load()
		tc.mutate(cfg)
		err := cfg.Validate()
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.wantErr) {
			t.Fatalf("%s: error %q does not mention %q", tc.name, err, tc.wantErr)
		}
	}
}
