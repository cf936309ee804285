package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Breaks.DeductBreak {
		t.Error("expected deduct_break to default to false")
	}
	if cfg.Breaks.DeductionLimit != 375 {
		t.Errorf("expected deduction_limit 375, got %d", cfg.Breaks.DeductionLimit)
	}
	if cfg.Breaks.DeductedBreak != 30 {
		t.Errorf("expected deducted_break 30, got %d", cfg.Breaks.DeductedBreak)
	}
	if cfg.Rounding.Factor != 15 {
		t.Errorf("expected rounding factor 15, got %d", cfg.Rounding.Factor)
	}
	if cfg.UI.Clock != Clock12h {
		t.Errorf("expected clock 12h, got %s", cfg.UI.Clock)
	}
	if cfg.UI.Theme != "mocha" {
		t.Errorf("expected theme mocha, got %s", cfg.UI.Theme)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to be valid: %v", err)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Rounding.Factor != 15 {
		t.Errorf("expected default rounding factor, got %d", cfg.Rounding.Factor)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[breaks]
deduct_break = true
deduction_limit = 360
deducted_break = 45

[rounding]
factor = 6

[storage]
db_path = "/tmp/test.db"

[ui]
clock = "24h"
theme = "latte"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.Breaks.DeductBreak {
		t.Error("expected deduct_break true")
	}
	if cfg.Breaks.DeductionLimit != 360 {
		t.Errorf("expected deduction_limit 360, got %d", cfg.Breaks.DeductionLimit)
	}
	if cfg.Breaks.DeductedBreak != 45 {
		t.Errorf("expected deducted_break 45, got %d", cfg.Breaks.DeductedBreak)
	}
	if cfg.Rounding.Factor != 6 {
		t.Errorf("expected rounding factor 6, got %d", cfg.Rounding.Factor)
	}
	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path /tmp/test.db, got %s", cfg.Storage.DBPath)
	}
	if !cfg.Uses24h() {
		t.Error("expected 24h clock")
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %s", cfg.UI.Theme)
	}

	opts := cfg.SeriesOptions()
	if !opts.DeductBreak || opts.DeductionLimit != 360 || opts.DeductedBreak != 45 || opts.RoundingFactor != 6 {
		t.Errorf("SeriesOptions() = %+v, want values from file", opts)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	if err := os.WriteFile(configPath, []byte("[breaks\nfactor ="), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := LoadFrom(configPath)
	if err == nil || !strings.Contains(err.Error(), "parsing config file") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[breaks]
deduction_limit = 360
deducted_break = 45

[storage]
db_path = "/tmp/test.db"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("TIMECARD_DEDUCT_BREAK", "true")
	t.Setenv("TIMECARD_DEDUCTION_LIMIT", "400")
	t.Setenv("TIMECARD_ROUNDING_FACTOR", "10")
	t.Setenv("TIMECARD_DB_PATH", "/tmp/env.db")
	t.Setenv("TIMECARD_UI_THEME", "frappe")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.Breaks.DeductBreak {
		t.Error("expected deduct_break true from env")
	}
	if cfg.Breaks.DeductionLimit != 400 {
		t.Errorf("expected deduction_limit 400 from env, got %d", cfg.Breaks.DeductionLimit)
	}
	// File value should be kept when no env override
	if cfg.Breaks.DeductedBreak != 45 {
		t.Errorf("expected deducted_break 45 from file, got %d", cfg.Breaks.DeductedBreak)
	}
	if cfg.Rounding.Factor != 10 {
		t.Errorf("expected rounding factor 10 from env, got %d", cfg.Rounding.Factor)
	}
	if cfg.Storage.DBPath != "/tmp/env.db" {
		t.Errorf("expected db_path /tmp/env.db from env, got %s", cfg.Storage.DBPath)
	}
	if cfg.UI.Theme != "frappe" {
		t.Errorf("expected theme frappe from env, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_BadEnvValue(t *testing.T) {
	t.Setenv("TIMECARD_DEDUCTED_BREAK", "half an hour")

	if _, err := LoadFrom("/nonexistent/path/config.toml"); err == nil {
		t.Error("expected error for non-numeric TIMECARD_DEDUCTED_BREAK")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "zero rounding factor", mutate: func(c *Config) { c.Rounding.Factor = 0 }},
		{name: "rounding factor above an hour", mutate: func(c *Config) { c.Rounding.Factor = 90 }},
		{name: "negative deduction limit", mutate: func(c *Config) { c.Breaks.DeductionLimit = -1 }},
		{name: "negative deducted break", mutate: func(c *Config) { c.Breaks.DeductedBreak = -30 }},
		{name: "unknown clock", mutate: func(c *Config) { c.UI.Clock = "36h" }},
		{name: "empty db path", mutate: func(c *Config) { c.Storage.DBPath = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"~/test.db", filepath.Join(home, "test.db")},
		{"/absolute/path.db", "/absolute/path.db"},
		{"relative/path.db", "relative/path.db"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := expandPath(tc.input)
			if got != tc.want {
				t.Errorf("expandPath(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.toml")

	cfg := Default()
	cfg.Breaks.DeductBreak = true
	cfg.Breaks.DeductedBreak = 20
	cfg.Rounding.Factor = 5
	cfg.UI.Clock = Clock24h

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if !loaded.Breaks.DeductBreak {
		t.Error("expected deduct_break true")
	}
	if loaded.Breaks.DeductedBreak != 20 {
		t.Errorf("expected deducted_break 20, got %d", loaded.Breaks.DeductedBreak)
	}
	if loaded.Rounding.Factor != 5 {
		t.Errorf("expected rounding factor 5, got %d", loaded.Rounding.Factor)
	}
	if loaded.UI.Clock != Clock24h {
		t.Errorf("expected clock 24h, got %s", loaded.UI.Clock)
	}
}
