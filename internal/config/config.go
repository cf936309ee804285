// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/timecard/internal/series"
)

// Config holds the application configuration.
type Config struct {
	Breaks   BreaksConfig   `toml:"breaks"`
	Rounding RoundingConfig `toml:"rounding"`
	Storage  StorageConfig  `toml:"storage"`
	UI       UIConfig       `toml:"ui"`
}

// BreaksConfig holds the automatic break deduction rule.
type BreaksConfig struct {
	DeductBreak    bool `toml:"deduct_break"`    // deduct when the break was too short
	DeductionLimit int  `toml:"deduction_limit"` // worked minutes that trigger it, e.g. 375
	DeductedBreak  int  `toml:"deducted_break"`  // minutes deducted, e.g. 30
}

// RoundingConfig holds the punch rounding grid.
type RoundingConfig struct {
	Factor int `toml:"factor"` // minutes, e.g. 15
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds output settings.
type UIConfig struct {
	NoColor bool   `toml:"no_color"`
	Clock   string `toml:"clock"` // "12h" or "24h"
	Theme   string `toml:"theme"` // editor theme: "mocha", "macchiato", "frappe", "latte", "light"
}

// Clock display modes.
const (
	Clock12h = "12h"
	Clock24h = "24h"
)

// Default returns the default configuration.
func Default() *Config {
	opts := series.DefaultOptions()
	return &Config{
		Breaks: BreaksConfig{
			DeductBreak:    opts.DeductBreak,
			DeductionLimit: opts.DeductionLimit,
			DeductedBreak:  opts.DeductedBreak,
		},
		Rounding: RoundingConfig{
			Factor: opts.RoundingFactor,
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Clock: Clock12h,
			Theme: "mocha",
		},
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "timecard.db"
	}
	return filepath.Join(home, ".local", "share", "timecard", "timecard.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "timecard", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies TIMECARD_* environment variables, which take
// precedence over the file.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("TIMECARD_DEDUCT_BREAK"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TIMECARD_DEDUCT_BREAK: %w", err)
		}
		cfg.Breaks.DeductBreak = b
	}
	if err := envInt("TIMECARD_DEDUCTION_LIMIT", &cfg.Breaks.DeductionLimit); err != nil {
		return err
	}
	if err := envInt("TIMECARD_DEDUCTED_BREAK", &cfg.Breaks.DeductedBreak); err != nil {
		return err
	}
	if err := envInt("TIMECARD_ROUNDING_FACTOR", &cfg.Rounding.Factor); err != nil {
		return err
	}
	if v := os.Getenv("TIMECARD_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("TIMECARD_CLOCK"); v != "" {
		cfg.UI.Clock = v
	}
	if v := os.Getenv("TIMECARD_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.UI.NoColor = true
	}
	return nil
}

func envInt(name string, dst *int) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = n
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := c.SeriesOptions().Validate(); err != nil {
		return err
	}
	if c.Rounding.Factor > 60 {
		return fmt.Errorf("rounding factor must be at most 60 minutes, got %d", c.Rounding.Factor)
	}
	switch c.UI.Clock {
	case Clock12h, Clock24h:
	default:
		return fmt.Errorf("clock must be %q or %q, got %q", Clock12h, Clock24h, c.UI.Clock)
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// SeriesOptions returns the duration rules for building punch series.
func (c *Config) SeriesOptions() series.Options {
	return series.Options{
		DeductBreak:    c.Breaks.DeductBreak,
		DeductionLimit: c.Breaks.DeductionLimit,
		DeductedBreak:  c.Breaks.DeductedBreak,
		RoundingFactor: c.Rounding.Factor,
	}
}

// Uses24h reports whether times are displayed on a 24-hour clock.
func (c *Config) Uses24h() bool {
	return c.UI.Clock == Clock24h
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
