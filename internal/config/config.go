// Package config loads khata.yaml and applies KHATA_* environment
// overrides on top.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Backends selectable for the durable ledger snapshot.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config is the top-level khata.yaml configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Budget  BudgetConfig  `yaml:"budget"`
	Logging LoggingConfig `yaml:"logging"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Backend string `yaml:"backend" env:"KHATA_STORAGE_BACKEND"`
}

// BudgetConfig holds the monthly spending budget as a decimal string.
type BudgetConfig struct {
	Monthly string `yaml:"monthly" env:"KHATA_BUDGET_MONTHLY"`
}

// LoggingConfig controls log verbosity and format.
type LoggingConfig struct {
	Level  string `yaml:"level"  env:"KHATA_LOG_LEVEL"`
	Format string `yaml:"format" env:"KHATA_LOG_FORMAT"` // json, console
}

// Default returns the configuration used when no khata.yaml exists.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{Backend: BackendJSON},
		Budget:  BudgetConfig{Monthly: "50000"},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// Load reads path if it exists, falls back to defaults otherwise, and then
// applies environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("applying env overrides: %w", err)
	}

	if cfg.Storage.Backend != BackendJSON && cfg.Storage.Backend != BackendSQLite {
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	return cfg, nil
}

// Save writes the config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// MonthlyBudget parses the configured budget. An empty value is a zero
// budget, which disables the progress ratio.
func (c *Config) MonthlyBudget() (decimal.Decimal, error) {
	if c.Budget.Monthly == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(c.Budget.Monthly)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing budget %q: %w", c.Budget.Monthly, err)
	}
	return d, nil
}
