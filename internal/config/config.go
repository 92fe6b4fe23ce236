package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

// FileName is the config file written by `smsledger init`.
const FileName = "smsledger.yaml"

// EnvPrefix marks environment variables that override the config file,
// e.g. SMSLEDGER_LEDGER_BACKEND=sqlite or SMSLEDGER_REPORTS_SUMMARY_DAYS=7.
const EnvPrefix = "SMSLEDGER_"

// Config represents the top-level smsledger.yaml configuration.
type Config struct {
	Ledger  LedgerConfig  `yaml:"ledger"`
	Log     LogConfig     `yaml:"log"`
	Reports ReportsConfig `yaml:"reports"`
}

// LedgerConfig selects where records are stored. Relative paths are
// resolved against the directory holding the config file.
type LedgerConfig struct {
	Backend    string `yaml:"backend"` // "csv" or "sqlite"
	Dir        string `yaml:"dir"`
	SQLitePath string `yaml:"sqlite_path"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// ReportsConfig sets the default report windows.
type ReportsConfig struct {
	SummaryDays   int `yaml:"summary_days"`
	MonthlyMonths int `yaml:"monthly_months"`
}

// Load reads a smsledger.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
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

// Default returns a Config with sensible defaults for a new ledger.
func Default() *Config {
	return &Config{
		Ledger: LedgerConfig{
			Backend:    "csv",
			Dir:        "data",
			SQLitePath: "data/ledger.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Reports: ReportsConfig{
			SummaryDays:   30,
			MonthlyMonths: 6,
		},
	}
}

// ApplyEnv overlays SMSLEDGER_* environment variables onto cfg.
// The first underscore after the prefix separates section from key.
func ApplyEnv(cfg *Config) error {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return fmt.Errorf("loading config from environment: %w", err)
	}

	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return fmt.Errorf("unmarshaling environment config: %w", err)
	}
	return nil
}

// Validate reports every problem with cfg at once.
func (c *Config) Validate() error {
	var errs []error
	switch c.Ledger.Backend {
	case "csv":
		if c.Ledger.Dir == "" {
			errs = append(errs, errors.New("ledger.dir must be set for the csv backend"))
		}
	case "sqlite":
		if c.Ledger.SQLitePath == "" {
			errs = append(errs, errors.New("ledger.sqlite_path must be set for the sqlite backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("ledger.backend %q must be csv or sqlite", c.Ledger.Backend))
	}
	if c.Reports.SummaryDays <= 0 {
		errs = append(errs, fmt.Errorf("reports.summary_days must be positive, got %d", c.Reports.SummaryDays))
	}
	if c.Reports.MonthlyMonths <= 0 {
		errs = append(errs, fmt.Errorf("reports.monthly_months must be positive, got %d", c.Reports.MonthlyMonths))
	}
	return errors.Join(errs...)
}
