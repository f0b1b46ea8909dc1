// Package config provides configuration management for the chart engine.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Ephemeris EphemerisConfig `mapstructure:"ephemeris"`
	Transit   TransitConfig   `mapstructure:"transit"`
	Storage   StorageConfig   `mapstructure:"storage"`
	UI        UIConfig        `mapstructure:"ui"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// EphemerisConfig holds ephemeris provider configuration.
type EphemerisConfig struct {
	Provider         string  `mapstructure:"provider"` // "mean", "snapshot"
	Ayanamsa         string  `mapstructure:"ayanamsa"` // sidereal offset model, "lahiri" is the default
	Workers          int     `mapstructure:"workers"`  // parallel derivation workers
	DefaultLatitude  float64 `mapstructure:"default_latitude"`
	DefaultLongitude float64 `mapstructure:"default_longitude"`
}

// TransitConfig holds transit scan configuration.
type TransitConfig struct {
	HorizonDays int `mapstructure:"horizon_days"`
	StepDays    int `mapstructure:"step_days"`
}

// StorageConfig holds chart store configuration.
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled bool   `mapstructure:"color_enabled"`
	DateFormat   string `mapstructure:"date_format"`
	TimeFormat   string `mapstructure:"time_format"`
}

// LoggingConfig holds log output configuration.
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
	File    bool   `mapstructure:"file"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/kundali"
	}
	return filepath.Join(home, ".config", "kundali")
}

// DefaultStorePath returns the default chart database location.
func DefaultStorePath() string {
	return filepath.Join(DefaultConfigDir(), "charts.db")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := &Config{}

	if err := loadConfigFile(configDir, "config", cfg); err != nil {
		return nil, fmt.Errorf("loading config.toml: %w", err)
	}

	applyDefaults(cfg)
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func loadConfigFile(configDir, name string, target interface{}) error {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found, create template
			return createTemplateConfig(configDir, name)
		}
		return err
	}

	return v.Unmarshal(target)
}

func applyDefaults(cfg *Config) {
	if cfg.Ephemeris.Provider == "" {
		cfg.Ephemeris.Provider = "mean"
	}
	if cfg.Ephemeris.Ayanamsa == "" {
		cfg.Ephemeris.Ayanamsa = "lahiri"
	}
	if cfg.Ephemeris.Workers <= 0 {
		cfg.Ephemeris.Workers = 4
	}
	if cfg.Transit.HorizonDays <= 0 {
		cfg.Transit.HorizonDays = 365
	}
	if cfg.Transit.StepDays <= 0 {
		cfg.Transit.StepDays = 30
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = DefaultStorePath()
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.UI.DateFormat == "" {
		cfg.UI.DateFormat = "02-Jan-2006"
	}
	if cfg.UI.TimeFormat == "" {
		cfg.UI.TimeFormat = "15:04:05"
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("KUNDALI_PROVIDER"); v != "" {
		cfg.Ephemeris.Provider = v
	}
	if v := os.Getenv("KUNDALI_AYANAMSA"); v != "" {
		cfg.Ephemeris.Ayanamsa = v
	}
	if v := os.Getenv("KUNDALI_STORE_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("KUNDALI_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("KUNDALI_TRANSIT_HORIZON"); v != "" {
		if days, err := strconv.Atoi(v); err == nil && days > 0 {
			cfg.Transit.HorizonDays = days
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Ephemeris.Provider != "mean" && c.Ephemeris.Provider != "snapshot" {
		return fmt.Errorf("invalid ephemeris provider: %s (must be 'mean' or 'snapshot')", c.Ephemeris.Provider)
	}
	if c.Ephemeris.Ayanamsa != "lahiri" && c.Ephemeris.Ayanamsa != "raman" && c.Ephemeris.Ayanamsa != "krishnamurti" {
		return fmt.Errorf("invalid ayanamsa: %s", c.Ephemeris.Ayanamsa)
	}
	if c.Ephemeris.Workers < 1 || c.Ephemeris.Workers > 32 {
		return fmt.Errorf("workers must be between 1 and 32")
	}
	if c.Ephemeris.DefaultLatitude < -90 || c.Ephemeris.DefaultLatitude > 90 {
		return fmt.Errorf("default_latitude must be between -90 and 90")
	}
	if c.Ephemeris.DefaultLongitude < -180 || c.Ephemeris.DefaultLongitude > 180 {
		return fmt.Errorf("default_longitude must be between -180 and 180")
	}
	if c.Transit.HorizonDays < 1 || c.Transit.HorizonDays > 3650 {
		return fmt.Errorf("horizon_days must be between 1 and 3650")
	}
	if c.Transit.StepDays < 1 || c.Transit.StepDays > c.Transit.HorizonDays {
		return fmt.Errorf("step_days must be between 1 and horizon_days")
	}
	return nil
}
