// Package config provides configuration management for Sigil.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mrz1836/sigil/internal/fileutil"
)

// Config represents the application configuration.
type Config struct {
	Version  int            `yaml:"version"`
	Home     string         `yaml:"home"`
	SLIP39   SLIP39Config   `yaml:"slip39"`
	Security SecurityConfig `yaml:"security"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SLIP39Config defines the default sharing parameters applied when a
// generate command does not override them explicitly.
type SLIP39Config struct {
	IterationExponent int  `yaml:"iteration_exponent"`
	Extendable        bool `yaml:"extendable"`
	GroupThreshold    int  `yaml:"group_threshold"`
}

// SecurityConfig defines security settings.
type SecurityConfig struct {
	AutoLockSeconds     int     `yaml:"auto_lock_seconds"`
	RequireConfirmAbove float64 `yaml:"require_confirm_above"`
	MemoryLock          bool    `yaml:"memory_lock"`
	SessionEnabled      bool    `yaml:"session_enabled"`
	SessionTTLMinutes   int     `yaml:"session_ttl_minutes"`
}

// OutputConfig defines output formatting settings.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Color         string `yaml:"color"`
	Verbose       bool   `yaml:"verbose"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load reads configuration from the specified file.
func Load(path string) (*Config, error) {
	// #nosec G304 -- config file path is from validated user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes configuration to the specified file.
func Save(cfg *Config, path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return fileutil.WriteAtomic(path, data, 0o600)
}

// Path returns the default config file path.
func Path(home string) string {
	return filepath.Join(home, "config.yaml")
}

// GetHome returns the sigil home directory path.
func (c *Config) GetHome() string {
	return c.Home
}

// GetSLIP39 returns the default SLIP-39 sharing parameters.
func (c *Config) GetSLIP39() SLIP39Config {
	return c.SLIP39
}

// GetLoggingLevel returns the configured logging level.
func (c *Config) GetLoggingLevel() string {
	return c.Logging.Level
}

// GetLoggingFile returns the configured log file path.
func (c *Config) GetLoggingFile() string {
	return c.Logging.File
}

// GetOutputFormat returns the default output format.
func (c *Config) GetOutputFormat() string {
	return c.Output.DefaultFormat
}

// IsVerbose returns true if verbose output is enabled.
func (c *Config) IsVerbose() bool {
	return c.Output.Verbose
}

// GetSecurity returns the security configuration.
func (c *Config) GetSecurity() SecurityConfig {
	return c.Security
}

// DefaultHome returns the default sigil home directory.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sigil"
	}
	return filepath.Join(home, ".sigil")
}
