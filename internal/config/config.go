// Package config manages shardvault's on-disk configuration: default
// threshold parameters, crypto envelope costs, output formatting, and
// logging.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level shardvault configuration.
type Config struct {
	Version int           `yaml:"version"`
	Home    string        `yaml:"home"`
	Split   SplitConfig   `yaml:"split"`
	Crypto  CryptoConfig  `yaml:"crypto"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// SplitConfig defines the default threshold parameters and encoding used
// when the CLI isn't given explicit flags.
type SplitConfig struct {
	DefaultK        int    `yaml:"default_k"`
	DefaultN        int    `yaml:"default_n"`
	DefaultEncoding string `yaml:"default_encoding"`
}

// CryptoConfig defines the default Argon2id cost parameters for new
// encrypted share sets (spec §4.3).
type CryptoConfig struct {
	MemKiB      uint32 `yaml:"mem_kib"`
	Time        uint32 `yaml:"time"`
	Parallelism uint32 `yaml:"parallelism"`
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

// Load reads configuration from the specified file, filling any field a
// partial file omits from Defaults.
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
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Path returns the default config file path under home.
func Path(home string) string {
	return filepath.Join(home, "config.yaml")
}

// GetHome returns the configured shardvault home directory.
func (c *Config) GetHome() string {
	return c.Home
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

// DefaultHome returns the default shardvault home directory.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".shardvault"
	}
	return filepath.Join(home, ".shardvault")
}
