// Package config provides configuration management for the award ETL.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingInputPath   = errors.New("input.path is required")
	ErrMissingCPIPath     = errors.New("cpi.path is required")
	ErrMissingCPISheet    = errors.New("cpi.sheet is required")
	ErrInvalidBaseYear    = errors.New("cpi.base_year must be a four-digit year")
	ErrMissingOutputPath  = errors.New("output.path is required")
	ErrInvalidCompression = errors.New("output.compression must be one of: zstd, snappy, gzip")
	ErrInvalidMinAmount   = errors.New("output.min_amount must be non-negative")
	ErrNoMergePrefixes    = errors.New("merge.title_prefixes must not be empty")
	ErrInvalidMinAbstract = errors.New("cleaning.min_abstract_chars must be non-negative")
	ErrInvalidLogLevel    = errors.New("logging.level must be one of: debug, info, warn, error")
)

// NSF boilerplate appended to most post-2018 abstracts. Stripped before any
// grouping or word counting.
const statutoryBoilerplate = "This award reflects NSF's statutory mission and has been deemed worthy of support through evaluation using the Foundation's intellectual merit and broader impacts review criteria."

// Config represents the complete ETL configuration.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	CPI      CPIConfig      `yaml:"cpi"`
	Cleaning CleaningConfig `yaml:"cleaning"`
	Merge    MergeConfig    `yaml:"merge"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// InputConfig locates the award CSV export.
type InputConfig struct {
	Path string `yaml:"path"`
}

// CPIConfig locates the annual CPI workbook and fixes the reference year.
type CPIConfig struct {
	Path     string `yaml:"path"`
	Sheet    string `yaml:"sheet"`
	BaseYear int    `yaml:"base_year"`
}

// CleaningConfig controls text cleanup of titles and abstracts.
type CleaningConfig struct {
	BoilerplatePhrases []string `yaml:"boilerplate_phrases"`
	MinAbstractChars   int      `yaml:"min_abstract_chars"`
}

// MergeConfig controls collaborative-award merging.
type MergeConfig struct {
	TitlePrefixes []string `yaml:"title_prefixes"`
}

// OutputConfig defines the columnar output file and amount threshold.
type OutputConfig struct {
	Path         string  `yaml:"path"`
	Compression  string  `yaml:"compression"`
	ManifestPath string  `yaml:"manifest_path"`
	MinAmount    float64 `yaml:"min_amount"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a configuration with all defaults filled in.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Path: "awards.csv",
		},
		CPI: CPIConfig{
			Path:     "cpi.xlsx",
			Sheet:    "Annual",
			BaseYear: 2018,
		},
		Cleaning: CleaningConfig{
			BoilerplatePhrases: []string{statutoryBoilerplate},
			MinAbstractChars:   1,
		},
		Merge: MergeConfig{
			TitlePrefixes: []string{
				"Collaborative Research:",
				"Collaborative Proposal:",
			},
		},
		Output: OutputConfig{
			Path:         "awards.parquet",
			Compression:  "zstd",
			ManifestPath: "awards.manifest.json",
			MinAmount:    1000,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from a YAML file, applying defaults for
// omitted sections.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Input.Path == "" {
		return ErrMissingInputPath
	}

	if c.CPI.Path == "" {
		return ErrMissingCPIPath
	}

	if c.CPI.Sheet == "" {
		return ErrMissingCPISheet
	}

	if c.CPI.BaseYear < 1000 || c.CPI.BaseYear > 9999 {
		return ErrInvalidBaseYear
	}

	if c.Cleaning.MinAbstractChars < 0 {
		return ErrInvalidMinAbstract
	}

	if len(c.Merge.TitlePrefixes) == 0 {
		return ErrNoMergePrefixes
	}

	if c.Output.Path == "" {
		return ErrMissingOutputPath
	}

	switch c.Output.Compression {
	case "zstd", "snappy", "gzip":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidCompression, c.Output.Compression)
	}

	if c.Output.MinAmount < 0 {
		return ErrInvalidMinAmount
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Input: %s, CPI: %s (base %d), Output: %s}",
		c.Input.Path,
		c.CPI.Path,
		c.CPI.BaseYear,
		c.Output.Path,
	)
}
