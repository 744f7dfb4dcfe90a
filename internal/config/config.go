// Package config provides configuration management for the import converter.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"ark-import/internal/gateway"
	"ark-import/internal/logging"
	"ark-import/internal/normalize"
	"ark-import/internal/validation"
)

// Configuration validation errors.
var (
	ErrInvalidEncoding   = errors.New("output.encoding must be one of: cp932, shift_jis, utf-8, utf-8-sig")
	ErrInvalidLogLevel   = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrNoRequiredFields  = errors.New("validation.required_fields must name at least one field")
	ErrInvalidMinYear    = errors.New("validation.min_birth_year must be between 1 and 9999")
	ErrInvalidMinExitFee = errors.New("fees.min_exit_fee must be non-negative")
	ErrMissingPattern    = errors.New("input.report_pattern and input.contract_pattern are required")
)

// Built-in discovery defaults.
const (
	DefaultReportPattern   = "【東京支店】①案件取込用レポート*.csv"
	DefaultContractPattern = "ContractList_*.csv"
	DefaultTemplateName    = "ContractInfoSample（final） (2).csv"
)

// Config represents the complete converter configuration.
type Config struct {
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
	Validation ValidationConfig `yaml:"validation"`
	Fees       FeesConfig       `yaml:"fees"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// InputConfig controls where the input files are discovered.
type InputConfig struct {
	DownloadsDir    string `yaml:"downloads_dir"`
	ReportPattern   string `yaml:"report_pattern"`
	ContractPattern string `yaml:"contract_pattern"`
	TemplatePath    string `yaml:"template_path"`
}

// OutputConfig defines output behavior.
type OutputConfig struct {
	Dir        string `yaml:"dir"`
	Encoding   string `yaml:"encoding"`
	SkipReport bool   `yaml:"skip_report"`
}

// ValidationConfig defines the record validation rules.
type ValidationConfig struct {
	RequiredFields []string `yaml:"required_fields"`
	MinBirthYear   int      `yaml:"min_birth_year"`
}

// FeesConfig holds the computed-fee parameters.
type FeesConfig struct {
	MinExitFee int `yaml:"min_exit_fee"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the built-in configuration. Input files are looked
// up in the user's Downloads directory.
func DefaultConfig() *Config {
	downloads := "."
	if home, err := os.UserHomeDir(); err == nil {
		downloads = filepath.Join(home, "Downloads")
	}
	return &Config{
		Input: InputConfig{
			DownloadsDir:    downloads,
			ReportPattern:   DefaultReportPattern,
			ContractPattern: DefaultContractPattern,
			TemplatePath:    filepath.Join(downloads, DefaultTemplateName),
		},
		Output: OutputConfig{
			Dir:      ".",
			Encoding: gateway.EncodingCP932,
		},
		Validation: ValidationConfig{
			RequiredFields: []string{"契約番号", "名前1"},
			MinBirthYear:   validation.DefaultMinYear,
		},
		Fees: FeesConfig{
			MinExitFee: normalize.DefaultMinExitFee,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from a YAML file. Keys absent from the
// file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
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

// SaveConfig saves configuration to a YAML file, creating its directory.
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Output.Encoding) {
	case gateway.EncodingCP932, gateway.EncodingShiftJIS, gateway.EncodingUTF8, gateway.EncodingUTF8BOM:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidEncoding, c.Output.Encoding)
	}

	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("%w: got %q", ErrInvalidLogLevel, c.Logging.Level)
	}

	if len(c.Validation.RequiredFields) == 0 {
		return ErrNoRequiredFields
	}
	for i, f := range c.Validation.RequiredFields {
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("%w: required_fields[%d] is blank", ErrNoRequiredFields, i)
		}
	}

	if c.Validation.MinBirthYear < 1 || c.Validation.MinBirthYear > 9999 {
		return ErrInvalidMinYear
	}

	if c.Fees.MinExitFee < 0 {
		return ErrInvalidMinExitFee
	}

	patterns := map[string]string{
		"report_pattern":   c.Input.ReportPattern,
		"contract_pattern": c.Input.ContractPattern,
	}
	for name, pattern := range patterns {
		if pattern == "" {
			return fmt.Errorf("%w: input.%s is empty", ErrMissingPattern, name)
		}
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("input.%s is an invalid glob: %w", name, err)
		}
	}

	return nil
}
