package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = ".pipeloop.yaml"

// Default values for Config.
const (
	DefaultLogLevel   = "warn"
	DefaultColor      = ColorAuto
	DefaultFrameDelay = 2 * time.Second
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	colorModes = []string{ColorAuto, ColorAlways, ColorNever}
)

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		LogLevel:   DefaultLogLevel,
		Color:      DefaultColor,
		FrameDelay: DefaultFrameDelay,
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// LoadConfig reads .pipeloop.yaml from the given base path.
// If the file doesn't exist, returns default config.
func LoadConfig(basePath string) (*Config, error) {
	cfg, err := LoadFile(filepath.Join(basePath, FileName))
	if err != nil && os.IsNotExist(err) {
		def := DefaultConfig()
		return &def, nil
	}
	return cfg, err
}

// LoadFile reads and parses the config file at path. Unlike LoadConfig a
// missing file is an error. Fields absent from the file keep their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ValidateConfig checks that config values are valid.
func ValidateConfig(cfg *Config) error {
	if !slices.Contains(logLevels, cfg.LogLevel) {
		return ValidationError{Field: "log_level", Message: fmt.Sprintf("must be one of %v, got %q", logLevels, cfg.LogLevel)}
	}
	if !slices.Contains(colorModes, cfg.Color) {
		return ValidationError{Field: "color", Message: fmt.Sprintf("must be one of %v, got %q", colorModes, cfg.Color)}
	}
	if cfg.FrameDelay < 0 {
		return ValidationError{Field: "frame_delay", Message: "must not be negative"}
	}
	return nil
}
