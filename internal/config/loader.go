package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Load reads the config from the default path.
func Load() (*Config, error) {
	path, err := GetDefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads config from an explicit path.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, &ConfigNotFoundError{
				Path: path,
				Hint: "tripdesk creates one with defaults on first run",
			}
		}
		return nil, fmt.Errorf("failed to access config: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &InvalidConfigError{
			Path:    path,
			Message: fmt.Sprintf("JSON parse error: %v", err),
			Hint:    "Restore from .bak file if available",
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, &InvalidConfigError{
			Path:    path,
			Message: err.Error(),
			Hint:    "Fix the value and retry",
		}
	}

	return &cfg, nil
}

// LoadOrCreate reads the config from the default path, writing a default
// config when none exists yet. A corrupt config is still an error; it is
// never silently overwritten.
func LoadOrCreate() (*Config, error) {
	path, err := GetDefaultConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadFrom(path)
	if err == nil {
		return cfg, nil
	}

	var notFound *ConfigNotFoundError
	if !errors.As(err, &notFound) {
		return nil, err
	}

	cfg = NewConfig()
	if saveErr := Save(cfg, path); saveErr != nil {
		return nil, fmt.Errorf("failed to create default config: %w", saveErr)
	}

	return cfg, nil
}
