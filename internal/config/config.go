/*
Package config handles loading and saving tripdesk configuration.

Configuration is stored in ~/.tripdesk.json.

Schema:
  {
    "storagePath": "/home/user/.tripdesk/tripdesk.db",
    "pollIntervalSeconds": 10,
    "desktopNotifications": true,
    "ledgerSlot": "activity-ledger"
  }
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config represents the root configuration structure.
type Config struct {
	// StoragePath is the SQLite database path. Empty means the default
	// (~/.tripdesk/tripdesk.db).
	StoragePath string `json:"storagePath,omitempty"`

	// PollIntervalSeconds is how often booking monitors poll for status.
	PollIntervalSeconds int `json:"pollIntervalSeconds,omitempty"`

	// DesktopNotifications enables toast notifications for booking
	// status changes. When false, notifications go to the log.
	DesktopNotifications bool `json:"desktopNotifications"`

	// LedgerSlot is the store slot for the activity ledger. Empty means
	// the default slot.
	LedgerSlot string `json:"ledgerSlot,omitempty"`
}

// NewConfig creates a configuration with defaults.
func NewConfig() *Config {
	return &Config{
		PollIntervalSeconds:  10,
		DesktopNotifications: true,
	}
}

// PollInterval returns the poll interval as a duration, falling back to the
// default when unset.
func (c *Config) PollInterval() time.Duration {
	if c.PollIntervalSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.PollIntervalSeconds < 0 {
		return fmt.Errorf("pollIntervalSeconds must not be negative, got %d", c.PollIntervalSeconds)
	}
	return nil
}

// GetDefaultConfigPath returns the path to ~/.tripdesk.json.
func GetDefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".tripdesk.json"), nil
}
