package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadFrom(t *testing.T) {
	t.Run("file not found", func(t *testing.T) {
		tmpDir := t.TempDir()

		_, err := LoadFrom(filepath.Join(tmpDir, "nonexistent.json"))
		if err == nil {
			t.Fatal("LoadFrom should error for nonexistent file")
		}
		if _, ok := err.(*ConfigNotFoundError); !ok {
			t.Errorf("expected ConfigNotFoundError, got %T", err)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		testPath := filepath.Join(t.TempDir(), "config.json")
		if err := os.WriteFile(testPath, []byte(`{invalid json}`), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		_, err := LoadFrom(testPath)
		if err == nil {
			t.Fatal("LoadFrom should error for invalid JSON")
		}
		if _, ok := err.(*InvalidConfigError); !ok {
			t.Errorf("expected InvalidConfigError, got %T", err)
		}
		if !strings.Contains(err.Error(), ".bak") {
			t.Errorf("error should mention the backup file, got: %v", err)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		testPath := filepath.Join(t.TempDir(), "config.json")
		if err := os.WriteFile(testPath, []byte(`{"pollIntervalSeconds": -5}`), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		_, err := LoadFrom(testPath)
		if err == nil {
			t.Fatal("LoadFrom should reject a negative poll interval")
		}
		if _, ok := err.(*InvalidConfigError); !ok {
			t.Errorf("expected InvalidConfigError, got %T", err)
		}
	})

	t.Run("valid config", func(t *testing.T) {
		testPath := filepath.Join(t.TempDir(), "config.json")
		payload := `{"storagePath": "/tmp/db", "pollIntervalSeconds": 5, "desktopNotifications": true}`
		if err := os.WriteFile(testPath, []byte(payload), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		cfg, err := LoadFrom(testPath)
		if err != nil {
			t.Fatalf("LoadFrom failed: %v", err)
		}
		if cfg.StoragePath != "/tmp/db" {
			t.Errorf("expected storage path /tmp/db, got %q", cfg.StoragePath)
		}
		if cfg.PollInterval() != 5*time.Second {
			t.Errorf("expected 5s poll interval, got %v", cfg.PollInterval())
		}
		if !cfg.DesktopNotifications {
			t.Error("expected desktop notifications enabled")
		}
	})
}

func TestSave(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		testPath := filepath.Join(t.TempDir(), "config.json")

		cfg := NewConfig()
		cfg.StoragePath = "/tmp/tripdesk.db"
		cfg.PollIntervalSeconds = 30

		if err := Save(cfg, testPath); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		loaded, err := LoadFrom(testPath)
		if err != nil {
			t.Fatalf("LoadFrom failed: %v", err)
		}
		if loaded.StoragePath != cfg.StoragePath {
			t.Errorf("expected storage path %q, got %q", cfg.StoragePath, loaded.StoragePath)
		}
		if loaded.PollIntervalSeconds != 30 {
			t.Errorf("expected poll interval 30, got %d", loaded.PollIntervalSeconds)
		}
	})

	t.Run("creates backup on overwrite", func(t *testing.T) {
		testPath := filepath.Join(t.TempDir(), "config.json")

		if err := Save(NewConfig(), testPath); err != nil {
			t.Fatalf("first save failed: %v", err)
		}

		cfg := NewConfig()
		cfg.PollIntervalSeconds = 60
		if err := Save(cfg, testPath); err != nil {
			t.Fatalf("second save failed: %v", err)
		}

		if _, err := os.Stat(testPath + ".bak"); err != nil {
			t.Errorf("expected backup file after overwrite: %v", err)
		}
	})

	t.Run("rejects invalid config", func(t *testing.T) {
		testPath := filepath.Join(t.TempDir(), "config.json")

		cfg := NewConfig()
		cfg.PollIntervalSeconds = -1

		if err := Save(cfg, testPath); err == nil {
			t.Fatal("expected Save to reject invalid config")
		}
	})
}

func TestConfig_PollIntervalDefault(t *testing.T) {
	cfg := &Config{}
	if cfg.PollInterval() != 10*time.Second {
		t.Errorf("expected default 10s, got %v", cfg.PollInterval())
	}
}
