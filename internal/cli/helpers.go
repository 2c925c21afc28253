/*
Package cli implements the tripdesk commands.

Commands are thin: they wire configuration, storage, and notifications into
a session and print what the engine reports. All commerce behavior lives in
the internal engine packages.
*/
package cli

import (
	"log"
	"time"

	"github.com/wanderkit/tripdesk/internal/config"
	"github.com/wanderkit/tripdesk/internal/notify"
	"github.com/wanderkit/tripdesk/internal/storage"
)

// loadConfig loads the user configuration, falling back to defaults with a
// warning when it cannot be loaded or created.
func loadConfig() *config.Config {
	cfg, err := config.LoadOrCreate()
	if err != nil {
		log.Printf("Warning: using default config: %v", err)
		return config.NewConfig()
	}
	return cfg
}

// openStore opens the configured SQLite store, or an in-memory store for
// ephemeral runs. SQLite init failures degrade to no-op storage rather than
// aborting the command.
func openStore(cfg *config.Config, ephemeral bool) storage.Store {
	if ephemeral {
		return storage.NewMemoryStore()
	}

	var store *storage.SQLiteStore
	if cfg.StoragePath != "" {
		store = storage.NewSQLiteStore(cfg.StoragePath)
	} else {
		store = storage.NewDefaultSQLiteStore()
	}

	if err := store.Init(); err != nil {
		log.Printf("Warning: storage unavailable, state will not persist: %v", err)
	}

	return store
}

// notifierFor picks the notification sink for the configuration.
func notifierFor(cfg *config.Config) notify.Notifier {
	if cfg.DesktopNotifications {
		return notify.NewDesktop()
	}
	return notify.NewLog()
}

// formatSeconds renders a seconds value for display.
func formatSeconds(seconds float64) string {
	return time.Duration(seconds * float64(time.Second)).Round(time.Second).String()
}
