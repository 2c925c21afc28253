package storage

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements the Store interface using SQLite.
type SQLiteStore struct {
	db       *sql.DB
	dbPath   string
	enabled  bool
	mu       sync.Mutex
	initOnce sync.Once
}

// NewSQLiteStore creates a new SQLite store instance at the given path.
//
// If the directory doesn't exist, it will be created on Init.
// If the database cannot be opened, the store is disabled but operations
// will not fail (graceful degradation).
func NewSQLiteStore(dbPath string) *SQLiteStore {
	return &SQLiteStore{
		dbPath:  dbPath,
		enabled: true,
	}
}

// NewDefaultSQLiteStore creates a store at ~/.tripdesk/tripdesk.db.
func NewDefaultSQLiteStore() *SQLiteStore {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("Warning: failed to get home directory: %v", err)
		return &SQLiteStore{enabled: false}
	}

	return NewSQLiteStore(filepath.Join(home, ".tripdesk", "tripdesk.db"))
}

// Init initializes the database and runs migrations.
//
// If initialization fails, the store is disabled and subsequent operations
// become no-ops.
func (s *SQLiteStore) Init() error {
	if !s.enabled {
		return nil
	}

	var initErr error
	s.initOnce.Do(func() {
		// Ensure directory exists
		dbDir := filepath.Dir(s.dbPath)
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			initErr = fmt.Errorf("failed to create db directory: %w", err)
			s.enabled = false
			return
		}

		// Open database
		db, err := sql.Open("sqlite", s.dbPath)
		if err != nil {
			initErr = fmt.Errorf("failed to open database: %w", err)
			s.enabled = false
			log.Printf("Warning: %v", initErr)
			return
		}
		s.db = db

		// Test connection
		if err := db.Ping(); err != nil {
			initErr = fmt.Errorf("failed to ping database: %w", err)
			s.enabled = false
			log.Printf("Warning: %v", initErr)
			return
		}

		// Run migrations
		if err := s.runMigrations(); err != nil {
			initErr = fmt.Errorf("failed to run migrations: %w", err)
			s.enabled = false
			log.Printf("Warning: %v", initErr)
			return
		}
	})

	return initErr
}

// Load returns the payload stored in a slot.
func (s *SQLiteStore) Load(key string) (string, bool, error) {
	if !s.enabled || s.db == nil {
		return "", false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var value string
	row := s.db.QueryRow("SELECT value FROM slots WHERE key = ?", key)
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to load slot %s: %w", key, err)
	}

	return value, true, nil
}

// Save writes the payload for a slot, replacing any previous value.
func (s *SQLiteStore) Save(key, value string) error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	_, err := s.db.Exec(query, key, value, time.Now().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save slot %s: %w", key, err)
	}

	return nil
}

// RecordBooking appends a booking event to the relational mirror.
func (s *SQLiteStore) RecordBooking(rec BookingRecord) error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO booking_events (item_id, item_type, destination, time_to_book, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`

	var timeToBook interface{}
	if rec.TimeToBook != nil {
		timeToBook = *rec.TimeToBook
	}

	_, err := s.db.Exec(query,
		rec.ItemID,
		rec.ItemType,
		rec.Destination,
		timeToBook,
		rec.Timestamp.Format(time.RFC3339),
	)

	if err != nil {
		log.Printf("Warning: failed to record booking: %v", err)
	}

	return nil
}

// RecentBookings retrieves booking records from the mirror, newest first.
// Limit of 0 returns all records.
func (s *SQLiteStore) RecentBookings(limit int) ([]BookingRecord, error) {
	if !s.enabled || s.db == nil {
		return []BookingRecord{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		SELECT item_id, item_type, destination, time_to_book, timestamp
		FROM booking_events
		ORDER BY timestamp DESC, id DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		log.Printf("Warning: failed to query booking events: %v", err)
		return []BookingRecord{}, nil
	}
	defer rows.Close()

	var records []BookingRecord
	for rows.Next() {
		var rec BookingRecord
		var timeToBook sql.NullFloat64
		var timestampStr string

		if err := rows.Scan(
			&rec.ItemID,
			&rec.ItemType,
			&rec.Destination,
			&timeToBook,
			&timestampStr,
		); err != nil {
			log.Printf("Warning: failed to scan booking row: %v", err)
			continue
		}

		if timeToBook.Valid {
			value := timeToBook.Float64
			rec.TimeToBook = &value
		}

		rec.Timestamp, err = time.Parse(time.RFC3339, timestampStr)
		if err != nil {
			log.Printf("Warning: failed to parse timestamp: %v", err)
			continue
		}

		records = append(records, rec)
	}

	return records, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	s.db = nil
	return nil
}
