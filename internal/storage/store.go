/*
Package storage implements the persistence layer for session state.

This package provides SQLite-based storage for the activity ledger slot and
a relational mirror of booking events, with graceful degradation if the
database is unavailable.

The database is stored at ~/.tripdesk/tripdesk.db and uses modernc.org/sqlite
(a pure Go, CGo-free implementation).
*/
package storage

import (
	"sync"
	"time"
)

// Store defines the interface for the key/value persistence collaborator.
//
// The activity ledger serializes itself into a single named slot; the store
// is assumed durable across process restarts on one machine, not across
// devices or accounts.
type Store interface {
	// Load returns the serialized payload for a slot.
	// The second return value is false when the slot has never been written.
	Load(key string) (string, bool, error)

	// Save writes the serialized payload for a slot, replacing any
	// previous value.
	Save(key, value string) error

	// Close releases any underlying resources.
	Close() error
}

// BookingRecord is a flattened booking event for the relational mirror.
type BookingRecord struct {
	ItemID      string
	ItemType    string
	Destination string

	// TimeToBook is the elapsed seconds between the first recorded view of
	// the item and the booking, or nil when the item was never viewed.
	TimeToBook *float64

	Timestamp time.Time
}

// BookingRecorder is an optional capability of a Store. Stores that
// implement it receive a copy of every booking event for offline analysis.
type BookingRecorder interface {
	RecordBooking(rec BookingRecord) error
}

// MemoryStore is an in-memory Store used by tests and ephemeral sessions.
type MemoryStore struct {
	mu       sync.Mutex
	slots    map[string]string
	bookings []BookingRecord
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		slots: make(map[string]string),
	}
}

// Load returns the payload for a slot.
func (m *MemoryStore) Load(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.slots[key]
	return value, ok, nil
}

// Save writes the payload for a slot.
func (m *MemoryStore) Save(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.slots[key] = value
	return nil
}

// RecordBooking appends a booking record to the in-memory mirror.
func (m *MemoryStore) RecordBooking(rec BookingRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.bookings = append(m.bookings, rec)
	return nil
}

// RecentBookings returns up to limit booking records, newest first.
// Limit of 0 returns all records.
func (m *MemoryStore) RecentBookings(limit int) ([]BookingRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	records := make([]BookingRecord, 0, len(m.bookings))
	for i := len(m.bookings) - 1; i >= 0; i-- {
		if limit > 0 && len(records) >= limit {
			break
		}
		records = append(records, m.bookings[i])
	}
	return records, nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}
