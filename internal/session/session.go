/*
Package session ties the commerce engine together for one user session.

A Session is an explicitly constructed context object holding the activity
ledger, the cart, and the booking monitors it has started. Nothing in the
engine is a package-level singleton: tests and embedders can run any number
of independent sessions side by side.
*/
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wanderkit/tripdesk/internal/activity"
	"github.com/wanderkit/tripdesk/internal/booking"
	"github.com/wanderkit/tripdesk/internal/cart"
	"github.com/wanderkit/tripdesk/internal/notify"
	"github.com/wanderkit/tripdesk/internal/storage"
)

// Options configures a session.
type Options struct {
	// Store backs the activity ledger. Nil means an in-memory store
	// (nothing survives the process).
	Store storage.Store

	// Source is the booking status authority. Nil disables WatchBooking.
	Source booking.StatusSource

	// Notifier receives booking status notifications. Nil means none.
	Notifier notify.Notifier

	// PollInterval overrides the monitor poll interval. Zero means the
	// booking package default.
	PollInterval time.Duration

	// LedgerSlot overrides the ledger's store slot. Empty means the
	// activity package default.
	LedgerSlot string
}

// Session is the commerce state for one user session.
type Session struct {
	ID     string
	Ledger *activity.Ledger
	Cart   *cart.Store

	opts Options

	mu       sync.Mutex
	monitors map[string]*booking.Monitor
	closed   bool
}

// New creates a session, hydrating the ledger from the store.
func New(opts Options) *Session {
	if opts.Store == nil {
		opts.Store = storage.NewMemoryStore()
	}

	return &Session{
		ID:       uuid.NewString(),
		Ledger:   activity.NewLedger(opts.Store, opts.LedgerSlot),
		Cart:     cart.New(),
		opts:     opts,
		monitors: make(map[string]*booking.Monitor),
	}
}

// WatchBooking starts a lifecycle monitor for a booking. The monitor is
// owned by the session: it is stopped on Close, or earlier when the booking
// reaches a terminal status.
func (s *Session) WatchBooking(bookingID string, current booking.Status, onChange func(booking.Status)) (*booking.Monitor, error) {
	if s.opts.Source == nil {
		return nil, fmt.Errorf("session has no booking status source")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, fmt.Errorf("session is closed")
	}
	if _, exists := s.monitors[bookingID]; exists {
		return nil, fmt.Errorf("booking %s is already being watched", bookingID)
	}

	opts := []booking.Option{}
	if s.opts.PollInterval > 0 {
		opts = append(opts, booking.WithInterval(s.opts.PollInterval))
	}
	if s.opts.Notifier != nil {
		opts = append(opts, booking.WithNotifier(s.opts.Notifier))
	}

	monitor := booking.StartMonitor(bookingID, current, s.opts.Source, onChange, opts...)
	s.monitors[bookingID] = monitor

	return monitor, nil
}

// Monitors returns the monitors the session currently owns.
func (s *Session) Monitors() []*booking.Monitor {
	s.mu.Lock()
	defer s.mu.Unlock()

	monitors := make([]*booking.Monitor, 0, len(s.monitors))
	for _, m := range s.monitors {
		monitors = append(monitors, m)
	}
	return monitors
}

// Close stops all monitors and closes the backing store. It is idempotent
// and safe to call on every teardown path.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	monitors := make([]*booking.Monitor, 0, len(s.monitors))
	for _, m := range s.monitors {
		monitors = append(monitors, m)
	}
	s.monitors = make(map[string]*booking.Monitor)
	s.mu.Unlock()

	for _, m := range monitors {
		m.Stop()
	}

	return s.opts.Store.Close()
}
