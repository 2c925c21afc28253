package booking

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/wanderkit/tripdesk/internal/notify"
)

// DefaultPollInterval is how often a monitor polls the status source.
const DefaultPollInterval = 10 * time.Second

// StatusSource is the external authority for booking statuses. The monitor
// treats it as opaque and does not know its transport.
type StatusSource interface {
	FetchStatus(ctx context.Context, bookingID string) (Status, error)
}

// Monitor watches one booking and reports forward status transitions.
//
// A monitor is bound to exactly one booking at construction and cannot be
// rebound. It polls once immediately, then on every tick, and stops itself
// when the booking reaches a terminal status. The onChange callback runs on
// the monitor's polling goroutine and must not call Stop; terminal statuses
// stop the monitor on their own.
type Monitor struct {
	bookingID string
	source    StatusSource
	onChange  func(Status)
	notifier  notify.Notifier
	interval  time.Duration

	mu      sync.Mutex
	current Status
	stopped bool

	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

// Option configures a monitor at construction.
type Option func(*Monitor)

// WithInterval overrides the polling interval.
func WithInterval(interval time.Duration) Option {
	return func(m *Monitor) {
		if interval > 0 {
			m.interval = interval
		}
	}
}

// WithNotifier attaches a notification sink for status transitions.
func WithNotifier(n notify.Notifier) Option {
	return func(m *Monitor) {
		m.notifier = n
	}
}

// StartMonitor begins observing a booking from the given current status.
//
// onChange is invoked at most once per genuine forward transition. The
// returned monitor must be stopped via Stop when the owner goes away;
// stopping twice is safe.
func StartMonitor(bookingID string, current Status, source StatusSource, onChange func(Status), opts ...Option) *Monitor {
	m := &Monitor{
		bookingID: bookingID,
		source:    source,
		onChange:  onChange,
		interval:  DefaultPollInterval,
		current:   current,
		done:      make(chan struct{}),
	}

	for _, opt := range opts {
		opt(m)
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	go m.run(ctx)

	return m
}

// BookingID returns the identity the monitor is bound to.
func (m *Monitor) BookingID() string {
	return m.bookingID
}

// Current returns the last adopted status.
func (m *Monitor) Current() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Done is closed when the polling goroutine has exited, either because the
// booking reached a terminal status or because Stop was called.
func (m *Monitor) Done() <-chan struct{} {
	return m.done
}

// Stop cancels polling. It is idempotent, and once it returns no further
// onChange invocations occur, even for a fetch already in flight.
func (m *Monitor) Stop() {
	m.stopOnce.Do(func() {
		m.mu.Lock()
		m.stopped = true
		m.mu.Unlock()
		m.cancel()
	})
}

// run polls once immediately, then on every tick until cancelled.
func (m *Monitor) run(ctx context.Context) {
	defer close(m.done)

	m.poll(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.poll(ctx)
		}
	}
}

// poll fetches the authoritative status and adopts it if it is a forward
// transition. Equal or backward statuses are treated as stale and ignored;
// the monitor never moves backward. A fetch failure is logged and retried
// on the next tick.
func (m *Monitor) poll(ctx context.Context) {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()

	fetched, err := m.source.FetchStatus(ctx, m.bookingID)
	if err != nil {
		if ctx.Err() == nil {
			log.Printf("Warning: status fetch failed for booking %s: %v", m.bookingID, err)
		}
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stopped || !fetched.After(m.current) {
		return
	}

	m.current = fetched
	if fetched.Terminal() {
		// Mark stopped before the callback so a racing tick cannot fetch
		// again after the terminal transition.
		m.stopped = true
		defer m.cancel()
	}

	if m.onChange != nil {
		m.onChange(fetched)
	}

	notify.Send(m.notifier,
		"Booking update",
		fmt.Sprintf("Booking %s is now %s", m.bookingID, fetched),
		levelFor(fetched),
	)
}

// levelFor maps a status to a notification severity.
func levelFor(s Status) notify.Level {
	switch s {
	case StatusCancelled:
		return notify.LevelWarning
	case StatusCompleted, StatusConfirmed:
		return notify.LevelSuccess
	default:
		return notify.LevelInfo
	}
}
