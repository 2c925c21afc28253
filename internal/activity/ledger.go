package activity

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/wanderkit/tripdesk/internal/storage"
)

const (
	// maxSearches is the retention cap on search events (FIFO eviction).
	maxSearches = 20

	// maxViews is the retention cap on view events (FIFO eviction).
	maxViews = 50

	// DefaultSlot is the store slot the ledger serializes into.
	DefaultSlot = "activity-ledger"
)

// ledgerState is the serialized form of the ledger.
type ledgerState struct {
	Searches    []SearchEvent  `json:"searches"`
	Views       []ViewEvent    `json:"views"`
	Bookings    []BookingEvent `json:"bookings"`
	Preferences Preferences    `json:"preferences"`
}

// Ledger is the activity record for one session.
//
// Every mutation re-serializes the whole ledger and writes it to the store.
// That is deliberate: the payload is small (searches and views are capped)
// and unconditional writes keep the persistence path simple.
type Ledger struct {
	mu    sync.Mutex
	store storage.Store
	slot  string
	state ledgerState

	// now is a seam for tests; defaults to time.Now.
	now func() time.Time
}

// NewLedger creates a ledger hydrated from the given store slot.
//
// A missing slot yields an empty ledger. A corrupt payload is discarded with
// a warning and the ledger starts from defaults; this is the only recognized
// failure path on load and it is non-fatal.
func NewLedger(store storage.Store, slot string) *Ledger {
	if slot == "" {
		slot = DefaultSlot
	}

	l := &Ledger{
		store: store,
		slot:  slot,
		now:   time.Now,
	}

	payload, ok, err := store.Load(slot)
	if err != nil {
		log.Printf("Warning: failed to load activity ledger: %v", err)
		return l
	}
	if !ok {
		return l
	}

	var state ledgerState
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		log.Printf("Warning: discarding corrupt activity ledger: %v", err)
		return l
	}
	l.state = state

	return l
}

// TrackSearch records a search, evicting the oldest entry at the cap.
func (l *Ledger) TrackSearch(destination, date string, travelType TravelType) {
	l.mu.Lock()
	defer l.mu.Unlock()

	event := SearchEvent{
		Destination: destination,
		Date:        date,
		Type:        travelType,
		Timestamp:   l.now(),
	}

	l.state.Searches = append(l.state.Searches, event)
	if len(l.state.Searches) > maxSearches {
		l.state.Searches = l.state.Searches[len(l.state.Searches)-maxSearches:]
	}

	l.persist()
}

// TrackView records a listing view, evicting the oldest entry at the cap.
func (l *Ledger) TrackView(itemID string, itemType ItemType) {
	l.mu.Lock()
	defer l.mu.Unlock()

	event := ViewEvent{
		ItemID:    itemID,
		Type:      itemType,
		Timestamp: l.now(),
	}

	l.state.Views = append(l.state.Views, event)
	if len(l.state.Views) > maxViews {
		l.state.Views = l.state.Views[len(l.state.Views)-maxViews:]
	}

	l.persist()
}

// TrackBooking records a booking and derives its time-to-book from the
// first recorded view of the same item, if any. No prior view means the
// metric is absent, not zero. A negative value from clock skew is passed
// through as-is.
func (l *Ledger) TrackBooking(itemID string, travelType TravelType, destination string) BookingEvent {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	event := BookingEvent{
		ItemID:      itemID,
		Type:        travelType,
		Destination: destination,
		Timestamp:   now,
	}

	// First matching view wins; the view history is capped at maxViews so a
	// linear scan stays cheap.
	for _, view := range l.state.Views {
		if view.ItemID == itemID && view.Type == ItemType(travelType) {
			seconds := now.Sub(view.Timestamp).Seconds()
			event.TimeToBook = &seconds
			break
		}
	}

	l.state.Bookings = append(l.state.Bookings, event)
	l.persist()
	l.mirrorBooking(event)

	return event
}

// UpdatePreferences shallow-merges the given fields into the preferences.
// The budget range is normalized so low <= high.
func (l *Ledger) UpdatePreferences(update PreferencesUpdate) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if update.FavoriteDestinations != nil {
		l.state.Preferences.FavoriteDestinations = dedupe(update.FavoriteDestinations)
	}
	if update.PreferredActivities != nil {
		l.state.Preferences.PreferredActivities = dedupe(update.PreferredActivities)
	}
	if update.TravelStyle != nil {
		l.state.Preferences.TravelStyle = dedupe(update.TravelStyle)
	}
	if update.BudgetRange != nil {
		budget := *update.BudgetRange
		if budget[0] > budget[1] {
			budget[0], budget[1] = budget[1], budget[0]
		}
		l.state.Preferences.BudgetRange = budget
	}

	l.persist()
}

// Searches returns a copy of the recorded search events, oldest first.
func (l *Ledger) Searches() []SearchEvent {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]SearchEvent(nil), l.state.Searches...)
}

// Views returns a copy of the recorded view events, oldest first.
func (l *Ledger) Views() []ViewEvent {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]ViewEvent(nil), l.state.Views...)
}

// Bookings returns a copy of the recorded booking events, oldest first.
func (l *Ledger) Bookings() []BookingEvent {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]BookingEvent(nil), l.state.Bookings...)
}

// Preferences returns a copy of the current preferences.
func (l *Ledger) Preferences() Preferences {
	l.mu.Lock()
	defer l.mu.Unlock()

	prefs := l.state.Preferences
	prefs.FavoriteDestinations = append([]string(nil), prefs.FavoriteDestinations...)
	prefs.PreferredActivities = append([]string(nil), prefs.PreferredActivities...)
	prefs.TravelStyle = append([]string(nil), prefs.TravelStyle...)
	return prefs
}

// persist serializes the full ledger into its store slot.
// Save failures are logged, never surfaced; the in-memory state stays
// authoritative for the rest of the session. Callers must hold l.mu.
func (l *Ledger) persist() {
	data, err := json.Marshal(l.state)
	if err != nil {
		log.Printf("Warning: failed to serialize activity ledger: %v", err)
		return
	}

	if err := l.store.Save(l.slot, string(data)); err != nil {
		log.Printf("Warning: failed to persist activity ledger: %v", err)
	}
}

// mirrorBooking forwards a booking event to stores that keep a relational
// mirror. Callers must hold l.mu.
func (l *Ledger) mirrorBooking(event BookingEvent) {
	recorder, ok := l.store.(storage.BookingRecorder)
	if !ok {
		return
	}

	rec := storage.BookingRecord{
		ItemID:      event.ItemID,
		ItemType:    string(event.Type),
		Destination: event.Destination,
		TimeToBook:  event.TimeToBook,
		Timestamp:   event.Timestamp,
	}

	if err := recorder.RecordBooking(rec); err != nil {
		log.Printf("Warning: failed to mirror booking event: %v", err)
	}
}

// dedupe returns the values with duplicates removed, order preserved.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
