package session

import (
	"testing"
	"time"

	"github.com/wanderkit/tripdesk/internal/activity"
	"github.com/wanderkit/tripdesk/internal/booking"
	"github.com/wanderkit/tripdesk/internal/cart"
	"github.com/wanderkit/tripdesk/internal/storage"
)

func TestNew_Defaults(t *testing.T) {
	sess := New(Options{})
	defer sess.Close()

	if sess.ID == "" {
		t.Error("expected a session ID")
	}
	if sess.Ledger == nil || sess.Cart == nil {
		t.Fatal("expected ledger and cart to be initialized")
	}
}

func TestSessions_AreIsolated(t *testing.T) {
	first := New(Options{})
	defer first.Close()
	second := New(Options{})
	defer second.Close()

	first.Ledger.TrackSearch("Tokyo", "", activity.TravelFlight)
	first.Cart.Add(cart.Item{ID: "F100", Type: activity.TravelFlight})

	if got := len(second.Ledger.Searches()); got != 0 {
		t.Errorf("expected second session's ledger untouched, got %d searches", got)
	}
	if second.Cart.Contains("F100", activity.TravelFlight) {
		t.Error("expected second session's cart untouched")
	}
	if first.ID == second.ID {
		t.Error("expected distinct session IDs")
	}
}

func TestSession_SharedStoreHydratesLedger(t *testing.T) {
	store := storage.NewMemoryStore()

	first := New(Options{Store: store})
	first.Ledger.TrackSearch("Kyoto", "", activity.TravelHotel)
	// Leave the store open for the second session.

	second := New(Options{Store: store})
	defer second.Close()

	if got := len(second.Ledger.Searches()); got != 1 {
		t.Errorf("expected ledger hydrated from shared store, got %d searches", got)
	}
}

func TestSession_Checkout(t *testing.T) {
	sess := New(Options{})
	defer sess.Close()

	sess.Ledger.TrackView("F100", activity.ItemFlight)
	sess.Cart.Add(cart.Item{ID: "F100", Type: activity.TravelFlight, Name: "NRT round trip", Destination: "Tokyo", Price: 820})
	sess.Cart.Add(cart.Item{ID: "H220", Type: activity.TravelHotel, Name: "Gion ryokan", Destination: "Kyoto", Price: 340})

	results, err := sess.Checkout()
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 checkout results, got %d", len(results))
	}
	if results[0].BookingID == results[1].BookingID {
		t.Error("expected unique booking IDs")
	}

	bookings := sess.Ledger.Bookings()
	if len(bookings) != 2 {
		t.Fatalf("expected 2 booking events, got %d", len(bookings))
	}
	if bookings[0].TimeToBook == nil {
		t.Error("expected time-to-book for the viewed flight")
	}
	if bookings[1].TimeToBook != nil {
		t.Error("expected absent time-to-book for the unviewed hotel")
	}

	if sess.Cart.ItemCount() != 0 {
		t.Errorf("expected empty cart after checkout, got %d", sess.Cart.ItemCount())
	}
}

func TestSession_CheckoutEmptyCart(t *testing.T) {
	sess := New(Options{})
	defer sess.Close()

	if _, err := sess.Checkout(); err == nil {
		t.Error("expected error for empty cart")
	}
}

func TestSession_WatchBooking(t *testing.T) {
	sess := New(Options{
		Source:       booking.NewScriptedSource(booking.StatusConfirmed, booking.StatusCompleted),
		PollInterval: 10 * time.Millisecond,
	})
	defer sess.Close()

	changes := make(chan booking.Status, 10)
	monitor, err := sess.WatchBooking("BK-1", booking.StatusPending, func(s booking.Status) {
		changes <- s
	})
	if err != nil {
		t.Fatalf("watch failed: %v", err)
	}

	select {
	case <-monitor.Done():
	case <-time.After(time.Second):
		t.Fatal("expected monitor to reach terminal status")
	}

	var seen []booking.Status
	for {
		select {
		case s := <-changes:
			seen = append(seen, s)
			continue
		default:
		}
		break
	}

	if len(seen) != 2 || seen[0] != booking.StatusConfirmed || seen[1] != booking.StatusCompleted {
		t.Errorf("expected [confirmed completed], got %v", seen)
	}
}

func TestSession_WatchBookingRequiresSource(t *testing.T) {
	sess := New(Options{})
	defer sess.Close()

	if _, err := sess.WatchBooking("BK-1", booking.StatusPending, nil); err == nil {
		t.Error("expected error without a status source")
	}
}

func TestSession_WatchBookingRejectsDuplicates(t *testing.T) {
	sess := New(Options{
		Source:       booking.NewScriptedSource(booking.StatusPending),
		PollInterval: time.Hour,
	})
	defer sess.Close()

	if _, err := sess.WatchBooking("BK-1", booking.StatusPending, nil); err != nil {
		t.Fatalf("first watch failed: %v", err)
	}
	if _, err := sess.WatchBooking("BK-1", booking.StatusPending, nil); err == nil {
		t.Error("expected error for duplicate watch")
	}
}

func TestSession_CloseStopsMonitors(t *testing.T) {
	sess := New(Options{
		Source:       booking.NewScriptedSource(booking.StatusPending),
		PollInterval: time.Hour,
	})

	monitor, err := sess.WatchBooking("BK-1", booking.StatusPending, nil)
	if err != nil {
		t.Fatalf("watch failed: %v", err)
	}

	if err := sess.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	select {
	case <-monitor.Done():
	case <-time.After(time.Second):
		t.Fatal("expected monitor stopped on session close")
	}

	// Close is idempotent; watching after close fails.
	if err := sess.Close(); err != nil {
		t.Errorf("expected idempotent close, got %v", err)
	}
	if _, err := sess.WatchBooking("BK-2", booking.StatusPending, nil); err == nil {
		t.Error("expected error watching on a closed session")
	}
}
