package cli

import (
	"testing"

	"github.com/wanderkit/tripdesk/internal/activity"
	"github.com/wanderkit/tripdesk/internal/booking"
	"github.com/wanderkit/tripdesk/internal/cart"
	"github.com/wanderkit/tripdesk/internal/storage"
)

func TestParseScript(t *testing.T) {
	source, err := parseScript("pending, confirmed,completed")
	if err != nil {
		t.Fatalf("parseScript failed: %v", err)
	}
	if source == nil {
		t.Fatal("expected a source")
	}

	scripted, ok := source.(*booking.ScriptedSource)
	if !ok {
		t.Fatalf("expected scripted source, got %T", source)
	}
	_ = scripted
}

func TestParseScript_Invalid(t *testing.T) {
	if _, err := parseScript("pending,shipped"); err == nil {
		t.Error("expected error for unknown status in script")
	}
}

func TestFormatSeconds(t *testing.T) {
	if got := formatSeconds(42); got != "42s" {
		t.Errorf("expected 42s, got %q", got)
	}
	if got := formatSeconds(90); got != "1m30s" {
		t.Errorf("expected 1m30s, got %q", got)
	}
}

func TestCommandsConstruct(t *testing.T) {
	for _, cmd := range []interface{ Name() string }{
		NewActivityCmd(),
		NewCartCmd(),
		NewDestinationsCmd(),
		NewWatchCmd(),
		NewDemoCmd(),
		NewVersionCmd(),
	} {
		if cmd.Name() == "" {
			t.Error("expected command name")
		}
	}
}

func TestCartSlot_RoundTrip(t *testing.T) {
	store := storage.NewMemoryStore()

	c := cart.New()
	c.Add(cart.Item{ID: "F100", Type: activity.TravelFlight, Name: "NRT round trip", Price: 820})
	c.Add(cart.Item{ID: "H220", Type: activity.TravelHotel, Quantity: 2})

	if err := saveCart(store, c); err != nil {
		t.Fatalf("saveCart failed: %v", err)
	}

	loaded := loadCart(store)
	if loaded.ItemCount() != 3 {
		t.Errorf("expected 3 items after reload, got %d", loaded.ItemCount())
	}
	if !loaded.Contains("F100", activity.TravelFlight) {
		t.Error("expected F100 flight line to survive reload")
	}

	items := loaded.Items()
	if len(items) != 2 || items[0].ID != "F100" {
		t.Errorf("expected insertion order preserved, got %+v", items)
	}
}

func TestLoadCart_CorruptSlotYieldsEmptyCart(t *testing.T) {
	store := storage.NewMemoryStore()
	if err := store.Save(cartSlot, "{not json"); err != nil {
		t.Fatalf("seed save failed: %v", err)
	}

	c := loadCart(store)
	if c.ItemCount() != 0 {
		t.Errorf("expected empty cart from corrupt slot, got %d items", c.ItemCount())
	}
}
