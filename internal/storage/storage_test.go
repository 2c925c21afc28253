package storage

import (
	"testing"
	"time"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()

	if _, ok, err := store.Load("missing"); err != nil || ok {
		t.Errorf("expected missing slot, got ok=%v err=%v", ok, err)
	}

	if err := store.Save("slot", "payload"); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	value, ok, err := store.Load("slot")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !ok || value != "payload" {
		t.Errorf("expected payload, got ok=%v value=%q", ok, value)
	}

	// Save replaces the previous value.
	if err := store.Save("slot", "updated"); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	value, _, _ = store.Load("slot")
	if value != "updated" {
		t.Errorf("expected updated, got %q", value)
	}
}

func TestMemoryStore_RecentBookings(t *testing.T) {
	store := NewMemoryStore()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, item := range []string{"a", "b", "c"} {
		rec := BookingRecord{
			ItemID:    item,
			ItemType:  "flight",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}
		if err := store.RecordBooking(rec); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}

	records, err := store.RecentBookings(0)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].ItemID != "c" {
		t.Errorf("expected newest first, got %s", records[0].ItemID)
	}

	limited, err := store.RecentBookings(2)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("expected limit 2, got %d", len(limited))
	}
}
