/*
Package cart implements the deduplicated shopping cart.

A cart holds at most one line per (item identity, item type) pair. Adding an
item that is already present is a no-op; the UI uses Contains to render the
"already in cart" affordance instead of silently bumping quantities.
*/
package cart

import (
	"sync"

	"github.com/wanderkit/tripdesk/internal/activity"
)

// Key identifies a distinct cart line.
type Key struct {
	ID   string
	Type activity.TravelType
}

// Item is one cart line. Name, Destination, and Price are display fields
// owned by the caller; the store only keys on ID and Type.
type Item struct {
	ID          string              `json:"id"`
	Type        activity.TravelType `json:"type"`
	Name        string              `json:"name"`
	Destination string              `json:"destination"`
	Price       float64             `json:"price"`
	Quantity    int                 `json:"quantity"`
}

// Store is the session shopping cart. The zero value is not usable; create
// one with New.
type Store struct {
	mu    sync.Mutex
	items map[Key]Item
	order []Key
}

// New creates an empty cart.
func New() *Store {
	return &Store{
		items: make(map[Key]Item),
	}
}

// Add inserts a new cart line. If a line with the same (ID, Type) already
// exists this is a no-op; callers check Contains to decide whether to offer
// the add at all. A quantity below 1 is coerced to 1.
func (s *Store) Add(item Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := Key{ID: item.ID, Type: item.Type}
	if _, exists := s.items[key]; exists {
		return
	}

	if item.Quantity < 1 {
		item.Quantity = 1
	}

	s.items[key] = item
	s.order = append(s.order, key)
}

// Remove deletes the matching line. A missing line is a no-op, not an error.
func (s *Store) Remove(id string, travelType activity.TravelType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := Key{ID: id, Type: travelType}
	if _, exists := s.items[key]; !exists {
		return
	}

	delete(s.items, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Contains reports whether a line with the given identity exists.
func (s *Store) Contains(id string, travelType activity.TravelType) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.items[Key{ID: id, Type: travelType}]
	return exists
}

// ItemCount returns the sum of quantities across all lines.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Items returns a snapshot of the cart lines in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Item, 0, len(s.order))
	for _, key := range s.order {
		items = append(items, s.items[key])
	}
	return items
}

// Total returns the sum of price times quantity across all lines.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, item := range s.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Clear empties the cart. Called after checkout.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[Key]Item)
	s.order = nil
}
