/*
Package activity implements the session activity ledger.

The ledger is an append-only, size-bounded record of searches, item views,
and bookings, plus the user's travel preferences. It persists itself in full
after every mutation and computes derived funnel metrics (most notably
time-to-book: seconds between the first view of an item and its booking).
*/
package activity

import "time"

// TravelType classifies a bookable product.
type TravelType string

const (
	TravelFlight  TravelType = "flight"
	TravelHotel   TravelType = "hotel"
	TravelCar     TravelType = "car"
	TravelPackage TravelType = "package"
)

// ItemType classifies a viewable listing. It covers every TravelType plus
// destination pages, which can be viewed but not booked.
type ItemType string

const (
	ItemFlight      ItemType = "flight"
	ItemHotel       ItemType = "hotel"
	ItemCar         ItemType = "car"
	ItemPackage     ItemType = "package"
	ItemDestination ItemType = "destination"
)

// SearchEvent records one search the user ran.
type SearchEvent struct {
	Destination string     `json:"destination"`
	Date        string     `json:"date"`
	Type        TravelType `json:"type"`
	Timestamp   time.Time  `json:"timestamp"`
}

// ViewEvent records one listing the user opened.
type ViewEvent struct {
	ItemID    string    `json:"itemId"`
	Type      ItemType  `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// BookingEvent records one completed booking.
type BookingEvent struct {
	ItemID      string     `json:"itemId"`
	Type        TravelType `json:"type"`
	Destination string     `json:"destination"`

	// TimeToBook is the elapsed seconds between the user's first recorded
	// view of the item and this booking. Nil when the item was booked
	// without a prior view (e.g. a deep link straight to checkout).
	TimeToBook *float64 `json:"timeToBook,omitempty"`

	Timestamp time.Time `json:"timestamp"`
}

// Preferences holds the user's derived travel preferences.
type Preferences struct {
	FavoriteDestinations []string `json:"favoriteDestinations"`
	PreferredActivities  []string `json:"preferredActivities"`

	// BudgetRange is [low, high] with low <= high.
	BudgetRange [2]float64 `json:"budgetRange"`

	TravelStyle []string `json:"travelStyle"`
}

// PreferencesUpdate is a partial preferences change. Nil fields are left
// unchanged by the merge.
type PreferencesUpdate struct {
	FavoriteDestinations []string
	PreferredActivities  []string
	BudgetRange          *[2]float64
	TravelStyle          []string
}
