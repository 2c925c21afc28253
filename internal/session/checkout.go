package session

import (
	"fmt"

	"github.com/google/uuid"
)

// CheckoutResult describes one booking created by a checkout.
type CheckoutResult struct {
	BookingID   string
	ItemID      string
	Name        string
	Destination string
}

// Checkout books every line in the cart.
//
// Each cart line becomes one booking event in the ledger (which derives its
// time-to-book from the first recorded view of the item) and gets a freshly
// generated booking identity for status tracking. The cart is emptied on
// success; an empty cart is an error so the UI can keep the button disabled.
func (s *Session) Checkout() ([]CheckoutResult, error) {
	items := s.Cart.Items()
	if len(items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	results := make([]CheckoutResult, 0, len(items))
	for _, item := range items {
		s.Ledger.TrackBooking(item.ID, item.Type, item.Destination)

		results = append(results, CheckoutResult{
			BookingID:   uuid.NewString(),
			ItemID:      item.ID,
			Name:        item.Name,
			Destination: item.Destination,
		})
	}

	s.Cart.Clear()

	return results, nil
}
