package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/wanderkit/tripdesk/internal/activity"
	"github.com/wanderkit/tripdesk/internal/booking"
	"github.com/wanderkit/tripdesk/internal/cart"
	"github.com/wanderkit/tripdesk/internal/catalog"
	"github.com/wanderkit/tripdesk/internal/notify"
	"github.com/wanderkit/tripdesk/internal/session"
)

// NewDemoCmd creates the 'demo' command running a scripted session.
func NewDemoCmd() *cobra.Command {
	var persist bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted end-to-end session",
		Long: `Walk one session through the whole funnel: search destinations, view
listings, fill the cart (including a duplicate add), check out, and watch
the resulting bookings until they complete.

By default the demo is ephemeral; --persist writes to the real store so
'tripdesk activity' can show the results afterwards.`,
		Example: `  tripdesk demo
  tripdesk demo --persist`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(persist)
		},
	}

	cmd.Flags().BoolVar(&persist, "persist", false, "Write demo activity to the configured store")

	return cmd
}

// runDemo exercises search, views, cart dedup, checkout, and monitoring.
func runDemo(persist bool) error {
	cfg := loadConfig()

	sess := session.New(session.Options{
		Store:        openStore(cfg, !persist),
		Source:       booking.NewScriptedSource(booking.StatusConfirmed, booking.StatusCompleted),
		Notifier:     notify.Nop{},
		PollInterval: 200 * time.Millisecond,
		LedgerSlot:   cfg.LedgerSlot,
	})
	defer sess.Close()

	// Search
	index, err := catalog.NewMemIndex()
	if err != nil {
		return fmt.Errorf("failed to build catalog index: %w", err)
	}
	defer index.Close()
	if err := index.Add(catalog.Seed()); err != nil {
		return fmt.Errorf("failed to index catalog: %w", err)
	}

	hits, err := index.Search("temples", 3)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	sess.Ledger.TrackSearch("Kyoto", "2026-10-01", activity.TravelFlight)
	fmt.Printf("Searched for temples: %d destinations\n", len(hits))

	// Views
	sess.Ledger.TrackView("kyoto", activity.ItemDestination)
	sess.Ledger.TrackView("F100", activity.ItemFlight)
	sess.Ledger.TrackView("H220", activity.ItemHotel)
	fmt.Println("Viewed kyoto, flight F100, hotel H220")

	// Cart with a duplicate add
	sess.Cart.Add(cart.Item{ID: "F100", Type: activity.TravelFlight, Name: "NRT round trip", Destination: "Kyoto", Price: 820})
	sess.Cart.Add(cart.Item{ID: "H220", Type: activity.TravelHotel, Name: "Gion ryokan", Destination: "Kyoto", Price: 340, Quantity: 2})
	sess.Cart.Add(cart.Item{ID: "F100", Type: activity.TravelFlight, Name: "NRT round trip", Destination: "Kyoto", Price: 820})
	fmt.Printf("Cart: %d items across %d lines, total %.2f\n",
		sess.Cart.ItemCount(), len(sess.Cart.Items()), sess.Cart.Total())

	// Checkout
	results, err := sess.Checkout()
	if err != nil {
		return err
	}
	fmt.Printf("Checked out %d bookings; cart now holds %d items\n", len(results), sess.Cart.ItemCount())

	// Watch each booking to completion
	for _, result := range results {
		monitor, err := sess.WatchBooking(result.BookingID, booking.StatusPending, func(status booking.Status) {
			fmt.Printf("  %s (%s) -> %s\n", result.Name, result.BookingID[:8], status)
		})
		if err != nil {
			return err
		}
		<-monitor.Done()
	}

	// Funnel
	report := sess.Ledger.Funnel()
	fmt.Printf("\nFunnel: %d searches, %d views, %d bookings, %d with time-to-book\n",
		report.Searches, report.Views, report.Bookings, report.Measured)

	return nil
}
