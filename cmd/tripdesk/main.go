/*
Package main is the entry point for the tripdesk CLI.

tripdesk is the client-side commerce engine for the travel storefront: it
keeps the session activity ledger, the deduplicated cart, and the booking
lifecycle monitors, persisting session state locally in SQLite.

Usage:
  tripdesk [command]

Available Commands:
  activity      Show recorded activity and funnel metrics
  cart          Manage the persisted cart
  destinations  Search the destination catalog
  watch         Follow a booking until it reaches a terminal status
  demo          Run a scripted end-to-end session
  version       Show version information
  help          Help about any command

Examples:
  # Search for somewhere to go
  tripdesk destinations "beach diving"

  # See what the funnel looks like so far
  tripdesk activity

  # Follow a booking's status transitions
  tripdesk watch BK-1042 --interval 2
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wanderkit/tripdesk/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tripdesk",
		Short: "Travel storefront commerce engine",
		Long: `tripdesk maintains the client-side commerce state for the travel
storefront: a deduplicated shopping cart, a persisted ledger of searches,
views, and bookings with derived funnel metrics, and per-booking lifecycle
monitors that poll for status changes and raise notifications.`,
	}

	rootCmd.AddCommand(
		cli.NewActivityCmd(),
		cli.NewCartCmd(),
		cli.NewDestinationsCmd(),
		cli.NewWatchCmd(),
		cli.NewDemoCmd(),
		cli.NewVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
