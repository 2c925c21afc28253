package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wanderkit/tripdesk/internal/activity"
	"github.com/wanderkit/tripdesk/internal/catalog"
	"github.com/wanderkit/tripdesk/internal/session"
)

// NewDestinationsCmd creates the 'destinations' command for catalog search.
func NewDestinationsCmd() *cobra.Command {
	var limit int
	var travelType string
	var date string

	cmd := &cobra.Command{
		Use:   "destinations <query>",
		Short: "Search the destination catalog",
		Long: `Full-text search over the destination catalog.

Each search is recorded in the activity ledger, feeding the funnel metrics
shown by 'tripdesk activity'.`,
		Example: `  tripdesk destinations "temples"
  tripdesk destinations "beach diving" --limit 3
  tripdesk destinations tokyo --type flight --date 2026-09-12`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDestinations(strings.Join(args, " "), limit, travelType, date)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 5, "Maximum results to show")
	cmd.Flags().StringVarP(&travelType, "type", "t", "package", "Travel type to record (flight, hotel, car, package)")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Travel date to record")

	return cmd
}

// runDestinations searches the seeded catalog and records the search.
func runDestinations(query string, limit int, travelType, date string) error {
	index, err := catalog.NewMemIndex()
	if err != nil {
		return fmt.Errorf("failed to build catalog index: %w", err)
	}
	defer index.Close()

	if err := index.Add(catalog.Seed()); err != nil {
		return fmt.Errorf("failed to index catalog: %w", err)
	}

	hits, err := index.Search(query, limit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	cfg := loadConfig()
	sess := session.New(session.Options{
		Store:      openStore(cfg, false),
		LedgerSlot: cfg.LedgerSlot,
	})
	defer sess.Close()

	sess.Ledger.TrackSearch(query, date, activity.TravelType(travelType))

	if len(hits) == 0 {
		fmt.Printf("No destinations match %q.\n", query)
		return nil
	}

	fmt.Printf("Destinations matching %q:\n\n", query)
	for _, hit := range hits {
		fmt.Printf("  %s, %s (score %.2f)\n", hit.Name, hit.Country, hit.Score)
		fmt.Printf("    %s\n\n", hit.Summary)
	}

	return nil
}
