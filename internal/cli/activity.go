package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wanderkit/tripdesk/internal/session"
	"github.com/wanderkit/tripdesk/internal/storage"
)

// NewActivityCmd creates the 'activity' command for inspecting the ledger.
func NewActivityCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show recorded activity and funnel metrics",
		Long:  `Display the persisted activity ledger: searches, views, bookings, and the derived funnel report.`,
		Example: `  tripdesk activity
  tripdesk activity --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runActivity(jsonOutput)
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

// runActivity prints the ledger summary and funnel report.
func runActivity(jsonOutput bool) error {
	cfg := loadConfig()
	store := openStore(cfg, false)

	sess := session.New(session.Options{
		Store:      store,
		LedgerSlot: cfg.LedgerSlot,
	})
	defer sess.Close()

	report := sess.Ledger.Funnel()

	if jsonOutput {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Activity (%d searches, %d views, %d bookings):\n\n",
		report.Searches, report.Views, report.Bookings)

	fmt.Printf("  Conversion rate: %.1f%% of retained views\n", report.ConversionRate*100)
	if report.Measured > 0 {
		fmt.Printf("  Time to book:    avg %s (min %s, max %s, over %d bookings)\n",
			formatSeconds(report.AvgTimeToBook),
			formatSeconds(report.MinTimeToBook),
			formatSeconds(report.MaxTimeToBook),
			report.Measured)
	} else {
		fmt.Println("  Time to book:    no measured bookings yet")
	}

	if len(report.TopDestinations) > 0 {
		fmt.Println("\n  Top destinations:")
		for _, dest := range report.TopDestinations {
			fmt.Printf("    %-20s %.1f\n", dest.Destination, dest.Score)
		}
	}

	// The SQLite store keeps a relational mirror of bookings; surface it
	// so the two views can be cross-checked.
	if sqlStore, ok := store.(*storage.SQLiteStore); ok {
		records, err := sqlStore.RecentBookings(5)
		if err == nil && len(records) > 0 {
			fmt.Println("\n  Recent bookings (store mirror):")
			for _, rec := range records {
				fmt.Printf("    %s %s -> %s\n", rec.ItemType, rec.ItemID, rec.Destination)
			}
		}
	}

	return nil
}
