package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/wanderkit/tripdesk/internal/booking"
	"github.com/wanderkit/tripdesk/internal/session"
)

// NewWatchCmd creates the 'watch' command for following a booking.
func NewWatchCmd() *cobra.Command {
	var intervalSeconds int
	var from string
	var script string

	cmd := &cobra.Command{
		Use:   "watch <booking-id>",
		Short: "Follow a booking until it reaches a terminal status",
		Long: `Poll a booking's status and print each forward transition.

Without a backend connection the status source is scripted via --script,
which replays one status per poll and then holds the last one.`,
		Example: `  tripdesk watch BK-1042
  tripdesk watch BK-1042 --interval 2
  tripdesk watch BK-1042 --script pending,confirmed,cancelled`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(args[0], intervalSeconds, from, script)
		},
	}

	cmd.Flags().IntVarP(&intervalSeconds, "interval", "i", 0, "Poll interval in seconds (default from config)")
	cmd.Flags().StringVar(&from, "from", "pending", "Status to start from")
	cmd.Flags().StringVar(&script, "script", "pending,confirmed,completed", "Comma-separated status sequence to replay")

	return cmd
}

// runWatch monitors one booking until terminal status or interrupt.
func runWatch(bookingID string, intervalSeconds int, from, script string) error {
	current, err := booking.ParseStatus(from)
	if err != nil {
		return err
	}

	source, err := parseScript(script)
	if err != nil {
		return err
	}

	cfg := loadConfig()
	interval := cfg.PollInterval()
	if intervalSeconds > 0 {
		interval = time.Duration(intervalSeconds) * time.Second
	}

	sess := session.New(session.Options{
		Store:        openStore(cfg, false),
		Source:       source,
		Notifier:     notifierFor(cfg),
		PollInterval: interval,
		LedgerSlot:   cfg.LedgerSlot,
	})
	defer sess.Close()

	fmt.Printf("Watching booking %s (currently %s, polling every %s)\n", bookingID, current, interval)

	monitor, err := sess.WatchBooking(bookingID, current, func(status booking.Status) {
		fmt.Printf("  %s -> %s\n", bookingID, status)
	})
	if err != nil {
		return err
	}

	// Stop cleanly on Ctrl-C; monitor stops itself on terminal status.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-monitor.Done():
		fmt.Printf("Booking %s finished as %s.\n", bookingID, monitor.Current())
	case <-sigChan:
		monitor.Stop()
		fmt.Println("Stopped watching.")
	}

	return nil
}

// parseScript builds a scripted status source from a comma-separated list.
func parseScript(script string) (booking.StatusSource, error) {
	parts := strings.Split(script, ",")
	sequence := make([]booking.Status, 0, len(parts))
	for _, part := range parts {
		status, err := booking.ParseStatus(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		sequence = append(sequence, status)
	}
	return booking.NewScriptedSource(sequence...), nil
}
