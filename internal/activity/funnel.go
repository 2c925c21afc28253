package activity

import "sort"

const (
	// searchWeight and viewWeight count discovery touches when ranking
	// destinations; bookingWeight counts commitment, so it dominates.
	searchWeight  = 1.0
	viewWeight    = 1.0
	bookingWeight = 3.0

	// maxTopDestinations caps the ranked destination list in a report.
	maxTopDestinations = 5
)

// DestinationCount is one entry in the ranked destination list.
type DestinationCount struct {
	Destination string  `json:"destination"`
	Score       float64 `json:"score"`
}

// FunnelReport summarizes the search -> view -> booking funnel for a ledger.
type FunnelReport struct {
	Searches int `json:"searches"`
	Views    int `json:"views"`
	Bookings int `json:"bookings"`

	// ConversionRate is bookings per view within the retained window
	// (0 when no views are retained).
	ConversionRate float64 `json:"conversionRate"`

	// Measured is the number of bookings with a known time-to-book.
	Measured int `json:"measured"`

	// Time-to-book statistics in seconds, over measured bookings only.
	AvgTimeToBook float64 `json:"avgTimeToBook"`
	MinTimeToBook float64 `json:"minTimeToBook"`
	MaxTimeToBook float64 `json:"maxTimeToBook"`

	// TopDestinations ranks destinations by weighted activity.
	TopDestinations []DestinationCount `json:"topDestinations"`
}

// Funnel computes the funnel report from the current ledger contents.
func (l *Ledger) Funnel() FunnelReport {
	l.mu.Lock()
	defer l.mu.Unlock()

	report := FunnelReport{
		Searches: len(l.state.Searches),
		Views:    len(l.state.Views),
		Bookings: len(l.state.Bookings),
	}

	if report.Views > 0 {
		report.ConversionRate = float64(report.Bookings) / float64(report.Views)
	}

	var sum float64
	for _, booking := range l.state.Bookings {
		if booking.TimeToBook == nil {
			continue
		}
		seconds := *booking.TimeToBook

		if report.Measured == 0 || seconds < report.MinTimeToBook {
			report.MinTimeToBook = seconds
		}
		if report.Measured == 0 || seconds > report.MaxTimeToBook {
			report.MaxTimeToBook = seconds
		}
		sum += seconds
		report.Measured++
	}
	if report.Measured > 0 {
		report.AvgTimeToBook = sum / float64(report.Measured)
	}

	report.TopDestinations = l.topDestinations()

	return report
}

// topDestinations ranks destinations by weighted search/view/booking
// activity. Destination views count by item identity since destination
// pages are keyed by name. Callers must hold l.mu.
func (l *Ledger) topDestinations() []DestinationCount {
	scores := make(map[string]float64)

	for _, search := range l.state.Searches {
		if search.Destination != "" {
			scores[search.Destination] += searchWeight
		}
	}
	for _, view := range l.state.Views {
		if view.Type == ItemDestination {
			scores[view.ItemID] += viewWeight
		}
	}
	for _, booking := range l.state.Bookings {
		if booking.Destination != "" {
			scores[booking.Destination] += bookingWeight
		}
	}

	ranked := make([]DestinationCount, 0, len(scores))
	for destination, score := range scores {
		ranked = append(ranked, DestinationCount{Destination: destination, Score: score})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Destination < ranked[j].Destination
	})

	if len(ranked) > maxTopDestinations {
		ranked = ranked[:maxTopDestinations]
	}

	return ranked
}
