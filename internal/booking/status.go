/*
Package booking implements the booking status lifecycle and its monitor.

A booking moves forward through pending -> confirmed -> completed, or gets
cancelled from any non-terminal state. The monitor polls an external status
source on a timer, adopts forward transitions, and stops itself once the
booking reaches a terminal status.
*/
package booking

import (
	"encoding/json"
	"fmt"
)

// Status is a booking's lifecycle state.
type Status int

const (
	StatusPending Status = iota
	StatusConfirmed
	StatusCompleted
	StatusCancelled
)

// rank orders statuses for forward-progress comparison. Cancellation ranks
// above every non-terminal state so it can be adopted from any of them.
func (s Status) rank() int {
	switch s {
	case StatusPending:
		return 0
	case StatusConfirmed:
		return 1
	case StatusCompleted:
		return 2
	case StatusCancelled:
		return 3
	default:
		return -1
	}
}

// After reports whether s is strictly further along the lifecycle than o.
func (s Status) After(o Status) bool {
	return s.rank() > o.rank()
}

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusConfirmed:
		return "confirmed"
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// ParseStatus parses a lowercase status name.
func ParseStatus(value string) (Status, error) {
	switch value {
	case "pending":
		return StatusPending, nil
	case "confirmed":
		return StatusConfirmed, nil
	case "completed":
		return StatusCompleted, nil
	case "cancelled":
		return StatusCancelled, nil
	default:
		return StatusPending, fmt.Errorf("unknown booking status: %q", value)
	}
}

// MarshalJSON encodes the status as its lowercase name.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a lowercase status name.
func (s *Status) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	parsed, err := ParseStatus(value)
	if err != nil {
		return err
	}

	*s = parsed
	return nil
}
