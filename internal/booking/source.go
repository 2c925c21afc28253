package booking

import (
	"context"
	"sync"
)

// SourceFunc adapts a function to the StatusSource interface.
type SourceFunc func(ctx context.Context, bookingID string) (Status, error)

// FetchStatus calls f.
func (f SourceFunc) FetchStatus(ctx context.Context, bookingID string) (Status, error) {
	return f(ctx, bookingID)
}

// ScriptedSource replays a fixed status sequence, one entry per fetch,
// then sticks at the last entry. Used by the CLI demo and by tests in
// place of the backend API.
type ScriptedSource struct {
	mu       sync.Mutex
	sequence []Status
	position int
}

// NewScriptedSource creates a source that replays the given sequence.
// An empty sequence always reports StatusPending.
func NewScriptedSource(sequence ...Status) *ScriptedSource {
	return &ScriptedSource{sequence: sequence}
}

// FetchStatus returns the next scripted status.
func (s *ScriptedSource) FetchStatus(ctx context.Context, bookingID string) (Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.sequence) == 0 {
		return StatusPending, nil
	}

	status := s.sequence[s.position]
	if s.position < len(s.sequence)-1 {
		s.position++
	}
	return status, nil
}
