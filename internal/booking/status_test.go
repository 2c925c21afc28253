package booking

import (
	"encoding/json"
	"testing"
)

func TestStatus_After(t *testing.T) {
	tests := []struct {
		name string
		a, b Status
		want bool
	}{
		{"confirmed after pending", StatusConfirmed, StatusPending, true},
		{"completed after confirmed", StatusCompleted, StatusConfirmed, true},
		{"completed after pending", StatusCompleted, StatusPending, true},
		{"cancelled after pending", StatusCancelled, StatusPending, true},
		{"cancelled after confirmed", StatusCancelled, StatusConfirmed, true},
		{"pending not after pending", StatusPending, StatusPending, false},
		{"pending not after confirmed", StatusPending, StatusConfirmed, false},
		{"confirmed not after completed", StatusConfirmed, StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.After(tt.b); got != tt.want {
				t.Errorf("%v.After(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestStatus_Terminal(t *testing.T) {
	if StatusPending.Terminal() || StatusConfirmed.Terminal() {
		t.Error("pending and confirmed must not be terminal")
	}
	if !StatusCompleted.Terminal() {
		t.Error("completed must be terminal")
	}
	if !StatusCancelled.Terminal() {
		t.Error("cancelled must be terminal")
	}
}

func TestParseStatus(t *testing.T) {
	for _, status := range []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		parsed, err := ParseStatus(status.String())
		if err != nil {
			t.Fatalf("failed to parse %q: %v", status.String(), err)
		}
		if parsed != status {
			t.Errorf("expected %v, got %v", status, parsed)
		}
	}

	if _, err := ParseStatus("shipped"); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestStatus_JSON(t *testing.T) {
	data, err := json.Marshal(StatusConfirmed)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	if string(data) != `"confirmed"` {
		t.Errorf("expected \"confirmed\", got %s", data)
	}

	var status Status
	if err := json.Unmarshal([]byte(`"cancelled"`), &status); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if status != StatusCancelled {
		t.Errorf("expected cancelled, got %v", status)
	}

	if err := json.Unmarshal([]byte(`"bogus"`), &status); err == nil {
		t.Error("expected error for unknown status name")
	}
}
