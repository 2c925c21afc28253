/*
Package notify delivers short user-facing notifications.

Booking status changes surface through a Notifier so the engine never cares
whether the sink is a desktop toast, a log line, or nothing at all.
*/
package notify

import (
	"log"

	"github.com/gen2brain/beeep"
)

// Level indicates the severity of a notification.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

// String returns the lowercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelSuccess:
		return "success"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Notifier accepts a short message and a severity.
//
// Delivery failures are the sink's problem; callers log and move on.
type Notifier interface {
	Notify(title, message string, level Level) error
}

// Desktop sends notifications to the OS notification center via beeep.
type Desktop struct{}

// NewDesktop creates a desktop notifier.
func NewDesktop() *Desktop {
	return &Desktop{}
}

// Notify shows a desktop notification. Warnings and errors use an alert so
// platforms that distinguish urgency can do so.
func (d *Desktop) Notify(title, message string, level Level) error {
	if level >= LevelWarning {
		return beeep.Alert(title, message, "")
	}
	return beeep.Notify(title, message, "")
}

// Log writes notifications to the process log. Used as a fallback when
// desktop notifications are disabled or unavailable.
type Log struct{}

// NewLog creates a log-backed notifier.
func NewLog() *Log {
	return &Log{}
}

// Notify writes the notification as a log line.
func (l *Log) Notify(title, message string, level Level) error {
	log.Printf("[%s] %s: %s", level, title, message)
	return nil
}

// Nop discards all notifications. Used in tests.
type Nop struct{}

// Notify discards the notification.
func (Nop) Notify(title, message string, level Level) error {
	return nil
}

// Send delivers a notification through the given notifier, logging delivery
// failures instead of propagating them.
func Send(n Notifier, title, message string, level Level) {
	if n == nil {
		return
	}
	if err := n.Notify(title, message, level); err != nil {
		log.Printf("Warning: failed to deliver notification %q: %v", title, err)
	}
}
