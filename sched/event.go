// Defines the Event value scheduled by the priority heap. Each event carries a
// description, a timestamp (day of month, hour, minute) and a completion flag.

package sched

import (
	"fmt"
	"strings"
	"time"
)

// Events carry only a day/hour/minute triple, so timestamps are anchored in a
// fixed 31-day reference month to obtain a concrete time.Time. The choice of
// month is arbitrary as long as every day 1..31 is legal in it.
var refMonth = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// Event is a schedulable unit of work. Identity is description + timestamp;
// the completion flag is a side annotation and is excluded from Equals, so a
// completed copy of an event still compares equal to the original.
type Event struct {
	description string
	timestamp   time.Time
	day         int
	hour        int
	minute      int
	completed   bool
}

// NewEvent creates an event scheduled at the given day of month, hour and
// minute. Returns ErrInvalidArgument if the triple does not form a legal
// calendar date-time (day outside the month, hour > 23, minute > 59, ...).
func NewEvent(description string, day, hour, minute int) (*Event, error) {
	ts := time.Date(refMonth.Year(), refMonth.Month(), day, hour, minute, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components instead of failing, so an
	// illegal triple is detected by the round-trip not matching the inputs.
	if day < 1 || ts.Day() != day || ts.Hour() != hour || ts.Minute() != minute {
		return nil, fmt.Errorf("%w: invalid timestamp day=%d hour=%d minute=%d", ErrInvalidArgument, day, hour, minute)
	}
	return &Event{
		description: description,
		timestamp:   ts,
		day:         day,
		hour:        hour,
		minute:      minute,
	}, nil
}

// Description returns the event's description.
func (e *Event) Description() string {
	return e.description
}

// Timestamp returns the event's scheduled time.
func (e *Event) Timestamp() time.Time {
	return e.timestamp
}

// Day returns the day-of-month component of the timestamp.
func (e *Event) Day() int {
	return e.day
}

// Hour returns the hour component of the timestamp.
func (e *Event) Hour() int {
	return e.hour
}

// Minute returns the minute component of the timestamp.
func (e *Event) Minute() int {
	return e.minute
}

// IsComplete reports whether the event has been marked complete.
func (e *Event) IsComplete() bool {
	return e.completed
}

// MarkComplete flags the event as complete. Idempotent: marking an already
// completed event is a no-op, and the flag is never reversible.
func (e *Event) MarkComplete() {
	e.completed = true
}

// CompareTimestamp orders events by scheduled time: negative if e precedes
// other, zero if they are simultaneous, positive otherwise.
func (e *Event) CompareTimestamp(other *Event) int {
	return e.timestamp.Compare(other.timestamp)
}

// CompareDescription orders events lexicographically by description.
func (e *Event) CompareDescription(other *Event) int {
	return strings.Compare(e.description, other.description)
}

// Equals reports whether two events share description and timestamp.
// The completion flag does not participate in equality.
func (e *Event) Equals(other *Event) bool {
	if other == nil {
		return false
	}
	return e.description == other.description && e.timestamp.Equal(other.timestamp)
}

func (e *Event) String() string {
	status := "pending"
	if e.completed {
		status = "completed"
	}
	return fmt.Sprintf("%s (day %d, %02d:%02d) [%s]", e.description, e.day, e.hour, e.minute, status)
}
