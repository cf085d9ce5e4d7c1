package sched

import "testing"

// mustEvent builds an event or fails the test immediately.
func mustEvent(t *testing.T, description string, day, hour, minute int) *Event {
	t.Helper()
	e, err := NewEvent(description, day, hour, minute)
	if err != nil {
		t.Fatalf("NewEvent(%q, %d, %d, %d) failed: %v", description, day, hour, minute, err)
	}
	return e
}

// resetMode restores the package default ordering mode after a test that
// touches the process-wide flag.
func resetMode(t *testing.T) {
	t.Helper()
	t.Cleanup(SetChronological)
}
