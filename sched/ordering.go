// Implements the pluggable ordering mode that decides how heaps compare events:
// chronologically by timestamp, or alphabetically by description.

package sched

// OrderingMode selects the comparison applied by every heap constructed on it.
// A single mode object may be shared by any number of heaps; switching it is
// observed immediately by all of them. Switching never re-heapifies existing
// instances, so a heap populated under one mode and queried under another may
// be in heap order for the stale mode. That is documented behavior, matched by
// the callers' single-threaded usage, not a defect to repair here.
type OrderingMode struct {
	alphabetical bool
}

// NewOrderingMode creates a standalone mode, decoupled from the package default.
func NewOrderingMode(alphabetical bool) *OrderingMode {
	return &OrderingMode{alphabetical: alphabetical}
}

// SetAlphabetical switches the mode to order events by description.
func (m *OrderingMode) SetAlphabetical() {
	m.alphabetical = true
}

// SetChronological switches the mode to order events by timestamp.
func (m *OrderingMode) SetChronological() {
	m.alphabetical = false
}

// Alphabetical reports whether the mode orders events by description.
func (m *OrderingMode) Alphabetical() bool {
	return m.alphabetical
}

// Less reports whether a strictly precedes b under the current mode.
func (m *OrderingMode) Less(a, b *Event) bool {
	if m.alphabetical {
		return a.CompareDescription(b) < 0
	}
	return a.CompareTimestamp(b) < 0
}

// defaultMode is shared by every heap constructed without an explicit mode,
// preserving the classic process-wide ordering switch. Not synchronized:
// callers in concurrent programs must serialize access externally.
var defaultMode = &OrderingMode{}

// DefaultMode returns the process-wide mode shared by heaps built with a nil mode.
func DefaultMode() *OrderingMode {
	return defaultMode
}

// SetAlphabetical orders all default-mode heaps by description.
func SetAlphabetical() {
	defaultMode.SetAlphabetical()
}

// SetChronological orders all default-mode heaps by timestamp. This is the
// initial state of the package.
func SetChronological() {
	defaultMode.SetChronological()
}

// IsAlphabetical reports whether default-mode heaps order by description.
func IsAlphabetical() bool {
	return defaultMode.Alphabetical()
}
