// Implements the CompletedLog, the fixed-capacity record of events removed
// from a heap via CompleteNext. Entries are appended in completion order.

package sched

// CompletedLog is an append-only array of completed events. Capacity is fixed
// at construction (twice the owning heap's capacity) and entries stay in the
// order they were completed until the log is drained.
type CompletedLog struct {
	entries []*Event // fixed backing array; entries[0:count] are live
	count   int
}

func newCompletedLog(capacity int) *CompletedLog {
	return &CompletedLog{entries: make([]*Event, capacity)}
}

// Capacity returns the maximum number of events the log can hold.
func (l *CompletedLog) Capacity() int {
	return len(l.entries)
}

// Count returns the number of events currently in the log.
func (l *CompletedLog) Count() int {
	return l.count
}

func (l *CompletedLog) full() bool {
	return l.count == len(l.entries)
}

// append records a completed event. The caller checks capacity first.
func (l *CompletedLog) append(e *Event) {
	l.entries[l.count] = e
	l.count++
}

// Events returns a copy of the logged events in completion order without
// draining the log. Callers may mutate the returned slice freely.
func (l *CompletedLog) Events() []*Event {
	out := make([]*Event, l.count)
	copy(out, l.entries[:l.count])
	return out
}

// Drain returns a copy of the logged events in completion order and empties
// the log. The reset is logical: the count drops to zero and the backing
// slots are left for the next completions to overwrite.
func (l *CompletedLog) Drain() []*Event {
	out := l.Events()
	l.count = 0
	return out
}
