// Package sched provides a bounded-capacity priority scheduler for timestamped events.
//
// # Reading Guide
//
// Start with these three files to understand the scheduling kernel:
//   - event.go: the Event value (description, timestamp, completion flag)
//   - heap.go: the fixed-capacity binary min-heap and its sift operations
//   - log.go: the append-only completed log that records removed events
//
// # Architecture
//
// A Heap owns a fixed-size backing array of events kept in min-heap order, plus a
// CompletedLog with twice the heap's capacity. Events enter via Insert, leave via
// CompleteNext (marked complete and appended to the log), and are observed via Peek
// and Snapshot. No resizing, no persistence, no internal locking: callers serialize
// access themselves.
//
// Ordering is pluggable through OrderingMode (ordering.go): heaps compare events
// chronologically by timestamp or alphabetically by description. A mode object can
// be shared across heaps; the package default mode gives the classic process-wide
// switch via SetAlphabetical and SetChronological.
package sched
