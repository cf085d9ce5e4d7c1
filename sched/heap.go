// Implements the bounded binary min-heap at the core of the scheduler.
// The backing array never grows: capacity is fixed when the heap is built.

package sched

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Heap is a fixed-capacity priority queue of events. The backing array holds
// heap order over data[0:size] with respect to the heap's OrderingMode at the
// time of the last mutation. Removed events flow into the CompletedLog, which
// holds up to twice the heap's capacity.
//
// Not safe for concurrent use; callers serialize access, including to any
// shared OrderingMode.
type Heap struct {
	data []*Event // fixed backing array; data[0:size] is in heap order
	size int
	log  *CompletedLog
	mode *OrderingMode
}

// New creates an empty heap with the given capacity. A nil mode attaches the
// heap to the package default mode. Returns ErrInvalidArgument if capacity
// is not positive.
func New(capacity int, mode *OrderingMode) (*Heap, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidArgument, capacity)
	}
	if mode == nil {
		mode = defaultMode
	}
	return &Heap{
		data: make([]*Event, capacity),
		log:  newCompletedLog(capacity * 2),
		mode: mode,
	}, nil
}

// NewFromEvents builds a heap from the first size elements of events, taking
// the full length of events as the capacity. The slice is copied, so the
// caller may keep mutating its own. Construction is O(size): children are
// sifted down from the last internal node to the root. Returns
// ErrInvalidArgument if events is nil, size is out of range, or any supplied
// event is nil or already completed; nothing is constructed on failure.
func NewFromEvents(events []*Event, size int, mode *OrderingMode) (*Heap, error) {
	if events == nil {
		return nil, fmt.Errorf("%w: events slice must not be nil", ErrInvalidArgument)
	}
	if size < 0 || size > len(events) {
		return nil, fmt.Errorf("%w: size %d out of range for %d events", ErrInvalidArgument, size, len(events))
	}
	for i := 0; i < size; i++ {
		if events[i] == nil {
			return nil, fmt.Errorf("%w: nil event at index %d", ErrInvalidArgument, i)
		}
		if events[i].IsComplete() {
			return nil, fmt.Errorf("%w: cannot heapify completed event %q", ErrInvalidArgument, events[i].Description())
		}
	}
	if mode == nil {
		mode = defaultMode
	}
	h := &Heap{
		data: make([]*Event, len(events)),
		size: size,
		log:  newCompletedLog(len(events) * 2),
		mode: mode,
	}
	copy(h.data, events)
	for i := size/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
	return h, nil
}

// IsEmpty reports whether the heap holds no live events. Logged completed
// events do not count.
func (h *Heap) IsEmpty() bool {
	return h.size == 0
}

// Size returns the number of live events in the heap.
func (h *Heap) Size() int {
	return h.size
}

// Capacity returns the fixed capacity of the heap.
func (h *Heap) Capacity() int {
	return len(h.data)
}

// CompletedCount returns the number of events in the completed log.
func (h *Heap) CompletedCount() int {
	return h.log.Count()
}

// Peek returns the next event by priority without removing it. Returns
// ErrEmptyQueue if the heap is empty.
func (h *Heap) Peek() (*Event, error) {
	if h.size == 0 {
		return nil, ErrEmptyQueue
	}
	return h.data[0], nil
}

// Insert places an event into the heap and restores heap order by sifting it
// up from the last slot, O(log N). Returns ErrInvalidArgument for a nil or
// already-completed event, ErrFullCapacity if the heap is at capacity. A
// failed insert leaves the heap untouched.
func (h *Heap) Insert(e *Event) error {
	if e == nil {
		return fmt.Errorf("%w: event must not be nil", ErrInvalidArgument)
	}
	if e.IsComplete() {
		return fmt.Errorf("%w: cannot insert completed event %q", ErrInvalidArgument, e.Description())
	}
	if h.size == len(h.data) {
		return fmt.Errorf("%w: capacity %d reached", ErrFullCapacity, len(h.data))
	}
	idx := h.size
	h.data[idx] = e
	h.size++
	h.siftUp(idx)
	logrus.Debugf("inserted %q, %d/%d slots live", e.Description(), h.size, len(h.data))
	return nil
}

// CompleteNext removes the next event by priority, marks it complete, and
// appends it to the completed log. Returns ErrEmptyQueue on an empty heap and
// ErrLogFull when the log is saturated; neither failure mutates any state.
func (h *Heap) CompleteNext() (*Event, error) {
	if h.size == 0 {
		return nil, ErrEmptyQueue
	}
	if h.log.full() {
		return nil, fmt.Errorf("%w: %d events logged", ErrLogFull, h.log.Count())
	}
	next := h.data[0]
	next.MarkComplete()
	h.log.append(next)
	h.removeRoot()
	logrus.Debugf("completed %q, %d live events remain", next.Description(), h.size)
	return next, nil
}

// DrainCompleted returns a copy of the completed log in completion order and
// resets it. The live heap is untouched.
func (h *Heap) DrainCompleted() []*Event {
	return h.log.Drain()
}

// CompletedEvents returns a copy of the completed log without draining it.
func (h *Heap) CompletedEvents() []*Event {
	return h.log.Events()
}

// Events returns a copy of the live portion of the backing array in heap
// order (not sorted order; use Snapshot for that).
func (h *Heap) Events() []*Event {
	out := make([]*Event, h.size)
	copy(out, h.data[:h.size])
	return out
}

// Snapshot renders all live events in fully sorted ascending order under the
// heap's mode, one per line with no trailing newline. It works on a private
// copy of the backing array and counters, so the heap itself never mutates.
func (h *Heap) Snapshot() string {
	work := &Heap{
		data: make([]*Event, len(h.data)),
		size: h.size,
		mode: h.mode,
	}
	copy(work.data, h.data)

	var sb strings.Builder
	for !work.IsEmpty() {
		sb.WriteString(work.removeMin().String())
		if !work.IsEmpty() {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (h *Heap) String() string {
	return h.Snapshot()
}

// removeMin pops the root without completion bookkeeping. Used on working
// copies by Snapshot; callers check emptiness first.
func (h *Heap) removeMin() *Event {
	min := h.data[0]
	h.removeRoot()
	return min
}

// removeRoot replaces the root with the last live element, nils the vacated
// trailing slot so the array does not pin removed events, and restores heap
// order downward.
func (h *Heap) removeRoot() {
	h.data[0] = h.data[h.size-1]
	h.data[h.size-1] = nil
	h.size--
	if h.size > 0 {
		h.siftDown(0)
	}
}

// siftUp bubbles the element at index i toward the root while it strictly
// precedes its parent under the active mode.
func (h *Heap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.mode.Less(h.data[i], h.data[parent]) {
			return
		}
		h.data[i], h.data[parent] = h.data[parent], h.data[i]
		i = parent
	}
}

// siftDown bubbles the element at index i away from the root. Swaps happen
// only on strict precedence, and the left child is compared first, so on a
// tie the left child wins over the right.
func (h *Heap) siftDown(i int) {
	for {
		left := 2*i + 1
		right := 2*i + 2
		smallest := i
		if left < h.size && h.mode.Less(h.data[left], h.data[smallest]) {
			smallest = left
		}
		if right < h.size && h.mode.Less(h.data[right], h.data[smallest]) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.data[i], h.data[smallest] = h.data[smallest], h.data[i]
		i = smallest
	}
}
