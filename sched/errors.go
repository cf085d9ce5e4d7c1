package sched

import "errors"

// Error taxonomy for scheduler operations. Every failure is synchronous and
// non-retryable, raised at the point of violation and propagated to the caller
// with no internal recovery. Match with errors.Is.
var (
	// ErrInvalidArgument covers bad capacities, nil events, illegal timestamps,
	// and already-completed events supplied to Insert or the heapify constructor.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyQueue is returned by Peek and CompleteNext on an empty heap.
	ErrEmptyQueue = errors.New("priority queue is empty")

	// ErrFullCapacity is returned by Insert when the heap is at capacity.
	ErrFullCapacity = errors.New("priority queue is full")

	// ErrLogFull is returned by CompleteNext when the completed log is saturated.
	ErrLogFull = errors.New("completed log is full")
)
