package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletedLog_CapacityIsTwiceHeapCapacity(t *testing.T) {
	h, err := New(7, NewOrderingMode(false))
	require.NoError(t, err)

	assert.Equal(t, 14, h.log.Capacity())
}

func TestCompletedLog_Events_NonDrainingCopy(t *testing.T) {
	// GIVEN a heap with one completed event
	h, err := New(2, NewOrderingMode(false))
	require.NoError(t, err)
	require.NoError(t, h.Insert(mustEvent(t, "A", 1, 0, 0)))
	_, err = h.CompleteNext()
	require.NoError(t, err)

	// WHEN the log contents are read without draining
	events := h.CompletedEvents()

	// THEN the copy holds the completion and the log still counts it
	require.Len(t, events, 1)
	assert.Equal(t, "A", events[0].Description())
	assert.Equal(t, 1, h.CompletedCount())

	// AND mutating the copy does not reach the log
	events[0] = nil
	assert.Equal(t, "A", h.CompletedEvents()[0].Description())
}

func TestCompletedLog_DrainLeavesSlotsForReuse(t *testing.T) {
	// GIVEN a log drained once
	h, err := New(1, NewOrderingMode(false))
	require.NoError(t, err)
	require.NoError(t, h.Insert(mustEvent(t, "First", 1, 0, 0)))
	_, err = h.CompleteNext()
	require.NoError(t, err)
	require.Len(t, h.DrainCompleted(), 1)

	// WHEN another completion happens after the reset
	require.NoError(t, h.Insert(mustEvent(t, "Second", 2, 0, 0)))
	_, err = h.CompleteNext()
	require.NoError(t, err)

	// THEN the log overwrote the stale slot
	events := h.CompletedEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "Second", events[0].Description())
}
