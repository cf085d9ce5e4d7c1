package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sched "github.com/eventheap/eventheap/sched"
)

func TestDemoHeap_HoldsDemoSchedule(t *testing.T) {
	// GIVEN the built-in demo schedule in a capacity-10 heap
	sched.SetChronological()
	t.Cleanup(sched.SetChronological)

	heap, err := demoHeap(10)
	require.NoError(t, err)

	// THEN three events are queued and the earliest is next
	assert.Equal(t, 3, heap.Size())
	assert.Equal(t, 10, heap.Capacity())
	next, err := heap.Peek()
	require.NoError(t, err)
	assert.Equal(t, "Project Presentation", next.Description())

	// AND completing it surfaces the next earliest
	done, err := heap.CompleteNext()
	require.NoError(t, err)
	assert.True(t, done.IsComplete())
	next, err = heap.Peek()
	require.NoError(t, err)
	assert.Equal(t, "Team Meeting", next.Description())
}

func TestDemoHeap_InvalidCapacity_Fails(t *testing.T) {
	_, err := demoHeap(0)
	assert.ErrorIs(t, err, sched.ErrInvalidArgument)
}
