package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultMode_StartsChronological(t *testing.T) {
	resetMode(t)

	assert.False(t, IsAlphabetical())
}

func TestSetAlphabetical_SwitchesDefaultModeProcessWide(t *testing.T) {
	resetMode(t)

	// GIVEN two heaps sharing the package default mode
	h1, err := New(4, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	h2, err := New(4, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	early := mustEvent(t, "Zebra", 1, 0, 0)
	lateButFirstAlphabetically := mustEvent(t, "Apple", 20, 0, 0)

	// WHEN the default mode is switched to alphabetical
	SetAlphabetical()

	// THEN both heaps immediately order by description
	if !IsAlphabetical() {
		t.Fatal("IsAlphabetical() = false after SetAlphabetical()")
	}
	for _, h := range []*Heap{h1, h2} {
		if err := h.Insert(early); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
		if err := h.Insert(lateButFirstAlphabetically); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
		got, err := h.Peek()
		if err != nil {
			t.Fatalf("Peek failed: %v", err)
		}
		if !got.Equals(lateButFirstAlphabetically) {
			t.Errorf("Peek = %v, want the alphabetically first event", got)
		}
	}
}

func TestNewOrderingMode_IndependentOfDefault(t *testing.T) {
	resetMode(t)

	// GIVEN a heap with its own injected mode
	private := NewOrderingMode(true)
	h, err := New(4, private)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// WHEN the package default flips the other way
	SetChronological()

	// THEN the private mode is untouched
	apple := mustEvent(t, "Apple", 20, 0, 0)
	zebra := mustEvent(t, "Zebra", 1, 0, 0)
	if err := h.Insert(zebra); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := h.Insert(apple); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	got, err := h.Peek()
	if err != nil {
		t.Fatalf("Peek failed: %v", err)
	}
	if !got.Equals(apple) {
		t.Errorf("Peek = %v, want Apple under the private alphabetical mode", got)
	}
}

func TestOrderingMode_Less_StrictPrecedenceOnly(t *testing.T) {
	chrono := NewOrderingMode(false)
	alpha := NewOrderingMode(true)

	a := mustEvent(t, "A", 1, 9, 0)
	sameTime := mustEvent(t, "B", 1, 9, 0)
	sameName := mustEvent(t, "A", 2, 9, 0)

	assert.False(t, chrono.Less(a, sameTime), "equal timestamps must not precede")
	assert.False(t, alpha.Less(a, sameName), "equal descriptions must not precede")
	assert.True(t, chrono.Less(a, sameName))
	assert.True(t, alpha.Less(a, sameTime))
}

func TestModeSwitch_MidLifetime_DoesNotReheapify(t *testing.T) {
	resetMode(t)

	// GIVEN a heap populated chronologically
	h, err := New(4, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for _, e := range []*Event{
		mustEvent(t, "Zebra", 1, 0, 0),
		mustEvent(t, "Mango", 2, 0, 0),
		mustEvent(t, "Apple", 3, 0, 0),
	} {
		if err := h.Insert(e); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}
	before := h.Events()

	// WHEN the mode is switched with no further mutation
	SetAlphabetical()

	// THEN the backing array is unchanged: the heap keeps the stale
	// chronological layout until the next mutation (documented behavior)
	after := h.Events()
	if len(before) != len(after) {
		t.Fatalf("live count changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if !before[i].Equals(after[i]) {
			t.Errorf("slot %d changed: %v -> %v", i, before[i], after[i])
		}
	}
	got, err := h.Peek()
	if err != nil {
		t.Fatalf("Peek failed: %v", err)
	}
	if got.Description() != "Zebra" {
		t.Errorf("root = %q, want the stale chronological root Zebra", got.Description())
	}
}
