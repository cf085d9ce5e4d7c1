// YAML schedule loading: a schedule file describes a heap's capacity, its
// ordering mode, and an initial batch of events built via the heapify path.

package sched

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Ordering mode names accepted in schedule files. Empty defaults to chronological.
const (
	OrderingChronological = "chronological"
	OrderingAlphabetical  = "alphabetical"
)

// Schedule holds a heap configuration loadable from a YAML file. Zero
// Capacity means "use the number of listed events".
type Schedule struct {
	Capacity int             `yaml:"capacity"`
	Ordering string          `yaml:"ordering"`
	Events   []ScheduleEvent `yaml:"events"`
}

// ScheduleEvent is one event entry in a schedule file.
type ScheduleEvent struct {
	Description string `yaml:"description"`
	Day         int    `yaml:"day"`
	Hour        int    `yaml:"hour"`
	Minute      int    `yaml:"minute"`
}

// LoadSchedule reads and parses a YAML schedule file.
func LoadSchedule(path string) (*Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schedule: %w", err)
	}
	var s Schedule
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing schedule: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks schedule-level constraints. Event timestamp validation
// happens when the events are constructed in Build.
func (s *Schedule) Validate() error {
	switch s.Ordering {
	case "", OrderingChronological, OrderingAlphabetical:
	default:
		return fmt.Errorf("%w: unknown ordering %q", ErrInvalidArgument, s.Ordering)
	}
	if s.Capacity < 0 {
		return fmt.Errorf("%w: capacity must be non-negative, got %d", ErrInvalidArgument, s.Capacity)
	}
	if s.Capacity > 0 && len(s.Events) > s.Capacity {
		return fmt.Errorf("%w: %d events exceed capacity %d", ErrInvalidArgument, len(s.Events), s.Capacity)
	}
	if s.Capacity == 0 && len(s.Events) == 0 {
		return fmt.Errorf("%w: schedule has no capacity and no events", ErrInvalidArgument)
	}
	return nil
}

// Mode returns the ordering mode the schedule asks for, applied to the given
// mode object (the package default when nil). Returns the mode it configured.
func (s *Schedule) Mode(mode *OrderingMode) *OrderingMode {
	if mode == nil {
		mode = defaultMode
	}
	if s.Ordering == OrderingAlphabetical {
		mode.SetAlphabetical()
	} else {
		mode.SetChronological()
	}
	return mode
}

// Build constructs the events and heapifies them into a heap of the
// schedule's capacity. The oversized-array heapify constructor is used, so a
// schedule with spare capacity yields a heap with free slots.
func (s *Schedule) Build(mode *OrderingMode) (*Heap, error) {
	capacity := s.Capacity
	if capacity == 0 {
		capacity = len(s.Events)
	}
	events := make([]*Event, capacity)
	for i, entry := range s.Events {
		e, err := NewEvent(entry.Description, entry.Day, entry.Hour, entry.Minute)
		if err != nil {
			return nil, fmt.Errorf("schedule event %d: %w", i, err)
		}
		events[i] = e
	}
	return NewFromEvents(events, len(s.Events), mode)
}
