package project

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// ErrDuplicateID is returned when inserting an event whose id is
// already present. Id generation makes this a programmer error, so it
// is surfaced rather than swallowed.
var ErrDuplicateID = errors.New("duplicate event id")

// ErrEventNotFound is returned by lookups and mutations of absent ids.
var ErrEventNotFound = errors.New("event not found")

// MinEventDuration is the floor a coded event cannot be resized below,
// in seconds.
const MinEventDuration = 1.0

// EventStore is an ordered mapping from event id to event. Iteration
// order is ascending start time; ties keep insertion order. The store
// re-sorts after every mutation that can move a start time, so no
// caller ever observes a half-updated ordering.
type EventStore struct {
	byID  map[uuid.UUID]*Event
	order []*Event
}

func NewEventStore() *EventStore {
	return &EventStore{byID: make(map[uuid.UUID]*Event)}
}

func (s *EventStore) sortEvents() {
	// Stable: ties never reorder, so insertion order survives any
	// sequence of re-sorts.
	sort.SliceStable(s.order, func(i, j int) bool {
		return s.order[i].StartTime < s.order[j].StartTime
	})
}

// Add inserts an event and restores chronological order.
func (s *EventStore) Add(e Event) error {
	if _, ok := s.byID[e.ID]; ok {
		return fmt.Errorf("add event %s: %w", e.ID, ErrDuplicateID)
	}
	ev := e
	s.byID[ev.ID] = &ev
	s.order = append(s.order, &ev)
	s.sortEvents()
	return nil
}

// Get returns a copy of the event with the given id.
func (s *EventStore) Get(id uuid.UUID) (Event, error) {
	e, ok := s.byID[id]
	if !ok {
		return Event{}, fmt.Errorf("get event %s: %w", id, ErrEventNotFound)
	}
	return *e, nil
}

// Update applies mutate to the stored event and restores order.
func (s *EventStore) Update(id uuid.UUID, mutate func(*Event)) error {
	e, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("update event %s: %w", id, ErrEventNotFound)
	}
	mutate(e)
	s.sortEvents()
	return nil
}

// Move shifts both bounds of an event by delta, preserving its
// duration. The shift is clamped so the event stays within
// [0, timelineDuration].
func (s *EventStore) Move(id uuid.UUID, delta, timelineDuration float64) error {
	return s.Update(id, func(e *Event) {
		length := e.Duration()
		start := e.StartTime + delta
		if start < 0 {
			start = 0
		}
		if e.Type == TypeCoded {
			if start+length > timelineDuration {
				start = timelineDuration - length
				if start < 0 {
					start = 0
				}
			}
			e.StartTime = start
			e.EndTime = start + length
			return
		}
		if start > timelineDuration {
			start = timelineDuration
		}
		e.StartTime = start
	})
}

// ResizeStart drags a coded event's leading handle. The new start is
// clamped to [0, end - MinEventDuration] so it never crosses the
// trailing bound.
func (s *EventStore) ResizeStart(id uuid.UUID, startTime float64) error {
	return s.Update(id, func(e *Event) {
		if e.Type != TypeCoded {
			return
		}
		hi := e.EndTime - MinEventDuration
		if hi < 0 {
			hi = 0
		}
		if startTime < 0 {
			startTime = 0
		}
		if startTime > hi {
			startTime = hi
		}
		e.StartTime = startTime
	})
}

// ResizeEnd drags the trailing handle, clamped to
// [start + MinEventDuration, timelineDuration].
func (s *EventStore) ResizeEnd(id uuid.UUID, endTime, timelineDuration float64) error {
	return s.Update(id, func(e *Event) {
		if e.Type != TypeCoded {
			return
		}
		lo := e.StartTime + MinEventDuration
		if endTime < lo {
			endTime = lo
		}
		if endTime > timelineDuration && timelineDuration > lo {
			endTime = timelineDuration
		}
		e.EndTime = endTime
	})
}

// Remove deletes the event. Events own nothing, so there is no cascade.
func (s *EventStore) Remove(id uuid.UUID) error {
	if _, ok := s.byID[id]; !ok {
		return fmt.Errorf("remove event %s: %w", id, ErrEventNotFound)
	}
	delete(s.byID, id)
	for i, e := range s.order {
		if e.ID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len reports the number of stored events.
func (s *EventStore) Len() int {
	return len(s.order)
}

// All returns the events in chronological order.
func (s *EventStore) All() []Event {
	out := make([]Event, len(s.order))
	for i, e := range s.order {
		out[i] = *e
	}
	return out
}

// InWindow returns the events overlapping [start, end). An event
// overlaps when its interval end reaches the window start and its
// interval start precedes the window end; an event beginning exactly
// at the window end is excluded so adjacent tiles never render it
// twice. Markers are zero-width intervals. Linear scan: event counts
// are hundreds, not millions.
func (s *EventStore) InWindow(start, end float64) []Event {
	var out []Event
	for _, e := range s.order {
		if e.end() >= start && e.StartTime < end {
			out = append(out, *e)
		}
	}
	return out
}

// RebindOrphans reassigns every coded event whose code id is absent
// from known to the placeholder id, returning how many were rebound.
func (s *EventStore) RebindOrphans(known map[uuid.UUID]Code, placeholderID uuid.UUID) int {
	rebound := 0
	for _, e := range s.order {
		if e.Type != TypeCoded {
			continue
		}
		if _, ok := known[e.CodeID]; !ok {
			e.CodeID = placeholderID
			rebound++
		}
	}
	return rebound
}
