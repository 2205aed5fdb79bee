package project

import "github.com/google/uuid"

// EventType discriminates the two event variants.
type EventType string

const (
	// TypeCoded is a categorized clip with a start and end time.
	TypeCoded EventType = "codedEvent"
	// TypeMarker is an instantaneous, titled annotation.
	TypeMarker EventType = "marker"
)

// Event is the tagged union of the two annotation variants. Coded
// events carry CodeID and EndTime; markers carry Title. Exactly one
// shape is populated per event, selected by Type.
type Event struct {
	ID        uuid.UUID
	Type      EventType
	StartTime float64 // seconds, >= 0

	// codedEvent fields
	CodeID  uuid.UUID
	EndTime float64 // seconds, >= StartTime

	// marker fields
	Title string
}

// NewCodedEvent materializes a clip from a point-in-time tag: the
// code's lead time runs back from the timestamp (clamped at zero) and
// its trail time runs forward.
func NewCodedEvent(code Code, timestamp float64) Event {
	start := timestamp - code.LeadTime
	if start < 0 {
		start = 0
	}
	return Event{
		ID:        uuid.New(),
		Type:      TypeCoded,
		StartTime: start,
		CodeID:    code.ID,
		EndTime:   timestamp + code.TrailTime,
	}
}

// NewMarker creates an instantaneous annotation at the timestamp.
func NewMarker(title string, timestamp float64) Event {
	return Event{
		ID:        uuid.New(),
		Type:      TypeMarker,
		StartTime: timestamp,
		Title:     title,
	}
}

// Duration is EndTime - StartTime for coded events, zero for markers.
func (e Event) Duration() float64 {
	if e.Type != TypeCoded {
		return 0
	}
	return e.EndTime - e.StartTime
}

// end is the interval upper bound used by window queries: markers are
// zero-width intervals at their start time.
func (e Event) end() float64 {
	if e.Type == TypeCoded {
		return e.EndTime
	}
	return e.StartTime
}
