package project

import (
	"errors"

	"github.com/google/uuid"
)

// ErrCodeNotFound is returned when an operation references an absent code.
var ErrCodeNotFound = errors.New("code not found")

// DefaultProjectName names a freshly created project.
const DefaultProjectName = "My New Project"

// Video is an opaque reference to a source file; this layer never
// interprets the path.
type Video struct {
	Name     string `json:"name"`
	FilePath string `json:"filePath"`
}

// Project is the aggregate root: everything a saved file contains. The
// code list and event store are owned exclusively by the project and
// mutated only through its operations.
type Project struct {
	Name   string
	Videos []Video
	Events *EventStore

	codes []Code
}

// New creates an empty project seeded with the starter codes.
func New() *Project {
	return &Project{
		Name:   DefaultProjectName,
		Events: NewEventStore(),
		codes:  SeedCodes(),
	}
}

// Codes returns the codes in their stored order.
func (p *Project) Codes() []Code {
	out := make([]Code, len(p.codes))
	copy(out, p.codes)
	return out
}

// Code resolves a code by id.
func (p *Project) Code(id uuid.UUID) (Code, bool) {
	for _, c := range p.codes {
		if c.ID == id {
			return c, true
		}
	}
	return Code{}, false
}

// CodeMap returns the id-keyed view used by the codec and orphan
// rebinding.
func (p *Project) CodeMap() map[uuid.UUID]Code {
	m := make(map[uuid.UUID]Code, len(p.codes))
	for _, c := range p.codes {
		m[c.ID] = c
	}
	return m
}

// AddCode appends a code to the registry.
func (p *Project) AddCode(c Code) {
	p.codes = append(p.codes, c)
}

// UpdateCode mutates a code in place, keyed by its immutable id.
func (p *Project) UpdateCode(c Code) error {
	for i := range p.codes {
		if p.codes[i].ID == c.ID {
			p.codes[i] = c
			return nil
		}
	}
	return ErrCodeNotFound
}

// RemoveCode deletes a code. Deletion does not cascade: events keep
// their dangling reference until the next load rebinds them to the
// placeholder.
func (p *Project) RemoveCode(id uuid.UUID) error {
	for i := range p.codes {
		if p.codes[i].ID == id {
			p.codes = append(p.codes[:i], p.codes[i+1:]...)
			return nil
		}
	}
	return ErrCodeNotFound
}

// Tag materializes a coded event at the playback instant t using the
// referenced code's lead/trail padding and stores it.
func (p *Project) Tag(codeID uuid.UUID, t float64) (Event, error) {
	code, ok := p.Code(codeID)
	if !ok {
		return Event{}, ErrCodeNotFound
	}
	e := NewCodedEvent(code, t)
	if err := p.Events.Add(e); err != nil {
		return Event{}, err
	}
	return e, nil
}

// Mark stores an instantaneous titled marker at t.
func (p *Project) Mark(title string, t float64) (Event, error) {
	e := NewMarker(title, t)
	if err := p.Events.Add(e); err != nil {
		return Event{}, err
	}
	return e, nil
}
