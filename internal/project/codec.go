package project

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"
)

// MalformedDocumentError reports a project file that cannot be used at
// all: not JSON, or missing a required top-level field. Anything less
// than that is repaired by the decode fallbacks instead of failing.
type MalformedDocumentError struct {
	Reason string
	Err    error
}

func (e *MalformedDocumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed project document: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed project document: %s", e.Reason)
}

func (e *MalformedDocumentError) Unwrap() error { return e.Err }

// DecodeResult carries the hydrated project plus load observations.
type DecodeResult struct {
	Project *Project
	// Orphans counts coded events whose code was missing and had to be
	// rebound to the placeholder.
	Orphans int
}

// document is the current on-disk shape.
type document struct {
	Name   *string                    `json:"name"`
	Videos []Video                    `json:"videos"`
	Codes  json.RawMessage            `json:"codes"`
	Events []map[string]json.RawMessage `json:"events"`
}

type docEvent struct {
	Type      string    `json:"type"`
	ID        uuid.UUID `json:"id"`
	Code      uuid.UUID `json:"code"`
	StartTime float64   `json:"startTime"`
	EndTime   float64   `json:"endTime,omitempty"`
	Title     string    `json:"title,omitempty"`
}

// docCode decodes a code leniently: colorName may be absent or carry a
// legacy non-string shape, in which case it is left empty and the
// renderer falls back to the default color.
type docCode struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	ColorName json.RawMessage `json:"colorName"`
	Shortcut  string          `json:"shortcut"`
	LeadTime  *float64        `json:"leadingTime"`
	TrailTime *float64        `json:"trailingTime"`
}

func (d docCode) code() Code {
	c := Code{
		ID:        d.ID,
		Name:      d.Name,
		Shortcut:  d.Shortcut,
		LeadTime:  DefaultLeadTime,
		TrailTime: DefaultTrailTime,
	}
	var color string
	if json.Unmarshal(d.ColorName, &color) == nil {
		c.ColorName = color
	}
	if d.LeadTime != nil {
		c.LeadTime = *d.LeadTime
	}
	if d.TrailTime != nil {
		c.TrailTime = *d.TrailTime
	}
	return c
}

// Encode serializes the project: codes as an id-keyed map, events as a
// discriminated union referencing codes by id only.
func Encode(p *Project) ([]byte, error) {
	codes := make(map[string]Code, len(p.codes))
	for _, c := range p.codes {
		codes[c.ID.String()] = c
	}

	events := make([]json.RawMessage, 0, p.Events.Len())
	for _, e := range p.Events.All() {
		raw, err := json.Marshal(encodeEvent(e))
		if err != nil {
			return nil, fmt.Errorf("encode event %s: %w", e.ID, err)
		}
		events = append(events, raw)
	}

	out := struct {
		Name   string            `json:"name"`
		Videos []Video           `json:"videos"`
		Codes  map[string]Code   `json:"codes"`
		Events []json.RawMessage `json:"events"`
	}{
		Name:   p.Name,
		Videos: p.Videos,
		Codes:  codes,
		Events: events,
	}
	if out.Videos == nil {
		out.Videos = []Video{}
	}
	return json.MarshalIndent(out, "", "  ")
}

func encodeEvent(e Event) any {
	if e.Type == TypeMarker {
		return struct {
			Type      EventType `json:"type"`
			ID        uuid.UUID `json:"id"`
			Title     string    `json:"title"`
			StartTime float64   `json:"startTime"`
		}{TypeMarker, e.ID, e.Title, e.StartTime}
	}
	return struct {
		Type      EventType `json:"type"`
		ID        uuid.UUID `json:"id"`
		Code      uuid.UUID `json:"code"`
		StartTime float64   `json:"startTime"`
		EndTime   float64   `json:"endTime"`
	}{TypeCoded, e.ID, e.CodeID, e.StartTime, e.EndTime}
}

// Decode hydrates a project from any historical schema shape. Repair
// strategies, in order: codes as an id-keyed map, then as a legacy
// array; events with a missing or unrecognized discriminant default to
// coded events; unresolved code references are rebound to a single
// synthesized placeholder. An event is never dropped because its code
// metadata is gone.
func Decode(data []byte) (*DecodeResult, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedDocumentError{Reason: "not valid JSON", Err: err}
	}
	if doc.Name == nil {
		return nil, &MalformedDocumentError{Reason: "missing required field \"name\""}
	}
	if doc.Codes == nil {
		return nil, &MalformedDocumentError{Reason: "missing required field \"codes\""}
	}
	if doc.Events == nil {
		return nil, &MalformedDocumentError{Reason: "missing required field \"events\""}
	}

	codes, err := decodeCodes(doc.Codes)
	if err != nil {
		return nil, err
	}

	p := &Project{
		Name:   *doc.Name,
		Videos: doc.Videos,
		Events: NewEventStore(),
		codes:  codes,
	}

	for i, raw := range doc.Events {
		e, err := decodeEvent(raw)
		if err != nil {
			return nil, &MalformedDocumentError{Reason: fmt.Sprintf("event %d", i), Err: err}
		}
		if err := p.Events.Add(e); err != nil {
			return nil, &MalformedDocumentError{Reason: fmt.Sprintf("event %d", i), Err: err}
		}
	}

	// Rebind events whose category no longer resolves. The placeholder
	// is appended at most once, and only when an orphan existed.
	placeholder := newUnknownCode()
	orphans := p.Events.RebindOrphans(p.CodeMap(), placeholder.ID)
	if orphans > 0 {
		p.AddCode(placeholder)
	}

	return &DecodeResult{Project: p, Orphans: orphans}, nil
}

// decodeCodes accepts the current id-keyed map shape, falling back to
// the historical array shape and rebuilding the map from each code's
// embedded id. Duplicate ids keep the first occurrence.
func decodeCodes(raw json.RawMessage) ([]Code, error) {
	var codeMap map[string]docCode
	if err := json.Unmarshal(raw, &codeMap); err == nil {
		out := make([]Code, 0, len(codeMap))
		for key, dc := range codeMap {
			c := dc.code()
			if c.ID == uuid.Nil {
				// Very old files keyed the map but omitted the embedded id.
				if id, err := uuid.Parse(key); err == nil {
					c.ID = id
				}
			}
			out = append(out, c)
		}
		sortCodesByName(out)
		return out, nil
	}

	var codeList []docCode
	if err := json.Unmarshal(raw, &codeList); err != nil {
		return nil, &MalformedDocumentError{Reason: "field \"codes\" is neither a map nor an array", Err: err}
	}
	seen := make(map[uuid.UUID]bool, len(codeList))
	out := make([]Code, 0, len(codeList))
	for _, dc := range codeList {
		c := dc.code()
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		out = append(out, c)
	}
	return out, nil
}

// sortCodesByName gives the map-shaped codes a deterministic order;
// the id-keyed document shape has none of its own.
func sortCodesByName(codes []Code) {
	sort.SliceStable(codes, func(i, j int) bool {
		if codes[i].Name != codes[j].Name {
			return codes[i].Name < codes[j].Name
		}
		return codes[i].ID.String() < codes[j].ID.String()
	})
}

func decodeEvent(fields map[string]json.RawMessage) (Event, error) {
	var ev docEvent

	// The discriminant defaults to codedEvent: files written before
	// markers existed carry no type tag at all.
	eventType := TypeCoded
	if raw, ok := fields["type"]; ok {
		var tag string
		if err := json.Unmarshal(raw, &tag); err == nil && tag == string(TypeMarker) {
			eventType = TypeMarker
		}
	}

	merged, err := json.Marshal(fields)
	if err != nil {
		return Event{}, err
	}
	if err := json.Unmarshal(merged, &ev); err != nil {
		return Event{}, err
	}
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}

	e := Event{
		ID:        ev.ID,
		Type:      eventType,
		StartTime: ev.StartTime,
	}
	if eventType == TypeMarker {
		e.Title = ev.Title
		return e, nil
	}
	e.CodeID = ev.Code
	e.EndTime = ev.EndTime
	if e.EndTime < e.StartTime {
		e.EndTime = e.StartTime
	}
	return e, nil
}

// Load reads and decodes a project file.
func Load(path string) (*DecodeResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project file: %w", err)
	}
	return Decode(data)
}

// Save encodes the project and writes it to path.
func Save(p *Project, path string) error {
	data, err := Encode(p)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write project file: %w", err)
	}
	return nil
}
