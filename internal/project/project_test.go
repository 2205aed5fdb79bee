package project

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

// ============================================================
// New project
// ============================================================

func TestNewProjectSeedsCodes(t *testing.T) {
	p := New()
	if p.Name != DefaultProjectName {
		t.Fatalf("name %q", p.Name)
	}
	if len(p.Codes()) != 7 {
		t.Fatalf("seed code count %d, expected 7", len(p.Codes()))
	}
	if p.Events.Len() != 0 {
		t.Fatal("new project has events")
	}

	seen := make(map[uuid.UUID]bool)
	for _, c := range p.Codes() {
		if seen[c.ID] {
			t.Fatal("seed codes share an id")
		}
		seen[c.ID] = true
		if c.LeadTime != DefaultLeadTime || c.TrailTime != DefaultTrailTime {
			t.Fatalf("code %q padding [%v,%v]", c.Name, c.LeadTime, c.TrailTime)
		}
	}
}

// ============================================================
// Tagging
// ============================================================

func TestTagAppliesLeadAndTrail(t *testing.T) {
	p := New()
	code := NewCode("Goal", "red", "G")
	code.LeadTime = 8
	code.TrailTime = 12
	p.AddCode(code)

	e, err := p.Tag(code.ID, 100)
	if err != nil {
		t.Fatalf("tag: %v", err)
	}
	if e.StartTime != 92 || e.EndTime != 112 {
		t.Fatalf("bounds [%v,%v], expected [92,112]", e.StartTime, e.EndTime)
	}
	if e.CodeID != code.ID {
		t.Fatal("event references wrong code")
	}
}

func TestTagClampsStartAtZero(t *testing.T) {
	p := New()
	code := p.Codes()[0] // 10s lead

	e, err := p.Tag(code.ID, 4)
	if err != nil {
		t.Fatalf("tag: %v", err)
	}
	if e.StartTime != 0 {
		t.Fatalf("start %v, expected exact clamp at 0", e.StartTime)
	}
	if e.EndTime != 4+code.TrailTime {
		t.Fatalf("end %v, expected %v", e.EndTime, 4+code.TrailTime)
	}
}

func TestTagUnknownCode(t *testing.T) {
	p := New()
	if _, err := p.Tag(uuid.New(), 10); !errors.Is(err, ErrCodeNotFound) {
		t.Fatalf("expected ErrCodeNotFound, got %v", err)
	}
}

func TestMark(t *testing.T) {
	p := New()
	e, err := p.Mark("kickoff", 0)
	if err != nil {
		t.Fatalf("mark: %v", err)
	}
	if e.Type != TypeMarker || e.Title != "kickoff" || e.StartTime != 0 {
		t.Fatalf("unexpected marker: %+v", e)
	}
	if e.Duration() != 0 {
		t.Fatalf("marker duration %v", e.Duration())
	}
}

// ============================================================
// Code registry
// ============================================================

func TestUpdateCodeInPlace(t *testing.T) {
	p := New()
	c := p.Codes()[2]
	c.Name = "Renamed"
	c.Shortcut = "R"

	if err := p.UpdateCode(c); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, ok := p.Code(c.ID)
	if !ok || got.Name != "Renamed" {
		t.Fatalf("rename lost: %+v", got)
	}
	// Position preserved.
	if p.Codes()[2].ID != c.ID {
		t.Fatal("update reordered the registry")
	}
}

func TestRemoveCodeDoesNotCascade(t *testing.T) {
	p := New()
	code := p.Codes()[0]
	if _, err := p.Tag(code.ID, 30); err != nil {
		t.Fatalf("tag: %v", err)
	}

	if err := p.RemoveCode(code.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok := p.Code(code.ID); ok {
		t.Fatal("code still resolvable")
	}
	// The event survives with its dangling reference.
	events := p.Events.All()
	if len(events) != 1 || events[0].CodeID != code.ID {
		t.Fatal("event was cascaded or rebound on delete")
	}
}

func TestRemoveCodeMissing(t *testing.T) {
	p := New()
	if err := p.RemoveCode(uuid.New()); !errors.Is(err, ErrCodeNotFound) {
		t.Fatalf("expected ErrCodeNotFound, got %v", err)
	}
}

func TestCodesSharedNamesAllowed(t *testing.T) {
	p := New()
	a := NewCode("Press", "blue", "P")
	b := NewCode("Press", "red", "P")
	p.AddCode(a)
	p.AddCode(b)

	if _, ok := p.Code(a.ID); !ok {
		t.Fatal("first duplicate-name code missing")
	}
	if _, ok := p.Code(b.ID); !ok {
		t.Fatal("second duplicate-name code missing")
	}
}
