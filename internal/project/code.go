package project

import "github.com/google/uuid"

// Default lead/trail padding applied when a code is created without
// explicit values, in seconds.
const (
	DefaultLeadTime  = 10.0
	DefaultTrailTime = 10.0
)

// UnknownCodeName labels the placeholder category that adopted events
// whose original code no longer exists.
const UnknownCodeName = "Unknown"

// Code is a coding category that events reference by id. Ids are
// assigned once at creation and never reused; names and shortcuts are
// not required to be unique.
type Code struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	ColorName string    `json:"colorName"`
	Shortcut  string    `json:"shortcut"`
	LeadTime  float64   `json:"leadingTime"`
	TrailTime float64   `json:"trailingTime"`
}

// NewCode creates a code with a fresh id and default padding.
func NewCode(name, colorName, shortcut string) Code {
	return Code{
		ID:        uuid.New(),
		Name:      name,
		ColorName: colorName,
		Shortcut:  shortcut,
		LeadTime:  DefaultLeadTime,
		TrailTime: DefaultTrailTime,
	}
}

// newUnknownCode builds the placeholder installed for orphaned events.
// Zero padding: it only ever adopts events, it never creates them.
func newUnknownCode() Code {
	c := NewCode(UnknownCodeName, "gray", "")
	c.LeadTime = 0
	c.TrailTime = 0
	return c
}

// SeedCodes is the starter category set installed into every new
// project. Configuration data, not behavior.
func SeedCodes() []Code {
	return []Code{
		NewCode("Inside 50 (SB)", "blue", "A"),
		NewCode("Inside 50 (OP)", "red", "B"),
		NewCode("Centre Bounce", "green", "C"),
		NewCode("Stoppage", "yellow", "S"),
		NewCode("Defensive Pressure", "purple", "D"),
		NewCode("Goal (SB)", "cyan", "G"),
		NewCode("Goal (OP)", "orange", "H"),
	}
}
