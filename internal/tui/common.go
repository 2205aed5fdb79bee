package tui

import "time"

// viewState represents the currently active view.
type viewState int

const (
	viewTimeline viewState = iota
	viewEvents
	viewCodes
	viewReports
)

var viewNames = []string{"Timeline", "Events", "Codes", "Reports"}

// --- Messages ---

type tickMsg time.Time

type statusMsg struct {
	text    string
	isError bool
}

type eventDeletedMsg struct{}

// projectChangedMsg marks any project mutation; the app uses it to
// drive autosave.
type projectChangedMsg struct{}

type codeSavedMsg struct{}

type projectSavedMsg struct {
	path string
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
