package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorPrimary   = lipgloss.Color("#6C63FF")
	colorAccent    = lipgloss.Color("#FF6B6B")
	colorMuted     = lipgloss.Color("#666666")
	colorSuccess   = lipgloss.Color("#2ECC71")
	colorWarning   = lipgloss.Color("#F39C12")
	colorError     = lipgloss.Color("#E74C3C")
	colorFg        = lipgloss.Color("#C0CAF5")
	colorSubtle    = lipgloss.Color("#414868")
	colorHighlight = lipgloss.Color("#7AA2F7")
	colorScrubber  = lipgloss.Color("#F7D060")
)

// codePalette resolves the symbolic color names codes carry. Unresolved
// or legacy names fall back to codeColorDefault, never an error.
var codePalette = map[string]lipgloss.Color{
	"red":    lipgloss.Color("#E74C3C"),
	"orange": lipgloss.Color("#F39C12"),
	"yellow": lipgloss.Color("#F7D060"),
	"green":  lipgloss.Color("#2ECC71"),
	"cyan":   lipgloss.Color("#2EC4B6"),
	"blue":   lipgloss.Color("#3498DB"),
	"purple": lipgloss.Color("#9B59B6"),
	"pink":   lipgloss.Color("#FF6B9D"),
	"gray":   lipgloss.Color("#95A5A6"),
}

var codeColorDefault = lipgloss.Color("#FFFFFF")

// codeColorNames is the pick list shown in code forms, in menu order.
var codeColorNames = []string{"red", "orange", "yellow", "green", "cyan", "blue", "purple", "pink", "gray"}

func codeColor(name string) lipgloss.Color {
	if c, ok := codePalette[name]; ok {
		return c
	}
	return codeColorDefault
}

// Styles
var (
	// Tabs
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorPrimary).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 2)

	// Panels
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Padding(1, 2)

	// Text
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	accentStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	highlightStyle = lipgloss.NewStyle().
			Foreground(colorHighlight)

	// Timeline
	rulerStyle = lipgloss.NewStyle().
			Foreground(colorSubtle)

	rulerMajorStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	scrubberStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorScrubber)

	scrubModeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorScrubber)

	// Header/footer
	headerStyle = lipgloss.NewStyle().
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	// List items
	selectedItemStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	normalItemStyle = lipgloss.NewStyle().
			Foreground(colorFg)
)
