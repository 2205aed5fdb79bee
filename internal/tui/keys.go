package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	PlayPause  key.Binding
	StepBack   key.Binding
	StepFwd    key.Binding
	JumpBack   key.Binding
	JumpFwd    key.Binding
	Scrub      key.Binding
	ZoomIn     key.Binding
	ZoomOut    key.Binding
	ScrollLeft key.Binding
	ScrollRight key.Binding
	Marker     key.Binding
	New        key.Binding
	Edit       key.Binding
	Delete     key.Binding
	Save       key.Binding
	Export     key.Binding
	Tab1       key.Binding
	Tab2       key.Binding
	Tab3       key.Binding
	Tab4       key.Binding
	Tab        key.Binding
	Help       key.Binding
	Enter      key.Binding
	Back       key.Binding
	Up         key.Binding
	Down       key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	PlayPause: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "play/pause"),
	),
	StepBack: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "frame back"),
	),
	StepFwd: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "frame fwd"),
	),
	// Code shortcuts are uppercase letters, so coarse seeking stays on
	// lowercase keys.
	JumpBack: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "5s back"),
	),
	JumpFwd: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "5s fwd"),
	),
	Scrub: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "scrub mode"),
	),
	ZoomIn: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "zoom in"),
	),
	ZoomOut: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "zoom out"),
	),
	ScrollLeft: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "scroll left"),
	),
	ScrollRight: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "scroll right"),
	),
	Marker: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "marker"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save"),
	),
	Export: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "export"),
	),
	Tab1: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "timeline"),
	),
	Tab2: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "events"),
	),
	Tab3: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "codes"),
	),
	Tab4: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "reports"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next view"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PlayPause, k.Scrub, k.Marker, k.Save, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PlayPause, k.StepBack, k.StepFwd, k.JumpBack, k.JumpFwd},
		{k.Scrub, k.ZoomIn, k.ZoomOut, k.ScrollLeft, k.ScrollRight},
		{k.Marker, k.New, k.Edit, k.Delete},
		{k.Save, k.Export, k.Tab1, k.Tab2, k.Tab3, k.Tab4},
		{k.Up, k.Down, k.Enter, k.Back, k.Quit},
	}
}
