package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/evanfield/replaytag/internal/player"
	"github.com/evanfield/replaytag/internal/project"
	"github.com/evanfield/replaytag/internal/timeline"
)

// eventsModel lists all annotations in start order and edits them in
// place: nudge, trim, delete, jump the transport to one.
type eventsModel struct {
	proj      *project.Project
	transport *player.Transport

	cursor int
	width  int
	height int
}

// Event editing bindings local to this view. Nudge preserves duration,
// trim moves one edge.
var eventKeys = struct {
	NudgeLeft  key.Binding
	NudgeRight key.Binding
	TrimStart  key.Binding
	TrimEnd    key.Binding
}{
	NudgeLeft:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "nudge -1s")),
	NudgeRight: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "nudge +1s")),
	TrimStart:  key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "start -1s")),
	TrimEnd:    key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "end +1s")),
}

func newEventsModel(p *project.Project, tr *player.Transport) eventsModel {
	return eventsModel{proj: p, transport: tr}
}

func (m *eventsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m *eventsModel) clampCursor() {
	m.cursor = minInt(m.cursor, m.proj.Events.Len()-1)
	m.cursor = maxInt(m.cursor, 0)
}

func (m eventsModel) selected() (project.Event, bool) {
	all := m.proj.Events.All()
	if m.cursor < 0 || m.cursor >= len(all) {
		return project.Event{}, false
	}
	return all[m.cursor], true
}

func (m eventsModel) update(msg tea.Msg) (eventsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Up):
		m.cursor--
		m.clampCursor()
		return m, nil
	case key.Matches(keyMsg, keys.Down):
		m.cursor++
		m.clampCursor()
		return m, nil

	case key.Matches(keyMsg, keys.Enter):
		if e, ok := m.selected(); ok {
			m.transport.Seek(e.StartTime)
			return m, func() tea.Msg {
				return statusMsg{text: "Jumped to " + timeline.Timecode(e.StartTime)}
			}
		}
		return m, nil

	case key.Matches(keyMsg, keys.Delete):
		e, ok := m.selected()
		if !ok {
			return m, nil
		}
		if err := m.proj.Events.Remove(e.ID); err != nil {
			return m, errStatus("Delete", err)
		}
		m.clampCursor()
		return m, func() tea.Msg { return eventDeletedMsg{} }

	case key.Matches(keyMsg, eventKeys.NudgeLeft):
		return m.mutateSelected("Nudge", func(e project.Event) error {
			return m.proj.Events.Move(e.ID, -1, m.transport.Duration())
		})
	case key.Matches(keyMsg, eventKeys.NudgeRight):
		return m.mutateSelected("Nudge", func(e project.Event) error {
			return m.proj.Events.Move(e.ID, 1, m.transport.Duration())
		})
	case key.Matches(keyMsg, eventKeys.TrimStart):
		return m.mutateSelected("Trim", func(e project.Event) error {
			return m.proj.Events.ResizeStart(e.ID, e.StartTime-1)
		})
	case key.Matches(keyMsg, eventKeys.TrimEnd):
		return m.mutateSelected("Trim", func(e project.Event) error {
			return m.proj.Events.ResizeEnd(e.ID, e.EndTime+1, m.transport.Duration())
		})
	}
	return m, nil
}

// mutateSelected applies an edit to the selected event and keeps the
// cursor on it even when the edit changes sort order.
func (m eventsModel) mutateSelected(what string, edit func(project.Event) error) (eventsModel, tea.Cmd) {
	e, ok := m.selected()
	if !ok {
		return m, nil
	}
	if err := edit(e); err != nil {
		return m, errStatus(what, err)
	}
	for i, cur := range m.proj.Events.All() {
		if cur.ID == e.ID {
			m.cursor = i
			break
		}
	}
	return m, func() tea.Msg { return projectChangedMsg{} }
}

func errStatus(what string, err error) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: fmt.Sprintf("%s: %v", what, err), isError: true}
	}
}

func (m eventsModel) view() string {
	all := m.proj.Events.All()
	title := titleStyle.Render(fmt.Sprintf("Events (%d)", len(all)))

	if len(all) == 0 {
		empty := mutedStyle.Render("No events yet. Tag one from the timeline view.")
		return panelStyle.Width(m.width - 4).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", empty))
	}

	codes := m.proj.CodeMap()
	visible := maxInt(m.height-10, 3)
	first := maxInt(m.cursor-visible+1, 0)

	var rows []string
	for i := first; i < len(all) && i < first+visible; i++ {
		rows = append(rows, m.renderRow(all[i], codes, i == m.cursor))
	}

	hint := footerStyle.Render("enter: jump  [/]: nudge  </>: trim  d: delete")
	body := lipgloss.JoinVertical(lipgloss.Left,
		title, "", lipgloss.JoinVertical(lipgloss.Left, rows...), "", hint)
	return panelStyle.Width(m.width - 4).Render(body)
}

func (m eventsModel) renderRow(e project.Event, codes map[uuid.UUID]project.Code, selected bool) string {
	cursor := "  "
	style := normalItemStyle
	if selected {
		cursor = selectedItemStyle.Render("> ")
		style = selectedItemStyle
	}

	var label, span string
	if e.Type == project.TypeMarker {
		label = accentStyle.Render("◆ ") + style.Render(e.Title)
		span = mutedStyle.Render(timeline.Timecode(e.StartTime))
	} else {
		dot := lipgloss.NewStyle().Foreground(codeColorDefault).Render("█")
		name := project.UnknownCodeName
		if c, ok := codes[e.CodeID]; ok {
			dot = lipgloss.NewStyle().Foreground(codeColor(c.ColorName)).Render("█")
			name = c.Name
		}
		label = dot + " " + style.Render(name)
		span = mutedStyle.Render(fmt.Sprintf("%s - %s  (%s)",
			timeline.Timecode(e.StartTime), timeline.Timecode(e.EndTime),
			timeline.Geotime(e.Duration())))
	}

	return fmt.Sprintf("%s%-40s %s", cursor, label, span)
}
