package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/evanfield/replaytag/internal/project"
)

// codesModel manages the coding categories: list, create, edit, delete.
// Deleting a code orphans its events; they are rebound to the Unknown
// placeholder on the next save/load cycle, so the delete path warns but
// never cascades.
type codesModel struct {
	proj *project.Project

	// Padding defaults for newly created codes, from config.
	defaultLead  float64
	defaultTrail float64

	cursor int
	width  int
	height int

	formActive bool
	form       *huh.Form
	editingID  uuid.UUID // zero when creating

	// form fields
	fName     *string
	fColor    *string
	fShortcut *string
	fLead     *string
	fTrail    *string
}

func newCodesModel(p *project.Project, defaultLead, defaultTrail float64) codesModel {
	name, color, shortcut, lead, trail := "", "", "", "", ""
	return codesModel{
		proj:         p,
		defaultLead:  defaultLead,
		defaultTrail: defaultTrail,
		fName:        &name,
		fColor:       &color,
		fShortcut:    &shortcut,
		fLead:        &lead,
		fTrail:       &trail,
	}
}

func (m *codesModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m *codesModel) clampCursor() {
	m.cursor = minInt(m.cursor, len(m.proj.Codes())-1)
	m.cursor = maxInt(m.cursor, 0)
}

func (m codesModel) selected() (project.Code, bool) {
	codes := m.proj.Codes()
	if m.cursor < 0 || m.cursor >= len(codes) {
		return project.Code{}, false
	}
	return codes[m.cursor], true
}

func (m codesModel) update(msg tea.Msg) (codesModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Up):
		m.cursor--
		m.clampCursor()
	case key.Matches(keyMsg, keys.Down):
		m.cursor++
		m.clampCursor()

	case key.Matches(keyMsg, keys.New):
		return m.showForm(project.Code{}, false)

	case key.Matches(keyMsg, keys.Edit), key.Matches(keyMsg, keys.Enter):
		if c, ok := m.selected(); ok {
			return m.showForm(c, true)
		}

	case key.Matches(keyMsg, keys.Delete):
		c, ok := m.selected()
		if !ok {
			return m, nil
		}
		orphans := 0
		for _, e := range m.proj.Events.All() {
			if e.Type == project.TypeCoded && e.CodeID == c.ID {
				orphans++
			}
		}
		if err := m.proj.RemoveCode(c.ID); err != nil {
			return m, errStatus("Delete", err)
		}
		m.clampCursor()
		text := fmt.Sprintf("Deleted %q", c.Name)
		if orphans > 0 {
			text = fmt.Sprintf("Deleted %q; %d event(s) will be rebound to %s",
				c.Name, orphans, project.UnknownCodeName)
		}
		return m, func() tea.Msg { return statusMsg{text: text} }
	}
	return m, nil
}

// --- Form ---

func (m codesModel) showForm(c project.Code, editing bool) (codesModel, tea.Cmd) {
	if editing {
		m.editingID = c.ID
		*m.fName = c.Name
		*m.fColor = c.ColorName
		*m.fShortcut = c.Shortcut
		*m.fLead = strconv.FormatFloat(c.LeadTime, 'f', -1, 64)
		*m.fTrail = strconv.FormatFloat(c.TrailTime, 'f', -1, 64)
	} else {
		m.editingID = uuid.UUID{}
		*m.fName = ""
		*m.fColor = codeColorNames[0]
		*m.fShortcut = ""
		*m.fLead = strconv.FormatFloat(m.defaultLead, 'f', -1, 64)
		*m.fTrail = strconv.FormatFloat(m.defaultTrail, 'f', -1, 64)
	}

	colorOpts := make([]huh.Option[string], len(codeColorNames))
	for i, n := range codeColorNames {
		colorOpts[i] = huh.NewOption(n, n)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(m.fName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Color").
				Options(colorOpts...).
				Value(m.fColor),
			huh.NewInput().
				Title("Shortcut").
				Description("Single uppercase letter, or empty").
				Value(m.fShortcut).
				Validate(validateShortcut),
			huh.NewInput().
				Title("Lead Time (s)").
				Value(m.fLead).
				Validate(validateSeconds),
			huh.NewInput().
				Title("Trail Time (s)").
				Value(m.fTrail).
				Validate(validateSeconds),
		),
	).WithShowHelp(true).WithShowErrors(true)
	m.formActive = true
	return m, m.form.Init()
}

func validateShortcut(s string) error {
	if s == "" {
		return nil
	}
	if len(s) != 1 || s < "A" || s > "Z" {
		return fmt.Errorf("use a single uppercase letter")
	}
	return nil
}

func validateSeconds(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number of seconds")
	}
	if v < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func (m codesModel) updateForm(msg tea.Msg) (codesModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		lead, _ := strconv.ParseFloat(strings.TrimSpace(*m.fLead), 64)
		trail, _ := strconv.ParseFloat(strings.TrimSpace(*m.fTrail), 64)

		if m.editingID != (uuid.UUID{}) {
			c := project.Code{
				ID:        m.editingID,
				Name:      strings.TrimSpace(*m.fName),
				ColorName: *m.fColor,
				Shortcut:  *m.fShortcut,
				LeadTime:  lead,
				TrailTime: trail,
			}
			if err := m.proj.UpdateCode(c); err != nil {
				return m, errStatus("Update", err)
			}
		} else {
			c := project.NewCode(strings.TrimSpace(*m.fName), *m.fColor, *m.fShortcut)
			c.LeadTime = lead
			c.TrailTime = trail
			m.proj.AddCode(c)
		}
		return m, func() tea.Msg { return codeSavedMsg{} }
	}
	return m, cmd
}

// --- Rendering ---

func (m codesModel) view() string {
	if m.formActive && m.form != nil {
		heading := "New Code"
		if m.editingID != (uuid.UUID{}) {
			heading = "Edit Code"
		}
		return panelStyle.Width(m.width - 4).Render(
			lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(heading), "", m.form.View()))
	}

	codes := m.proj.Codes()
	title := titleStyle.Render(fmt.Sprintf("Codes (%d)", len(codes)))

	var rows []string
	for i, c := range codes {
		rows = append(rows, m.renderRow(c, i == m.cursor))
	}
	if len(rows) == 0 {
		rows = append(rows, mutedStyle.Render("No codes. Press n to create one."))
	}

	hint := footerStyle.Render("n: new  e: edit  d: delete")
	body := lipgloss.JoinVertical(lipgloss.Left,
		title, "", lipgloss.JoinVertical(lipgloss.Left, rows...), "", hint)
	return panelStyle.Width(m.width - 4).Render(body)
}

func (m codesModel) renderRow(c project.Code, selected bool) string {
	cursor := "  "
	style := normalItemStyle
	if selected {
		cursor = selectedItemStyle.Render("> ")
		style = selectedItemStyle
	}

	swatch := lipgloss.NewStyle().Foreground(codeColor(c.ColorName)).Render("██")
	shortcut := mutedStyle.Render("   ")
	if c.Shortcut != "" {
		shortcut = highlightStyle.Render(fmt.Sprintf("[%s]", c.Shortcut))
	}
	padding := mutedStyle.Render(fmt.Sprintf("-%.0fs/+%.0fs", c.LeadTime, c.TrailTime))

	return fmt.Sprintf("%s%s %s %s  %s", cursor, swatch, shortcut,
		style.Render(fmt.Sprintf("%-24s", c.Name)), padding)
}
