package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/evanfield/replaytag/internal/config"
	"github.com/evanfield/replaytag/internal/export"
	"github.com/evanfield/replaytag/internal/player"
	"github.com/evanfield/replaytag/internal/project"
	"github.com/evanfield/replaytag/internal/store"
	"github.com/evanfield/replaytag/internal/timeline"
)

// tickInterval drives playback. Advance gets the same dt, so the
// transport moves in real time regardless of render rate.
const tickInterval = 250 * time.Millisecond

// App is the root Bubble Tea model.
type App struct {
	proj      *project.Project
	transport *player.Transport
	store     *store.Store
	cfg       config.Config
	path      string // project file, empty until first save

	width  int
	height int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	timelineView timelineModel
	events       eventsModel
	codes        codesModel
	reports      reportsModel

	help   help.Model
	status string
}

// NewApp wires a loaded project into the view tree. The store remembers
// the project path across sessions and may be nil in tests.
func NewApp(p *project.Project, path string, cfg config.Config, st *store.Store) App {
	h := help.New()
	h.ShowAll = false

	tr := player.NewTransport(projectDuration(p))
	return App{
		proj:         p,
		transport:    tr,
		store:        st,
		cfg:          cfg,
		path:         path,
		activeView:   viewTimeline,
		timelineView: newTimelineModel(p, tr, cfg.FPS),
		events:       newEventsModel(p, tr),
		codes:        newCodesModel(p, cfg.DefaultLead, cfg.DefaultTrail),
		reports:      newReportsModel(p),
		help:         h,
	}
}

// projectDuration guesses a working duration for the transport. Without
// a real media file the timeline still needs bounds, so it covers every
// existing event with an hour of headroom, one hour minimum.
func projectDuration(p *project.Project) float64 {
	d := 3600.0
	for _, e := range p.Events.All() {
		end := e.EndTime
		if e.Type == project.TypeMarker {
			end = e.StartTime
		}
		if end+60 > d {
			d = end + 60
		}
	}
	return d
}

func (a App) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.timelineView.setSize(a.width, contentHeight)
		a.events.setSize(a.width, contentHeight)
		a.codes.setSize(a.width, contentHeight)
		a.reports.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// Forms capture all input, including keys bound globally.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Save):
			return a, a.doSave()
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewTimeline
			return a, nil
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewEvents
			return a, nil
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewCodes
			return a, nil
		case key.Matches(msg, keys.Tab4):
			a.activeView = viewReports
			return a, nil
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % 4
			return a, nil
		}

	case tickMsg:
		a.transport.Advance(tickInterval.Seconds())
		var cmd tea.Cmd
		a.timelineView, cmd = a.timelineView.update(msg)
		return a, tea.Batch(tickCmd(), cmd)

	case statusMsg:
		a.status = msg.text
		return a, nil

	case eventDeletedMsg:
		a.status = "Event deleted"
		return a, a.maybeAutosave()

	case codeSavedMsg:
		a.status = "Code saved"
		return a, a.maybeAutosave()

	case projectChangedMsg:
		return a, a.maybeAutosave()

	case projectSavedMsg:
		a.status = "Saved " + msg.path
		return a, nil

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.exportPicking = false
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewTimeline:
		a.timelineView, cmd = a.timelineView.update(msg)
	case viewEvents:
		a.events, cmd = a.events.update(msg)
	case viewCodes:
		a.codes, cmd = a.codes.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewTimeline:
		return a.timelineView.formActive
	case viewCodes:
		return a.codes.formActive
	}
	return false
}

// maybeAutosave persists the project after a mutation when autosave is
// on and the project already has a file.
func (a App) maybeAutosave() tea.Cmd {
	if !a.cfg.Autosave || a.path == "" {
		return nil
	}
	return a.doSave()
}

func (a App) doSave() tea.Cmd {
	path := a.path
	if path == "" {
		home, _ := os.UserHomeDir()
		name := strings.ReplaceAll(a.proj.Name, " ", "-")
		path = filepath.Join(home, name+".json")
	}
	return func() tea.Msg {
		if err := project.Save(a.proj, path); err != nil {
			return statusMsg{text: fmt.Sprintf("Save error: %v", err), isError: true}
		}
		if a.store != nil {
			_ = a.store.RememberProject(path, a.proj.Name)
		}
		return projectSavedMsg{path: path}
	}
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewTimeline:
		content = a.timelineView.view()
	case viewEvents:
		content = a.events.view()
	case viewCodes:
		content = a.codes.view()
	case viewReports:
		content = a.reports.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := maxInt(a.height-headerHeight-footerHeight, 1)

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("replaytag")
	name := mutedStyle.Render(" " + a.proj.Name)
	left := title + name

	gap := maxInt(a.width-lipgloss.Width(left)-lipgloss.Width(tabRow)-4, 1)
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		status = mutedStyle.Render(" " + a.status)
	}

	playhead := ""
	if a.transport.Playing() {
		playhead = successStyle.Render(" ▶ " + timeline.Timecode(a.transport.CurrentTime()))
	}

	left := footerStyle.Render(helpView)
	right := playhead + status

	gap := maxInt(a.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export Format")
	formats := []string{"CSV", "JSON"}
	rows := []string{title, ""}
	for i, f := range formats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "", mutedStyle.Render("  enter: export  esc: cancel"))

	return activePanelStyle.Width(a.width - 4).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < 1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	return func() tea.Msg {
		home, _ := os.UserHomeDir()
		dateStr := time.Now().Format("2006-01-02")
		name := strings.ReplaceAll(a.proj.Name, " ", "-")

		var path string
		if format == 0 {
			path = filepath.Join(home, fmt.Sprintf("%s-%s.csv", name, dateStr))
			if err := export.ToCSV(a.proj, path); err != nil {
				return statusMsg{text: fmt.Sprintf("CSV error: %v", err), isError: true}
			}
		} else {
			path = filepath.Join(home, fmt.Sprintf("%s-%s.json", name, dateStr))
			if err := export.ToJSON(a.proj, path); err != nil {
				return statusMsg{text: fmt.Sprintf("JSON error: %v", err), isError: true}
			}
		}
		return exportDoneMsg{path: path}
	}
}
