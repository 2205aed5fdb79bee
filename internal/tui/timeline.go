package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/evanfield/replaytag/internal/player"
	"github.com/evanfield/replaytag/internal/project"
	"github.com/evanfield/replaytag/internal/timeline"
)

const zoomStep = 1.25

// timelineModel is the scrub-and-tag view: ruler, event bar, scrubber.
// One terminal cell is one pixel of timeline space.
type timelineModel struct {
	proj      *project.Project
	transport *player.Transport
	scrub     *player.ScrubSession
	vp        *timeline.Viewport
	fps       int

	width  int
	height int

	scrubMode bool

	formActive bool
	form       *huh.Form
	formTitle  *string
}

func newTimelineModel(p *project.Project, tr *player.Transport, fps int) timelineModel {
	title := ""
	return timelineModel{
		proj:      p,
		transport: tr,
		scrub:     player.NewScrubSession(tr),
		vp:        timeline.NewViewport(80, tr.Duration()),
		fps:       fps,
		formTitle: &title,
	}
}

func (m *timelineModel) setSize(w, h int) {
	m.width = w
	m.height = h
	m.vp.Resize(float64(m.contentWidth()), m.transport.Duration())
}

// contentWidth is the ruler width in cells: panel borders and padding
// eat four columns.
func (m timelineModel) contentWidth() int {
	return maxInt(m.width-8, 20)
}

func (m timelineModel) playheadX() float64 {
	return timeline.TimeToPixels(m.transport.CurrentTime(), m.vp.Zoom) - m.vp.ScrollX
}

// followPlayhead keeps the scrubber on screen during playback, using
// the same edge-overflow rule as a drag.
func (m *timelineModel) followPlayhead() {
	if m.transport.Playing() && !m.scrub.Active() {
		m.vp.AutoScroll(m.playheadX())
	}
}

func (m timelineModel) update(msg tea.Msg) (timelineModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tickMsg:
		m.followPlayhead()
		return m, nil

	case tea.KeyMsg:
		if m.scrubMode {
			return m.updateScrub(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m timelineModel) updateKeys(msg tea.KeyMsg) (timelineModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.PlayPause):
		m.transport.SetPlaying(!m.transport.Playing())
		return m, nil

	case key.Matches(msg, keys.StepBack):
		m.transport.SeekFrames(-1, m.fps)
		return m, nil
	case key.Matches(msg, keys.StepFwd):
		m.transport.SeekFrames(1, m.fps)
		return m, nil
	case key.Matches(msg, keys.JumpBack):
		m.transport.Seek(m.transport.CurrentTime() - 5)
		return m, nil
	case key.Matches(msg, keys.JumpFwd):
		m.transport.Seek(m.transport.CurrentTime() + 5)
		return m, nil

	case key.Matches(msg, keys.Scrub):
		m.scrubMode = true
		m.scrub.Start()
		return m, nil

	case key.Matches(msg, keys.ZoomIn):
		m.zoomAtPlayhead(m.vp.Zoom * zoomStep)
		return m, nil
	case key.Matches(msg, keys.ZoomOut):
		m.zoomAtPlayhead(m.vp.Zoom / zoomStep)
		return m, nil

	case key.Matches(msg, keys.ScrollLeft):
		m.vp.ScrollBy(-10)
		return m, nil
	case key.Matches(msg, keys.ScrollRight):
		m.vp.ScrollBy(10)
		return m, nil

	case key.Matches(msg, keys.Marker):
		return m.showMarkerForm()
	}

	// Any other single uppercase character may be a code shortcut.
	return m.tagByShortcut(msg.String())
}

// updateScrub handles keys while a scrub session is active: h/l drag
// the playhead, anything that ends the gesture restores the play state.
func (m timelineModel) updateScrub(msg tea.KeyMsg) (timelineModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.StepBack):
		m.scrub.To(m.transport.CurrentTime() - 1)
	case key.Matches(msg, keys.StepFwd):
		m.scrub.To(m.transport.CurrentTime() + 1)
	case key.Matches(msg, keys.JumpBack):
		m.scrub.To(m.transport.CurrentTime() - 5)
	case key.Matches(msg, keys.JumpFwd):
		m.scrub.To(m.transport.CurrentTime() + 5)
	case key.Matches(msg, keys.Scrub), key.Matches(msg, keys.Back):
		m.scrubMode = false
		m.scrub.Stop()
	}
	m.centerPlayhead()
	return m, nil
}

// centerPlayhead keeps a dragged playhead visible by auto-scrolling
// toward whichever edge it crossed.
func (m *timelineModel) centerPlayhead() {
	m.vp.AutoScroll(m.playheadX())
}

func (m *timelineModel) zoomAtPlayhead(newZoom float64) {
	anchor := timeline.Clamp(0, m.playheadX(), m.vp.ViewportWidth)
	m.vp.ZoomAround(newZoom, anchor)
}

func (m timelineModel) tagByShortcut(k string) (timelineModel, tea.Cmd) {
	if len(k) != 1 {
		return m, nil
	}
	for _, c := range m.proj.Codes() {
		if c.Shortcut != "" && c.Shortcut == strings.ToUpper(k) {
			e, err := m.proj.Tag(c.ID, m.transport.CurrentTime())
			if err != nil {
				return m, func() tea.Msg {
					return statusMsg{text: fmt.Sprintf("Tag error: %v", err), isError: true}
				}
			}
			name := c.Name
			return m, tea.Batch(
				func() tea.Msg {
					return statusMsg{text: fmt.Sprintf("%s [%s to %s]", name,
						timeline.Timecode(e.StartTime), timeline.Timecode(e.EndTime))}
				},
				func() tea.Msg { return projectChangedMsg{} },
			)
		}
	}
	return m, nil
}

// --- Marker form ---

func (m timelineModel) showMarkerForm() (timelineModel, tea.Cmd) {
	*m.formTitle = ""
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Marker Title").Value(m.formTitle),
		),
	).WithShowHelp(true).WithShowErrors(true)
	m.formActive = true
	return m, m.form.Init()
}

func (m timelineModel) updateForm(msg tea.Msg) (timelineModel, tea.Cmd) {
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
		t := m.transport.CurrentTime()
		if _, err := m.proj.Mark(*m.formTitle, t); err != nil {
			return m, func() tea.Msg {
				return statusMsg{text: fmt.Sprintf("Marker error: %v", err), isError: true}
			}
		}
		return m, tea.Batch(
			func() tea.Msg { return statusMsg{text: "Marker at " + timeline.Timecode(t)} },
			func() tea.Msg { return projectChangedMsg{} },
		)
	}
	return m, cmd
}

// --- Rendering ---

func (m timelineModel) view() string {
	if m.formActive && m.form != nil {
		title := titleStyle.Render("New Marker")
		return panelStyle.Width(m.width - 4).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View()))
	}

	w := m.contentWidth()
	start, end := m.vp.VisibleRange()

	rows := []string{
		m.renderTransportLine(),
		"",
		m.renderLabelRow(w, start, end),
		m.renderRulerRow(w, start, end),
		m.renderEventRow(w, start, end),
		"",
		mutedStyle.Render("  space: play  s: scrub  +/-: zoom  m: marker  shortcut letter: tag"),
	}

	return panelStyle.Width(m.width - 4).Render(strings.Join(rows, "\n"))
}

func (m timelineModel) renderTransportLine() string {
	state := mutedStyle.Render("⏸")
	if m.transport.Playing() {
		state = successStyle.Render("▶")
	}
	if m.scrubMode {
		state = scrubModeStyle.Render("✂ scrub")
	}
	tc := titleStyle.Render(timeline.Timecode(m.transport.CurrentTime()))
	total := mutedStyle.Render(" / " + timeline.Timecode(m.transport.Duration()))
	zoom := mutedStyle.Render(fmt.Sprintf("   %.1f px/s", m.vp.Zoom))
	return fmt.Sprintf("%s  %s%s%s", state, tc, total, zoom)
}

// renderLabelRow writes major-tick timecodes at their offsets.
func (m timelineModel) renderLabelRow(w int, start, end float64) string {
	cells := make([]string, w)
	for i := range cells {
		cells[i] = " "
	}
	for _, tick := range timeline.Ticks(start, end, m.vp.Duration, m.vp.Zoom) {
		if !tick.Major {
			continue
		}
		x := int(tick.Offset - m.vp.ScrollX)
		label := timeline.Timecode(tick.Time)
		if x < 0 || x+len(label) > w {
			continue
		}
		for j, r := range label {
			cells[x+j] = rulerMajorStyle.Render(string(r))
		}
	}
	return strings.Join(cells, "")
}

func (m timelineModel) renderRulerRow(w int, start, end float64) string {
	cells := make([]string, w)
	for i := range cells {
		cells[i] = rulerStyle.Render("─")
	}
	for _, tick := range timeline.Ticks(start, end, m.vp.Duration, m.vp.Zoom) {
		x := int(tick.Offset - m.vp.ScrollX)
		if x < 0 || x >= w {
			continue
		}
		if tick.Major {
			cells[x] = rulerMajorStyle.Render("┼")
		} else {
			cells[x] = rulerStyle.Render("┴")
		}
	}
	m.overlayScrubber(cells, w, "▼")
	return strings.Join(cells, "")
}

// renderEventRow draws visible events as colored spans in a single
// lane; markers are single diamonds. Overlapping events overwrite left
// to right.
func (m timelineModel) renderEventRow(w int, start, end float64) string {
	cells := make([]string, w)
	for i := range cells {
		cells[i] = " "
	}

	codes := m.proj.CodeMap()
	for _, e := range m.proj.Events.InWindow(start, end) {
		if e.Type == project.TypeMarker {
			x := int(timeline.TimeToPixels(e.StartTime, m.vp.Zoom) - m.vp.ScrollX)
			if x >= 0 && x < w {
				cells[x] = accentStyle.Render("◆")
			}
			continue
		}

		color := codeColorDefault
		if c, ok := codes[e.CodeID]; ok {
			color = codeColor(c.ColorName)
		}
		style := lipgloss.NewStyle().Foreground(color)

		from := int(timeline.TimeToPixels(e.StartTime, m.vp.Zoom) - m.vp.ScrollX)
		to := int(timeline.TimeToPixels(e.EndTime, m.vp.Zoom) - m.vp.ScrollX)
		from = maxInt(from, 0)
		to = minInt(to, w-1)
		for x := from; x <= to; x++ {
			cells[x] = style.Render("█")
		}
	}

	m.overlayScrubber(cells, w, "│")
	return strings.Join(cells, "")
}

func (m timelineModel) overlayScrubber(cells []string, w int, glyph string) {
	x := int(m.playheadX())
	if x >= 0 && x < w {
		cells[x] = scrubberStyle.Render(glyph)
	}
}
