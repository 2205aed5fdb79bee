package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/evanfield/replaytag/internal/project"
	"github.com/evanfield/replaytag/internal/timeline"
)

type reportsModel struct {
	proj   *project.Project
	width  int
	height int

	chart barchart.Model
}

// codeSummary is one row of the per-code breakdown.
type codeSummary struct {
	code    project.Code
	count   int
	seconds float64
}

func newReportsModel(p *project.Project) reportsModel {
	return reportsModel{
		proj:  p,
		chart: barchart.New(60, 12),
	}
}

func (r *reportsModel) setSize(w, h int) {
	r.width = w
	r.height = h
}

// summarize tallies event count and total clip time per code, in the
// project's code order. Orphans and markers get their own rows.
func (r reportsModel) summarize() ([]codeSummary, int, float64) {
	byCode := make(map[uuid.UUID]*codeSummary)
	var rows []*codeSummary
	for _, c := range r.proj.Codes() {
		s := &codeSummary{code: c}
		byCode[c.ID] = s
		rows = append(rows, s)
	}

	orphans := &codeSummary{code: project.Code{Name: project.UnknownCodeName, ColorName: "gray"}}
	markers := &codeSummary{code: project.Code{Name: "Markers", ColorName: "gray"}}

	for _, e := range r.proj.Events.All() {
		switch {
		case e.Type == project.TypeMarker:
			markers.count++
		default:
			s, ok := byCode[e.CodeID]
			if !ok {
				s = orphans
			}
			s.count++
			s.seconds += e.Duration()
		}
	}

	if orphans.count > 0 {
		rows = append(rows, orphans)
	}
	if markers.count > 0 {
		rows = append(rows, markers)
	}

	var out []codeSummary
	total := 0
	var seconds float64
	for _, s := range rows {
		out = append(out, *s)
		total += s.count
		seconds += s.seconds
	}
	return out, total, seconds
}

func (r *reportsModel) buildChart(rows []codeSummary) {
	chartWidth := maxInt(r.width-8, 20)
	chartHeight := 12
	if r.height > 30 {
		chartHeight = 16
	}
	r.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, s := range rows {
		label := s.code.Name
		if len(label) > 8 {
			label = label[:8]
		}
		style := lipgloss.NewStyle().Foreground(codeColor(s.code.ColorName))
		bars = append(bars, barchart.BarData{
			Label: label,
			Values: []barchart.BarValue{{
				Name:  s.code.Name,
				Value: float64(s.count),
				Style: style,
			}},
		})
	}
	if len(bars) == 0 {
		bars = append(bars, barchart.BarData{
			Label:  "",
			Values: []barchart.BarValue{{Value: 0, Style: lipgloss.NewStyle().Foreground(colorSubtle)}},
		})
	}

	r.chart.PushAll(bars)
	r.chart.Draw()
}

func (r reportsModel) view() string {
	w := r.width - 4
	rows, total, seconds := r.summarize()
	r.buildChart(rows)

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Reports"), "  ",
		mutedStyle.Render(fmt.Sprintf("%d events, %s tagged", total, timeline.Timecode(seconds))),
	)

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", r.chart.View(), "", r.renderTable(w, rows),
		),
	)
}

func (r reportsModel) renderTable(w int, rows []codeSummary) string {
	if len(rows) == 0 {
		return mutedStyle.Render("  No codes defined")
	}

	out := []string{
		mutedStyle.Render(fmt.Sprintf("  %-26s %8s %12s", "Code", "Events", "Total")),
		mutedStyle.Render("  " + strings.Repeat("─", minInt(w-6, 48))),
	}
	for _, s := range rows {
		dot := lipgloss.NewStyle().Foreground(codeColor(s.code.ColorName)).Render("●")
		out = append(out, fmt.Sprintf("  %s %-24s %8d %12s",
			dot, s.code.Name, s.count, timeline.Timecode(s.seconds)))
	}
	return strings.Join(out, "\n")
}
