package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-activity/chart"
	"github.com/andareed/siftly-activity/legend"
	"github.com/andareed/siftly-activity/stats"
)

func (m *model) mark(id, s string) string {
	if m.zones == nil {
		return s
	}
	return m.zones.Mark(id, s)
}

func legendItem(e legend.Entry) string {
	color, box := e.Color, "■"
	label := statLabelStyle
	if !e.Enabled {
		color, box = dimmed(e.Color), "□"
		label = label.Faint(true).Strikethrough(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(box) + " " + label.Render(e.Label)
}

// legendView is the control row: series legend, lighting legend and the
// reset control. Every entry is its own mouse zone.
func (m *model) legendView() string {
	st := m.data.ctrl.State()
	var series, lights []string
	for _, e := range legend.SeriesEntries(st, m.data.palette) {
		series = append(series, m.mark(e.ID, legendItem(e)))
	}
	for _, e := range legend.LightEntries(st) {
		lights = append(lights, m.mark(e.ID, legendItem(e)))
	}
	reset := m.mark(chart.ResetID, resetStyle.Render("Reset"))
	return strings.Join(series, "  ") + "    " + strings.Join(lights, "  ") + "    " + reset
}

func statItem(label string, s stats.Stat) string {
	return statLabelStyle.Render(label+": ") + statValueStyle.Render(s.String())
}

// statsView shows the averages of the filtered subset.
func (m *model) statsView(width int) string {
	sum := m.data.summary
	items := []string{
		m.mark(chart.StatMaleID, statItem("Avg male", sum.Male)),
		m.mark(chart.StatFemaleID, statItem("Avg female", sum.Female)),
		m.mark(chart.StatDiffID, statItem("Avg difference", sum.Diff)),
		statLabelStyle.Render(fmt.Sprintf("samples: %d", sum.Count)),
	}
	return panelStyle.Width(max(0, width-2)).Render(strings.Join(items, "   "))
}
