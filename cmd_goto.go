package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-activity/chart"
	"github.com/andareed/siftly-activity/logging"
)

const (
	panFraction   = 0.1
	zoomInFactor  = 0.5
	zoomOutFactor = 2.0
)

func formatHour(h float64) string {
	return chart.FormatExact(h)
}

func (m *model) inDomain(i int) bool {
	d := m.data.ctrl.State().TimeDomain
	h := m.data.ctrl.Dataset().At(i).Hours
	return h >= d[0] && h <= d[1]
}

// gotoHour pins the sample cursor on the eligible sample nearest to h.
func (m *model) gotoHour(h float64) tea.Cmd {
	logging.Debugf("gotoHour %g", h)
	d := m.data.ctrl.State().TimeDomain
	if h < d[0] || h > d[1] {
		return m.startNotice(fmt.Sprintf("Hour %s outside the zoom window", formatHour(h)), "warn", noticeDuration)
	}
	idx, ok := chart.Nearest(m.data.ctrl.Dataset().Hours(), m.data.ctrl.Eligible, h)
	if !ok {
		return m.startNotice(fmt.Sprintf("No sample near hour %s under the current filter", formatHour(h)), "warn", noticeDuration)
	}
	m.setCursor(idx)
	m.refreshView("goto")
	return nil
}

func (m *model) setCursor(idx int) {
	m.ui.cursor = sampleCursor{index: idx, active: true}
	m.ui.pointer = pointer{}
}

// moveCursor steps the sample cursor to the next eligible sample inside the
// zoom window in direction dir. With no cursor yet it starts at the window
// edge the step points away from.
func (m *model) moveCursor(dir int) {
	n := m.data.ctrl.Dataset().Len()
	start := -1
	if dir < 0 {
		start = n
	}
	if m.ui.cursor.active {
		start = m.ui.cursor.index
	}
	for i := start + dir; i >= 0 && i < n; i += dir {
		if m.data.ctrl.Eligible(i) && m.inDomain(i) {
			m.setCursor(i)
			return
		}
	}
}

func (m *model) cursorHour() (float64, bool) {
	if !m.ui.cursor.active {
		return 0, false
	}
	return m.data.ctrl.Dataset().At(m.ui.cursor.index).Hours, true
}

func (m *model) panWindow(dir float64) {
	d := m.data.ctrl.State().TimeDomain
	m.data.ctrl.Pan(dir * panFraction * (d[1] - d[0]))
}

func (m *model) scaleWindow(factor float64) {
	d := m.data.ctrl.State().TimeDomain
	center := (d[0] + d[1]) / 2
	if h, ok := m.cursorHour(); ok {
		center = h
	}
	m.data.ctrl.ScaleWindow(factor, center)
}
