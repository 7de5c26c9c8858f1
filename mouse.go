package main

import (
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-activity/chart"
	"github.com/andareed/siftly-activity/legend"
	"github.com/andareed/siftly-activity/logging"
)

const (
	doubleClickWindow = 400 * time.Millisecond
	doubleClickSlop   = 1 // columns
)

var plotIDs = []string{chart.ActivityID, chart.DifferenceID}

// zoneAt finds the zone under the pointer among ids and returns the
// zone-relative column.
func (m *model) zoneAt(msg tea.MouseMsg, ids ...string) (string, int, bool) {
	if m.zones == nil {
		return "", 0, false
	}
	for _, id := range ids {
		z := m.zones.Get(id)
		if z == nil || !z.InBounds(msg) {
			continue
		}
		col, _ := z.Pos(msg)
		return id, col, true
	}
	return "", 0, false
}

func (m *model) clickableIDs() []string {
	st := m.data.ctrl.State()
	var ids []string
	for _, e := range legend.SeriesEntries(st, m.data.palette) {
		ids = append(ids, e.ID)
	}
	for _, e := range legend.LightEntries(st) {
		ids = append(ids, e.ID)
	}
	return append(ids, chart.ResetID)
}

func (m *model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	id, col, onPlot := m.zoneAt(msg, plotIDs...)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if onPlot {
			m.plotPress(id, col)
			return m, nil
		}
		if zid, _, ok := m.zoneAt(msg, m.clickableIDs()...); ok {
			m.clickZone(zid)
		}
	case tea.MouseActionMotion:
		if m.ui.brush.Active() {
			if bid, bcol, ok := m.zoneAt(msg, m.ui.brushID); ok {
				m.plotMotion(bid, bcol)
			}
			return m, nil
		}
		if onPlot {
			m.plotMotion(id, col)
		} else {
			m.plotLeave()
		}
	case tea.MouseActionRelease:
		if !m.ui.brush.Active() {
			return m, nil
		}
		if bid, bcol, ok := m.zoneAt(msg, m.ui.brushID); ok {
			m.plotRelease(bid, bcol)
		} else {
			m.plotReleaseOutside()
		}
	}
	return m, nil
}

func (m *model) plotPress(id string, col int) {
	geom := m.ui.plots[id]
	px := geom.surfaceX(col)
	if !geom.layout.ContainsX(px) {
		return
	}
	m.ui.brush.Begin(px)
	m.ui.brushID = id
	m.refreshView("brush-start")
}

func (m *model) plotMotion(id string, col int) {
	px := m.ui.plots[id].surfaceX(col)
	if m.ui.brush.Active() && id == m.ui.brushID {
		m.ui.brush.Move(px)
	}
	m.ui.pointer = pointer{id: id, px: px, active: true}
	m.ui.cursor = sampleCursor{}
	m.refreshView("hover")
}

func (m *model) plotLeave() {
	if !m.ui.pointer.active {
		return
	}
	m.ui.pointer = pointer{}
	m.refreshView("hover-leave")
}

// plotRelease ends a drag. A drag that covers at least one column zooms;
// anything shorter is a click, and a second click close in time and place
// resets the zoom.
func (m *model) plotRelease(id string, col int) {
	sc, _ := m.data.scene(id)
	px := m.ui.plots[id].surfaceX(col)
	lo, hi, ok := m.ui.brush.End(px, sc)
	m.ui.brushID = ""
	if ok {
		m.ui.lastClick = click{}
		logging.Debugf("brush on %s: [%g, %g]", id, lo, hi)
		if !m.data.ctrl.Zoom(lo, hi) {
			m.refreshView("brush-degenerate")
		}
		return
	}

	now := m.now()
	last := m.ui.lastClick
	if last.id == id && now.Sub(last.at) <= doubleClickWindow && abs(col-last.col) <= doubleClickSlop {
		m.ui.lastClick = click{}
		m.data.ctrl.ResetZoom()
		return
	}
	m.ui.lastClick = click{id: id, col: col, at: now}
	m.refreshView("click")
}

// plotReleaseOutside ends a drag released off the plot at the last position
// the brush saw.
func (m *model) plotReleaseOutside() {
	id := m.ui.brushID
	sc, _ := m.data.scene(id)
	lo, hi, ok := m.ui.brush.End(m.ui.brush.Current(), sc)
	m.ui.brushID = ""
	if ok && m.data.ctrl.Zoom(lo, hi) {
		return
	}
	m.refreshView("brush-cancel")
}

// clickZone handles a click on a legend entry or the reset control.
func (m *model) clickZone(id string) {
	if id == chart.ResetID {
		m.ui.cursor = sampleCursor{}
		m.ui.pointer = pointer{}
		m.data.ctrl.Reset()
		return
	}
	if !legend.Dispatch(m.data.ctrl, m.data.palette, id) {
		logging.Debugf("click on unknown zone %q", id)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func baseNames(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Base(p)
	}
	return out
}
