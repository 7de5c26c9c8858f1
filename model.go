package main

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/andareed/siftly-activity/chart"
	"github.com/andareed/siftly-activity/clipboard"
	"github.com/andareed/siftly-activity/config"
	"github.com/andareed/siftly-activity/dataset"
	"github.com/andareed/siftly-activity/dialogs"
	"github.com/andareed/siftly-activity/export"
	"github.com/andareed/siftly-activity/logging"
	"github.com/andareed/siftly-activity/viewstate"
)

const defaultExportDir = "export"

type model struct {
	data dataState
	ui   uiState
	cfg  config.Config

	styles       plotStyles
	zones        *zone.Manager
	help         help.Model
	activeDialog dialogs.Dialog

	terminalWidth  int
	terminalHeight int
	ready          bool

	activityView   string
	differenceView string

	// cmds queued by state-change callbacks, drained at the end of Update
	pending []tea.Cmd

	now      func() time.Time
	copyText func(string) error
}

func newModel(source string, ds *dataset.Dataset, cfg config.Config) *model {
	ctrl := viewstate.NewController(ds)

	h := help.New()
	// footer draws its own colours
	h.Styles = help.Styles{}
	h.ShortSeparator = " · "

	m := &model{
		data:     newDataState(source, ctrl, cfg),
		cfg:      cfg,
		styles:   newPlotStyles(cfg.Colors),
		help:     h,
		now:      time.Now,
		copyText: clipboard.Copy,
	}
	m.ui.plots = make(map[string]plotGeom)
	m.ui.zoomWindow = newZoomWindowUI()
	m.ui.anim = newDomainAnimation(cfg.Animation, ctrl.FullDomain())

	ctrl.Subscribe(m.onStateChange)
	m.refreshView("init")
	return m
}

func (m *model) Init() tea.Cmd {
	logging.Infof("siftly-activity: Initialised with %d samples", m.data.ctrl.Dataset().Len())
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	if len(m.pending) == 0 {
		return next, cmd
	}
	cmds := append(m.pending, cmd)
	m.pending = nil
	return next, tea.Batch(cmds...)
}

func (m *model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		if _, ok := msg.(tea.KeyMsg); ok {
			var cmd tea.Cmd
			m.activeDialog, cmd = m.activeDialog.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.terminalWidth = msg.Width
		m.terminalHeight = msg.Height
		m.ready = true
		m.refreshView("resize")
		return m, nil
	case animTickMsg:
		running := m.ui.anim.step()
		m.refreshView("anim")
		if running {
			return m, m.ui.anim.tickCmd()
		}
		return m, nil
	case clearNoticeMsg:
		m.clearNotice(msg.id)
		return m, nil
	case dialogs.ExportConfirmedMsg:
		m.activeDialog = nil
		return m, m.exportCmd(msg.Dir)
	case dialogs.ExportCanceledMsg:
		m.activeDialog = nil
		return m, nil
	case dialogs.ExportOKMsg:
		return m, m.startNotice("Exported "+strings.Join(baseNames(msg.Files), ", ")+" to "+msg.Dir, "success", noticeLongDuration)
	case dialogs.ExportErrorMsg:
		return m, m.startNotice("Export failed: "+msg.Err.Error(), "error", noticeLongDuration)
	}
	return m, nil
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.ui.mode {
	case modeCommand:
		return m.handleCommandKey(msg)
	case modeZoomWindow:
		return m.handleTimeWindowKey(msg)
	}
	return m.handleViewModeKey(msg)
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctrl := m.data.ctrl
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.ToggleMale):
		ctrl.ToggleSeries(viewstate.Male)
	case key.Matches(msg, Keys.ToggleFemale):
		ctrl.ToggleSeries(viewstate.Female)
	case key.Matches(msg, Keys.ToggleOn):
		ctrl.ToggleLight(dataset.LightsOn)
	case key.Matches(msg, Keys.ToggleOff):
		ctrl.ToggleLight(dataset.LightsOff)
	case key.Matches(msg, Keys.Reset):
		m.ui.cursor = sampleCursor{}
		ctrl.Reset()
	case key.Matches(msg, Keys.ResetZoom):
		ctrl.ResetZoom()
	case key.Matches(msg, Keys.PanLeft):
		m.panWindow(-1)
	case key.Matches(msg, Keys.PanRight):
		m.panWindow(1)
	case key.Matches(msg, Keys.CursorLeft):
		m.moveCursor(-1)
		m.refreshView("cursor")
	case key.Matches(msg, Keys.CursorRight):
		m.moveCursor(1)
		m.refreshView("cursor")
	case key.Matches(msg, Keys.ZoomIn):
		m.scaleWindow(zoomInFactor)
	case key.Matches(msg, Keys.ZoomOut):
		m.scaleWindow(zoomOutFactor)
	case key.Matches(msg, Keys.ZoomWindow):
		m.openTimeWindowDrawer()
	case key.Matches(msg, Keys.Command):
		m.ui.mode = modeCommand
		m.ui.command = CommandInput{cmd: CommandFromPrefix(':')}
	case key.Matches(msg, Keys.OpenHelp):
		m.activeDialog = dialogs.NewHelpDialog(Keys.Legend(), mouseHelp...)
	case key.Matches(msg, Keys.ExportToDir):
		d := dialogs.NewExportDialog(defaultExportDir, "")
		m.activeDialog = d
		return m, d.Init()
	case key.Matches(msg, Keys.Copy):
		return m, m.copyToClipboard()
	}
	return m, nil
}

var mouseHelp = []string{
	"hover a plot to inspect the nearest sample",
	"drag across a plot to zoom into that range",
	"double-click a plot to reset the zoom",
	"click legend entries to toggle series and lighting",
	"click Reset to restore every default",
}

// onStateChange runs after every controller commit.
func (m *model) onStateChange(st viewstate.State) {
	if m.ui.cursor.active {
		i := m.ui.cursor.index
		if !m.data.ctrl.Eligible(i) || !m.inDomain(i) {
			m.ui.cursor = sampleCursor{}
		}
	}
	if cmd := m.ui.anim.retarget(st.TimeDomain); cmd != nil {
		m.pending = append(m.pending, cmd)
	}
	m.refreshView("state")
}

// refreshView rebuilds both scenes with the current overlays and redraws
// them at the current terminal size.
func (m *model) refreshView(reason string) {
	m.data.rebuild(m.data.ctrl.State(), m.ui.anim.domain())

	act, diff := m.data.activity, m.data.difference
	switch {
	case m.ui.pointer.active && m.ui.pointer.id == chart.ActivityID:
		act = act.WithPointer(m.ui.pointer.px)
	case m.ui.pointer.active && m.ui.pointer.id == chart.DifferenceID:
		diff = diff.WithPointer(m.ui.pointer.px)
	case m.ui.cursor.active:
		act = act.WithSample(m.ui.cursor.index, -1)
		diff = diff.WithSample(m.ui.cursor.index, -1)
	}
	switch m.ui.brushID {
	case chart.ActivityID:
		act = act.WithBrush(&m.ui.brush)
	case chart.DifferenceID:
		diff = diff.WithBrush(&m.ui.brush)
	}
	m.data.activity, m.data.difference = act, diff

	if !m.ready {
		return
	}
	w, actH, diffH := m.plotSizes()
	m.activityView, m.ui.plots[chart.ActivityID] = drawScene(act, w, actH, m.styles)
	m.differenceView, m.ui.plots[chart.DifferenceID] = drawScene(diff, w, diffH, m.styles)
	if logging.IsDebugMode() && reason != "anim" {
		logging.Debugf("refreshView(%s) plot=%dx%d/%d %s", reason, w, actH, diffH, m.data.summary)
	}
}

// hoverLines is the tooltip currently on screen, if any.
func (m *model) hoverLines() []string {
	for _, sc := range []chart.Scene{m.data.activity, m.data.difference} {
		if sc.Hover != nil {
			return sc.Hover.Lines
		}
	}
	return nil
}

func (m *model) copyToClipboard() tea.Cmd {
	text := "Avg male: " + m.data.summary.Male.String() +
		"  Avg female: " + m.data.summary.Female.String() +
		"  Avg difference: " + m.data.summary.Diff.String()
	what := "stats"
	if lines := m.hoverLines(); len(lines) > 0 {
		text = strings.Join(lines, "  ")
		what = "sample"
	}
	if err := m.copyText(text); err != nil {
		return m.startNotice("Copy failed: "+err.Error(), "error", noticeDuration)
	}
	return m.startNotice("Copied "+what+" to clipboard", "success", noticeDuration)
}

// exportView snapshots the state without hover or brush overlays and at the
// settled domain.
func (m *model) exportView() export.View {
	snap := m.data
	st := m.data.ctrl.State()
	snap.rebuild(st, st.TimeDomain)
	return export.View{
		Activity:   snap.activity,
		Difference: snap.difference,
		Subset:     st.Filtered,
		Summary:    snap.summary,
	}
}

func (m *model) exportCmd(dir string) tea.Cmd {
	v := m.exportView()
	return func() tea.Msg {
		files, err := export.Bundle(context.Background(), dir, v)
		if err != nil {
			return dialogs.ExportErrorMsg{Err: err}
		}
		return dialogs.ExportOKMsg{Dir: dir, Files: files}
	}
}
