package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *model) openTimeWindowDrawer() {
	tw := &m.ui.zoomWindow
	tw.open = true
	tw.errorMsg = ""
	tw.step = timeWindowStepDefault

	d := m.data.ctrl.State().TimeDomain
	tw.draftStart, tw.draftEnd = d[0], d[1]

	m.updateTimeWindowInputsFromDraft()
	m.setTimeWindowFocus(timeWindowFocusStart)
	m.ui.mode = modeZoomWindow
	m.ui.command = CommandInput{cmd: CmdZoomWindow}
	m.refreshView("time-window-open")
}

func (m *model) closeTimeWindowDrawer() {
	m.ui.zoomWindow.open = false
	m.ui.zoomWindow.errorMsg = ""
	m.ui.mode = modeView
	m.ui.command = CommandInput{}
	m.refreshView("time-window-close")
}

func (m *model) handleTimeWindowKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tw := &m.ui.zoomWindow

	switch {
	case msg.Type == tea.KeyEsc:
		m.closeTimeWindowDrawer()
		return m, nil
	case msg.Type == tea.KeyEnter:
		m.applyTimeWindowFromInputs()
		return m, nil
	case tw.focus == timeWindowFocusScrubber && msg.String() == "r":
		m.resetTimeWindowDraft()
		return m, nil
	case msg.Type == tea.KeyTab:
		m.setTimeWindowFocus((tw.focus + 1) % 3)
		return m, nil
	case msg.Type == tea.KeyShiftTab:
		m.setTimeWindowFocus((tw.focus + 2) % 3)
		return m, nil
	case tw.focus == timeWindowFocusScrubber && msg.Type == tea.KeyLeft:
		m.shiftTimeWindow(-m.timeWindowStep())
		return m, nil
	case tw.focus == timeWindowFocusScrubber && msg.Type == tea.KeyRight:
		m.shiftTimeWindow(m.timeWindowStep())
		return m, nil
	case tw.focus == timeWindowFocusScrubber && msg.Type == tea.KeyShiftLeft:
		m.expandTimeWindow(-m.timeWindowStep())
		return m, nil
	case tw.focus == timeWindowFocusScrubber && msg.Type == tea.KeyShiftRight:
		m.expandTimeWindow(m.timeWindowStep())
		return m, nil
	case tw.focus == timeWindowFocusScrubber && msg.String() == "-":
		m.adjustTimeWindowStep(false)
		return m, nil
	case tw.focus == timeWindowFocusScrubber && (msg.String() == "+" || msg.String() == "="):
		m.adjustTimeWindowStep(true)
		return m, nil
	}

	var cmd tea.Cmd
	if tw.focus == timeWindowFocusStart {
		tw.startInput, cmd = tw.startInput.Update(msg)
		return m, cmd
	}
	if tw.focus == timeWindowFocusEnd {
		tw.endInput, cmd = tw.endInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) setTimeWindowFocus(focus int) {
	tw := &m.ui.zoomWindow
	tw.focus = focus
	switch focus {
	case timeWindowFocusStart:
		tw.startInput.Focus()
		tw.endInput.Blur()
	case timeWindowFocusEnd:
		tw.startInput.Blur()
		tw.endInput.Focus()
	default:
		m.syncDraftFromInputs()
		tw.startInput.Blur()
		tw.endInput.Blur()
	}
}

func (m *model) updateTimeWindowInputsFromDraft() {
	tw := &m.ui.zoomWindow
	tw.startInput.SetValue(formatHour(tw.draftStart))
	tw.endInput.SetValue(formatHour(tw.draftEnd))
}

func (m *model) syncDraftFromInputs() {
	tw := &m.ui.zoomWindow
	if h, ok := parseHourInput(tw.startInput.Value()); ok {
		tw.draftStart = h
	}
	if h, ok := parseHourInput(tw.endInput.Value()); ok {
		tw.draftEnd = h
	}
}

func (m *model) resetTimeWindowDraft() {
	tw := &m.ui.zoomWindow
	tw.errorMsg = ""
	tw.draftStart, tw.draftEnd = defaultWindowBounds(m.data.ctrl.FullDomain())
	m.updateTimeWindowInputsFromDraft()
}

func (m *model) applyTimeWindowFromInputs() {
	tw := &m.ui.zoomWindow
	tw.errorMsg = ""
	full := m.data.ctrl.FullDomain()

	start, ok := parseHourInput(tw.startInput.Value())
	if !ok {
		tw.errorMsg = "Invalid start hour"
		return
	}
	end, ok := parseHourInput(tw.endInput.Value())
	if !ok {
		tw.errorMsg = "Invalid end hour"
		return
	}
	if start >= end {
		tw.errorMsg = "Start must be before end"
		return
	}

	start = clampHourToBounds(start, full[0], full[1])
	end = clampHourToBounds(end, full[0], full[1])
	if !m.data.ctrl.Zoom(start, end) {
		tw.errorMsg = "Window is outside the data"
		return
	}
	tw.draftStart, tw.draftEnd = start, end
	m.closeTimeWindowDrawer()
}

// timeWindowStep is the scrubber step in hours.
func (m *model) timeWindowStep() float64 {
	step := m.ui.zoomWindow.step
	if step <= 0 {
		step = timeWindowStepDefault
	}
	step = clampHourToBounds(step, timeWindowStepMin, timeWindowStepMax)
	full := m.data.ctrl.FullDomain()
	return step * (full[1] - full[0])
}

func (m *model) adjustTimeWindowStep(increase bool) {
	step := m.ui.zoomWindow.step
	if increase {
		step *= 2
	} else {
		step /= 2
	}
	m.ui.zoomWindow.step = clampHourToBounds(step, timeWindowStepMin, timeWindowStepMax)
}

func (m *model) shiftTimeWindow(delta float64) {
	tw := &m.ui.zoomWindow
	tw.errorMsg = ""
	m.syncDraftFromInputs()

	full := m.data.ctrl.FullDomain()
	width := tw.draftEnd - tw.draftStart
	if width <= 0 || width >= full[1]-full[0] {
		tw.draftStart, tw.draftEnd = defaultWindowBounds(full)
		m.updateTimeWindowInputsFromDraft()
		return
	}

	nextStart := tw.draftStart + delta
	nextEnd := tw.draftEnd + delta
	if nextStart < full[0] {
		nextStart, nextEnd = full[0], full[0]+width
	}
	if nextEnd > full[1] {
		nextStart, nextEnd = full[1]-width, full[1]
	}
	tw.draftStart, tw.draftEnd = nextStart, nextEnd
	m.updateTimeWindowInputsFromDraft()
}

// expandTimeWindow grows the draft to the left for a negative delta and to
// the right for a positive one.
func (m *model) expandTimeWindow(delta float64) {
	tw := &m.ui.zoomWindow
	tw.errorMsg = ""
	m.syncDraftFromInputs()

	full := m.data.ctrl.FullDomain()
	if delta < 0 {
		tw.draftStart = clampHourToBounds(tw.draftStart+delta, full[0], full[1])
		if tw.draftStart > tw.draftEnd {
			tw.draftEnd = tw.draftStart
		}
	} else if delta > 0 {
		tw.draftEnd = clampHourToBounds(tw.draftEnd+delta, full[0], full[1])
		if tw.draftEnd < tw.draftStart {
			tw.draftStart = tw.draftEnd
		}
	}
	m.updateTimeWindowInputsFromDraft()
}

func (m *model) timeWindowDrawerView(width int) string {
	tw := &m.ui.zoomWindow
	innerWidth := max(0, width-2)
	lineStyle := lipgloss.NewStyle().Width(innerWidth)

	startLine := fmt.Sprintf("Start: %s", tw.startInput.View())
	endLine := fmt.Sprintf("End:   %s", tw.endInput.View())
	scrubberLine := scrubberLine(innerWidth, m.data.ctrl.FullDomain(), [2]float64{tw.draftStart, tw.draftEnd})
	helpLine := fmt.Sprintf("tab: next  enter: apply  esc: cancel  on scrubber ←/→: move %sh  shift+←/→: expand  -/+: step  r: full range",
		formatHour(m.timeWindowStep()),
	)
	errorLine := ""
	if tw.errorMsg != "" {
		errorLine = "Error: " + tw.errorMsg
	}

	lines := []string{
		lineStyle.Render(startLine),
		lineStyle.Render(endLine),
		lineStyle.Render(scrubberLine),
		lineStyle.Render(helpLine),
		lineStyle.Render(errorLine),
	}

	content := strings.Join(lines, "\n")
	return zoomWindowArea.Width(width).Render(content)
}

// scrubberLine draws window against full as a bar between the range labels.
func scrubberLine(width int, full, window [2]float64) string {
	minLabel := formatHour(full[0])
	maxLabel := formatHour(full[1])
	padding := 2
	barWidth := width - len(minLabel) - len(maxLabel) - padding*2
	if barWidth < 10 {
		return fmt.Sprintf("Window: %s - %s", formatHour(window[0]), formatHour(window[1]))
	}
	span := full[1] - full[0]
	if span <= 0 {
		return "Scrubber: n/a"
	}

	bar := []rune(strings.Repeat("-", barWidth))
	lo := clampHourToBounds(window[0], full[0], full[1])
	hi := clampHourToBounds(window[1], full[0], full[1])
	startPos := int(float64(barWidth-1) * (lo - full[0]) / span)
	endPos := int(float64(barWidth-1) * (hi - full[0]) / span)
	if endPos < startPos {
		startPos, endPos = endPos, startPos
	}
	for i := startPos; i <= endPos; i++ {
		bar[i] = '='
	}
	bar[startPos] = '['
	bar[endPos] = ']'

	return fmt.Sprintf("%s  %s  %s", minLabel, string(bar), maxLabel)
}

func (m *model) timeWindowStatusLabel() string {
	st := m.data.ctrl.State()
	if !st.Zoomed(m.data.ctrl.FullDomain()) {
		return "Window: full range"
	}
	return fmt.Sprintf("Window: %s - %s h", formatHour(st.TimeDomain[0]), formatHour(st.TimeDomain[1]))
}
