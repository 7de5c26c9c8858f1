package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-activity/chart"
	"github.com/andareed/siftly-activity/logging"
)

const (
	legendRows  = 1
	statsRows   = 3
	tooltipRows = 1
	footerRows  = 2
	minPlotRows = 4
)

func (m *model) contentWidth() int {
	// appstyle margin is two columns either side
	return max(0, m.terminalWidth-4)
}

// plotSizes splits the rows left over by the fixed rows between the two
// plots in proportion to their surface heights.
func (m *model) plotSizes() (w, activityH, differenceH int) {
	w = m.contentWidth()
	free := m.terminalHeight - 2 - legendRows - statsRows - 2*tooltipRows - footerRows
	if m.ui.zoomWindow.open {
		free -= timeWindowDrawerHeight
	}
	ah, dh := m.data.activityLayout.Height, m.data.differenceLayout.Height
	activityH = int(float64(free) * ah / (ah + dh))
	differenceH = free - activityH
	return w, max(activityH, minPlotRows), max(differenceH, minPlotRows)
}

// footerView renders the 2-line footer.
func (m *model) footerView(width int) string {
	st := m.data.ctrl.State()
	fs := FooterState{
		Mode:        m.ui.command.cmd,
		FileName:    m.data.source,
		SeriesLabel: st.Visible.String(),
		LightsLabel: st.Filter.String(),
		Window:      m.commandRightContext(),
		Legend:      truncatePlain("("+m.help.ShortHelpView(Keys.ShortHelp())+")", width/2),
	}
	if m.ui.mode == modeCommand {
		fs.ModeInput = m.activeCommandLine()
	}

	switch {
	case m.ui.noticeMsg != "":
		fs.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	case m.ui.mode == modeCommand:
		fs.StatusMessage = m.idleCommandHintsLine()
	default:
		fs.StatusMessage = m.timeWindowStatusLabel() + "  " +
			scrubberLine(width/2, m.data.ctrl.FullDomain(), st.TimeDomain)
	}

	if logging.IsDebugMode() {
		fs.FileName += fmt.Sprintf(" [%dx%d anim=%v]", m.terminalWidth, m.terminalHeight, m.ui.anim.running)
	}
	return RenderFooter(width, fs, DefaultFooterStyles())
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return lipgloss.Place(
			m.terminalWidth, m.terminalHeight,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	w := m.contentWidth()
	parts := []string{
		m.legendView(),
		m.statsView(w),
		m.mark(chart.ActivityID, m.activityView),
		tooltipStrip(m.data.activity, m.ui.plots[chart.ActivityID], w, m.styles),
	}
	if !m.data.difference.Hidden {
		parts = append(parts,
			m.mark(chart.DifferenceID, m.differenceView),
			tooltipStrip(m.data.difference, m.ui.plots[chart.DifferenceID], w, m.styles),
		)
	}
	if m.ui.zoomWindow.open {
		parts = append(parts, m.timeWindowDrawerView(w))
	}
	parts = append(parts, m.footerView(w))

	out := appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	if m.zones != nil {
		out = m.zones.Scan(out)
	}
	return out
}
