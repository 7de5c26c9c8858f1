package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/andareed/siftly-activity/config"
)

const (
	backgroundColor  = "#1e1e1e"
	labelFGColor     = "#a0a0a0"
	cursorFGColor    = "#d0d0d0"
	tooltipBGColor   = "#2b2b2b"
	tooltipFGColor   = "#e0e0e0"
	resetFGColor     = "#000000"
	resetBGColor     = "#ff9f1c"
	disabledBlendPct = 0.7
)

var (
	appstyle = lipgloss.NewStyle().Margin(1, 2)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	statLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(labelFGColor))
	statValueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(tooltipFGColor))
	resetStyle     = lipgloss.NewStyle().
			Foreground(lipgloss.Color(resetFGColor)).
			Background(lipgloss.Color(resetBGColor)).
			Padding(0, 1)

	zoomWindowArea = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 0).BorderLeft(true)
)

type plotStyles struct {
	axis    lipgloss.Style
	label   lipgloss.Style
	brush   lipgloss.Style
	cursor  lipgloss.Style
	tooltip lipgloss.Style
}

func newPlotStyles(c config.Colors) plotStyles {
	return plotStyles{
		axis:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Axis)),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color(labelFGColor)),
		brush:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Brush)),
		cursor:  lipgloss.NewStyle().Foreground(lipgloss.Color(cursorFGColor)),
		tooltip: lipgloss.NewStyle().Foreground(lipgloss.Color(tooltipFGColor)).Background(lipgloss.Color(tooltipBGColor)).Padding(0, 1),
	}
}

// dimmed blends hex toward the background so disabled legend entries still
// show which colour they stand for.
func dimmed(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return labelFGColor
	}
	bg, _ := colorful.Hex(backgroundColor)
	return c.BlendLab(bg, disabledBlendPct).Clamped().Hex()
}
