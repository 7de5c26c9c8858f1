package main

import (
	"math"
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/andareed/siftly-activity/chart"
)

// plotGeom records where the graphing area of a drawn plot sits inside its
// zone so pointer columns can be mapped back to surface units.
type plotGeom struct {
	originX int
	graphW  int
	graphH  int
	layout  chart.Layout
	drawn   bool
}

// surfaceX converts a zone-relative column into a horizontal surface
// position. Columns left or right of the graphing area land outside the
// plot range.
func (g plotGeom) surfaceX(col int) float64 {
	x0, x1 := g.layout.PlotX()
	if !g.drawn || g.graphW < 2 {
		return x0 - 1
	}
	gc := col - g.originX - 1
	return x0 + float64(gc)/float64(g.graphW-1)*(x1-x0)
}

// column is the inverse of surfaceX.
func (g plotGeom) column(px float64) int {
	x0, x1 := g.layout.PlotX()
	if g.graphW < 2 || x1 == x0 {
		return g.originX + 1
	}
	gc := int(math.Round((px - x0) / (x1 - x0) * float64(g.graphW-1)))
	return g.originX + 1 + gc
}

func point(x, y float64) canvas.Float64Point {
	return canvas.Float64Point{X: x, Y: y}
}

// drawScene renders sc onto a w×h braille line chart.
func drawScene(sc chart.Scene, w, h int, sty plotStyles) (string, plotGeom) {
	geom := plotGeom{layout: sc.Layout}
	if sc.Hidden {
		return "", geom
	}
	if sc.Empty || w < 12 || h < 4 {
		return placeholder(w, h, "nothing selected", sty), geom
	}

	x0, x1 := sc.X.Domain()
	y0, y1 := sc.Y.Domain()
	lc := linechart.New(w, h, x0, x1, y0, y1)
	lc.AxisStyle = sty.axis
	lc.LabelStyle = sty.label
	lc.XLabelFormatter = func(_ int, v float64) string { return chart.FormatHours(v) }
	lc.YLabelFormatter = func(_ int, v float64) string { return chart.FormatValue(v) }
	lc.SetXStep(xLabelStep(w))
	lc.SetYStep(2)
	lc.DrawXYAxisAndLabel()

	if sc.Brush != nil {
		lo, hi := sc.X.Invert(sc.Brush.X0), sc.X.Invert(sc.Brush.X1)
		cols := lc.GraphWidth()
		for c := 0; c < cols; c++ {
			x := x0 + float64(c)/float64(max(cols-1, 1))*(x1-x0)
			if x < lo || x > hi {
				continue
			}
			lc.DrawRuneLineWithStyle(point(x, y0), point(x, y1), '░', sty.brush)
		}
	}
	if sc.Hover != nil {
		x := sc.X.Invert(sc.Hover.SampleX)
		lc.DrawRuneLineWithStyle(point(x, y0), point(x, y1), '┊', sty.cursor)
	}

	for _, p := range sc.Paths {
		line := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color))
		for _, seg := range p.Segments {
			if len(seg) == 1 {
				lc.DrawRuneWithStyle(point(seg[0].X, seg[0].Y), '•', line)
				continue
			}
			for i := 1; i < len(seg); i++ {
				lc.DrawBrailleLineWithStyle(point(seg[i-1].X, seg[i-1].Y), point(seg[i].X, seg[i].Y), line)
			}
		}
	}

	if sc.Hover != nil {
		for _, p := range sc.Paths {
			for _, seg := range p.Segments {
				for _, pt := range seg {
					if pt.Index == sc.Hover.Index && math.Abs(pt.PX-sc.Hover.SampleX) < 0.5 {
						lc.DrawRuneWithStyle(point(pt.X, pt.Y), '●', lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)))
					}
				}
			}
		}
	}

	geom.originX = lc.Origin().X
	geom.graphW = lc.GraphWidth()
	geom.graphH = lc.GraphHeight()
	geom.drawn = true
	return lc.View(), geom
}

func xLabelStep(w int) int {
	switch {
	case w >= 120:
		return 12
	case w >= 60:
		return 10
	default:
		return 8
	}
}

func placeholder(w, h int, msg string, sty plotStyles) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, sty.label.Render(msg))
}

// tooltipStrip renders the hover lines as a single boxed row placed under
// the hovered column and kept inside width.
func tooltipStrip(sc chart.Scene, geom plotGeom, width int, sty plotStyles) string {
	if sc.Hover == nil || !geom.drawn || len(sc.Hover.Lines) == 0 {
		return ""
	}
	box := sty.tooltip.Render(strings.Join(sc.Hover.Lines, "  "))
	boxW := ansi.StringWidth(box)
	left := geom.column(sc.Hover.SampleX) - boxW/2
	if left+boxW > width {
		left = width - boxW
	}
	if left < 0 {
		left = 0
	}
	return strings.Repeat(" ", left) + box
}
