// Package chart turns view state into immutable scenes: axes, clipped
// polylines with definedness gaps, hover tooltip and brush selection. Hosts
// draw scenes; they never look at the dataset directly.
package chart

import "github.com/andareed/siftly-activity/scale"

// Surface identifiers shared with the host.
const (
	ActivityID     = "act-plot"
	DifferenceID   = "diff-plot"
	SeriesLegendID = "series-legend"
	LightLegendID  = "light-legend"
	StatMaleID     = "stat-male"
	StatFemaleID   = "stat-female"
	StatDiffID     = "stat-diff"
	ResetID        = "reset"
)

type Margin struct {
	Top, Right, Bottom, Left float64
}

// Layout is the fixed geometry of one drawing surface.
type Layout struct {
	Width, Height float64
	Margin        Margin
	// TickSpacing is the rough distance between axis ticks in surface units.
	TickSpacing float64
}

func ActivityLayout() Layout {
	return Layout{
		Width:       1000,
		Height:      300,
		Margin:      Margin{Top: 20, Right: 20, Bottom: 30, Left: 40},
		TickSpacing: 100,
	}
}

func DifferenceLayout() Layout {
	return Layout{
		Width:       1000,
		Height:      200,
		Margin:      Margin{Top: 20, Right: 20, Bottom: 30, Left: 40},
		TickSpacing: 100,
	}
}

// PlotX returns the horizontal output range.
func (l Layout) PlotX() (float64, float64) {
	return l.Margin.Left, l.Width - l.Margin.Right
}

// PlotY returns the vertical output range, bottom first.
func (l Layout) PlotY() (float64, float64) {
	return l.Height - l.Margin.Bottom, l.Margin.Top
}

func (l Layout) ContainsX(px float64) bool {
	x0, x1 := l.PlotX()
	return px >= x0 && px <= x1
}

func (l Layout) ticks(span float64) int {
	if l.TickSpacing <= 0 {
		return 5
	}
	n := int(span/l.TickSpacing) + 1
	if n < 2 {
		n = 2
	}
	return n
}

// XScale maps the time domain onto the plot's horizontal range.
func XScale(l Layout, domain [2]float64) scale.Linear {
	x0, x1 := l.PlotX()
	return scale.NewLinear(domain[0], domain[1], x0, x1)
}

// YScale maps [lo, hi] onto the plot's vertical range. A flat extent is
// padded so the line sits mid-plot.
func YScale(l Layout, lo, hi float64) scale.Linear {
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	y0, y1 := l.PlotY()
	return scale.NewLinear(lo, hi, y0, y1)
}
