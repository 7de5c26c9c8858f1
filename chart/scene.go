package chart

import (
	"github.com/andareed/siftly-activity/scale"
)

// Source is one drawable series. X must be ascending over [0, Len).
type Source struct {
	Name  string
	Color string
	Len   int
	X     func(i int) float64
	Y     func(i int) float64
}

// Spec parametrises Build. The activity and the difference chart are both
// described by a Spec; there is no chart-specific drawing code.
type Spec struct {
	ID     string
	Layout Layout
	Domain [2]float64
	// YLo/YHi/HasY is the vertical extent. HasY false means there is nothing
	// to scale against and the plot stays empty.
	YLo, YHi float64
	HasY     bool
	Series   []Source
	// Defined is the filter predicate. Lines break wherever two
	// consecutive samples are not both defined.
	Defined func(i int) bool
	// Tooltip formats sample i for the hover box.
	Tooltip func(i int) []string
	Hidden  bool
}

type Point struct {
	Index  int
	X, Y   float64
	PX, PY float64
}

// Path is one series as a list of unbroken polylines.
type Path struct {
	Name     string
	Color    string
	Segments [][]Point
}

type Tick struct {
	Value float64
	Pos   float64
	Label string
}

// Scene is everything a host needs to draw one chart. Scenes are values; a
// state change produces a new one.
type Scene struct {
	ID     string
	Layout Layout
	X      scale.Linear
	Y      scale.Linear
	// Empty means no series could be drawn: no lines and no axes.
	Empty  bool
	Hidden bool
	XTicks []Tick
	YTicks []Tick
	Paths  []Path
	Hover  *Hover
	Brush  *BrushRect

	spec Spec
}

// Build lays out a fresh scene from spec.
func Build(spec Spec) Scene {
	sc := Scene{
		ID:     spec.ID,
		Layout: spec.Layout,
		X:      XScale(spec.Layout, spec.Domain),
		Hidden: spec.Hidden,
		spec:   spec,
	}
	if spec.Hidden {
		return sc
	}
	if !spec.HasY || len(spec.Series) == 0 {
		sc.Empty = true
		return sc
	}
	sc.Y = YScale(spec.Layout, spec.YLo, spec.YHi)

	x0, x1 := spec.Layout.PlotX()
	for _, v := range scale.NiceTicks(spec.Domain[0], spec.Domain[1], spec.Layout.ticks(x1-x0)) {
		sc.XTicks = append(sc.XTicks, Tick{Value: v, Pos: sc.X.Forward(v), Label: FormatHours(v)})
	}
	ylo, yhi := sc.Y.Domain()
	y0, y1 := spec.Layout.PlotY()
	for _, v := range scale.NiceTicks(ylo, yhi, spec.Layout.ticks(y0-y1)) {
		sc.YTicks = append(sc.YTicks, Tick{Value: v, Pos: sc.Y.Forward(v), Label: FormatValue(v)})
	}

	for _, src := range spec.Series {
		sc.Paths = append(sc.Paths, Path{
			Name:     src.Name,
			Color:    src.Color,
			Segments: segments(src, spec.Defined, spec.Domain, sc.X, sc.Y),
		})
	}
	return sc
}

// segments splits src into polylines at definedness gaps and clips each
// polyline to the time domain, interpolating the crossing points.
func segments(src Source, defined func(int) bool, domain [2]float64, x, y scale.Linear) [][]Point {
	lo, hi := domain[0], domain[1]
	ok := func(i int) bool { return defined == nil || defined(i) }
	point := func(i int, xv, yv float64) Point {
		return Point{Index: i, X: xv, Y: yv, PX: x.Forward(xv), PY: y.Forward(yv)}
	}

	var out [][]Point
	var cur []Point
	flush := func() {
		if len(cur) > 0 {
			out = append(out, cur)
			cur = nil
		}
	}

	for i := 0; i < src.Len; i++ {
		if !ok(i) {
			flush()
			continue
		}
		xi, yi := src.X(i), src.Y(i)
		inside := x.InDomain(xi)

		if inside && xi > lo && len(cur) == 0 && i > 0 && ok(i-1) && src.X(i-1) < lo {
			// line enters the domain from the left edge
			cur = append(cur, point(i, lo, lerp(src.X(i-1), src.Y(i-1), xi, yi, lo)))
		}
		if inside {
			cur = append(cur, point(i, xi, yi))
		}

		if i+1 >= src.Len || !ok(i+1) {
			if !inside {
				continue
			}
			flush()
			continue
		}
		xn, yn := src.X(i+1), src.Y(i+1)
		switch {
		case inside && xn > hi:
			// leaves through the right edge
			if xi < hi {
				cur = append(cur, point(i+1, hi, lerp(xi, yi, xn, yn, hi)))
			}
			flush()
		case xi < lo && xn > hi:
			// one segment spans the whole window
			out = append(out, []Point{
				point(i, lo, lerp(xi, yi, xn, yn, lo)),
				point(i+1, hi, lerp(xi, yi, xn, yn, hi)),
			})
		}
	}
	flush()
	return out
}

func lerp(x0, y0, x1, y1, at float64) float64 {
	if x1 == x0 {
		return y0
	}
	return y0 + (at-x0)/(x1-x0)*(y1-y0)
}
