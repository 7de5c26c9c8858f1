package chart

import "math"

// Brush tracks a horizontal drag over a plot in surface units.
type Brush struct {
	active bool
	start  float64
	end    float64
}

// BrushRect is the visible selection band.
type BrushRect struct {
	X0, X1 float64
}

func (b *Brush) Active() bool { return b.active }

func (b *Brush) Begin(px float64) {
	b.active = true
	b.start = px
	b.end = px
}

func (b *Brush) Move(px float64) {
	if b.active {
		b.end = px
	}
}

// Current is the position the drag last moved to.
func (b *Brush) Current() float64 { return b.end }

func (b *Brush) Cancel() {
	*b = Brush{}
}

// Rect is the current band clamped to the plot, or nil when idle.
func (b *Brush) Rect(l Layout) *BrushRect {
	if !b.active {
		return nil
	}
	x0, x1 := l.PlotX()
	a, c := clamp(b.start, x0, x1), clamp(b.end, x0, x1)
	return &BrushRect{X0: math.Min(a, c), X1: math.Max(a, c)}
}

// End finishes the drag at px and converts both edges through the inverse
// horizontal scale of sc. ok is false for a drag that collapsed to a single
// position. The brush is cleared either way.
func (b *Brush) End(px float64, sc Scene) (lo, hi float64, ok bool) {
	if !b.active {
		return 0, 0, false
	}
	b.end = px
	r := b.Rect(sc.Layout)
	b.Cancel()
	if math.Round(r.X0) == math.Round(r.X1) {
		return 0, 0, false
	}
	return sc.X.Invert(r.X0), sc.X.Invert(r.X1), true
}

// WithBrush returns a copy of the scene carrying the selection band.
func (s Scene) WithBrush(b *Brush) Scene {
	s.Brush = b.Rect(s.Layout)
	return s
}
