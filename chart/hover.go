package chart

import "sort"

// Nearest picks the sample nearest to t among the two samples adjacent to
// it in time order, ties going to the earlier one. Only eligible samples
// count, and the search never reaches past the adjacent pair, so filtered
// gaps are not bridged. ok is false when t lies outside the data or no
// adjacent sample is eligible.
func Nearest(xs []float64, eligible func(i int) bool, t float64) (int, bool) {
	n := len(xs)
	if n == 0 || t < xs[0] || t > xs[n-1] {
		return 0, false
	}
	can := func(i int) bool { return eligible == nil || eligible(i) }

	hi := sort.SearchFloat64s(xs, t)
	if xs[hi] == t {
		return hi, can(hi)
	}
	lo := hi - 1
	first, second := lo, hi
	if t-xs[lo] > xs[hi]-t {
		first, second = hi, lo
	}
	switch {
	case can(first):
		return first, true
	case can(second):
		return second, true
	}
	return 0, false
}

// Hover is the tooltip anchored on one sample.
type Hover struct {
	Index    int
	PointerX float64
	// SampleX is the sample position clamped to the plot.
	SampleX float64
	Lines   []string
}

// WithPointer returns a copy of the scene with the tooltip for a pointer at
// horizontal surface position px, or without one when nothing qualifies.
func (s Scene) WithPointer(px float64) Scene {
	s.Hover = nil
	if s.Hidden || s.Empty || !s.Layout.ContainsX(px) {
		return s
	}
	src := s.spec.Series[0]
	xs := make([]float64, src.Len)
	for i := range xs {
		xs[i] = src.X(i)
	}
	idx, ok := Nearest(xs, s.spec.Defined, s.X.Invert(px))
	if !ok {
		return s
	}
	return s.WithSample(idx, px)
}

// WithSample pins the tooltip on sample idx. Used for keyboard navigation
// where there is no pointer.
func (s Scene) WithSample(idx int, px float64) Scene {
	s.Hover = nil
	if s.Hidden || s.Empty || len(s.spec.Series) == 0 {
		return s
	}
	src := s.spec.Series[0]
	if idx < 0 || idx >= src.Len {
		return s
	}
	if s.spec.Defined != nil && !s.spec.Defined(idx) {
		return s
	}
	x0, x1 := s.Layout.PlotX()
	sx := clamp(s.X.Forward(src.X(idx)), x0, x1)
	if px < x0 || px > x1 {
		px = sx
	}
	h := &Hover{Index: idx, PointerX: px, SampleX: sx}
	if s.spec.Tooltip != nil {
		h.Lines = s.spec.Tooltip(idx)
	}
	s.Hover = h
	return s
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
