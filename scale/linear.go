// Package scale maps data values onto drawing coordinates.
package scale

import "math"

// Linear maps the domain [D0, D1] onto the range [R0, R1]. Either interval
// may be reversed (vertical scales usually run bottom-to-top).
type Linear struct {
	d0, d1 float64
	r0, r1 float64
}

func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{d0: d0, d1: d1, r0: r0, r1: r1}
}

func (l Linear) Domain() (float64, float64) { return l.d0, l.d1 }
func (l Linear) Range() (float64, float64)  { return l.r0, l.r1 }

// WithDomain returns a copy with a new domain and the same range.
func (l Linear) WithDomain(d0, d1 float64) Linear {
	l.d0, l.d1 = d0, d1
	return l
}

// Forward evaluates value -> coordinate. A zero-width domain maps every
// value to the middle of the range.
func (l Linear) Forward(v float64) float64 {
	span := l.d1 - l.d0
	if span == 0 {
		return (l.r0 + l.r1) / 2
	}
	return l.r0 + (v-l.d0)/span*(l.r1-l.r0)
}

// Invert evaluates coordinate -> value.
func (l Linear) Invert(px float64) float64 {
	span := l.r1 - l.r0
	if span == 0 {
		return l.d0
	}
	return l.d0 + (px-l.r0)/span*(l.d1-l.d0)
}

// InDomain reports whether v lies inside the domain, regardless of direction.
func (l Linear) InDomain(v float64) bool {
	lo, hi := math.Min(l.d0, l.d1), math.Max(l.d0, l.d1)
	return v >= lo && v <= hi
}

// Extent returns min and max over all values, skipping NaN. ok is false when
// nothing was seen.
func Extent(values ...[]float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, vs := range values {
		for _, v := range vs {
			if math.IsNaN(v) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
			ok = true
		}
	}
	if !ok {
		return 0, 0, false
	}
	return lo, hi, true
}
