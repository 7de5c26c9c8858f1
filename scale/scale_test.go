package scale

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearForwardInvert(t *testing.T) {
	x := NewLinear(0, 10, 40, 980)
	assert.InDelta(t, 40, x.Forward(0), 1e-9)
	assert.InDelta(t, 980, x.Forward(10), 1e-9)
	assert.InDelta(t, 510, x.Forward(5), 1e-9)

	for _, v := range []float64{0, 0.4, 3.3, 7, 10} {
		assert.InDelta(t, v, x.Invert(x.Forward(v)), 1e-9)
	}
}

func TestLinearReversedRange(t *testing.T) {
	y := NewLinear(0, 100, 270, 20)
	assert.InDelta(t, 270, y.Forward(0), 1e-9)
	assert.InDelta(t, 20, y.Forward(100), 1e-9)
	assert.InDelta(t, 50, y.Invert(145), 1e-9)
}

func TestLinearDegenerate(t *testing.T) {
	flat := NewLinear(5, 5, 0, 100)
	assert.Equal(t, 50.0, flat.Forward(5))
	assert.Equal(t, 5.0, NewLinear(5, 9, 3, 3).Invert(42))
}

func TestWithDomainKeepsRange(t *testing.T) {
	x := NewLinear(0, 10, 40, 980).WithDomain(2, 4)
	d0, d1 := x.Domain()
	r0, r1 := x.Range()
	assert.Equal(t, [4]float64{2, 4, 40, 980}, [4]float64{d0, d1, r0, r1})
	assert.True(t, x.InDomain(3))
	assert.False(t, x.InDomain(4.5))
}

func TestExtent(t *testing.T) {
	lo, hi, ok := Extent([]float64{3, 1, math.NaN()}, []float64{7, -2})
	require.True(t, ok)
	assert.Equal(t, -2.0, lo)
	assert.Equal(t, 7.0, hi)

	_, _, ok = Extent()
	assert.False(t, ok)
	_, _, ok = Extent([]float64{math.NaN()})
	assert.False(t, ok)
}

func TestNiceTicks(t *testing.T) {
	cases := []struct {
		lo, hi float64
		n      int
		want   []float64
	}{
		{0, 10, 6, []float64{0, 2, 4, 6, 8, 10}},
		{0, 1, 5, []float64{0, 0.25, 0.5, 0.75, 1}},
		{3, 3, 5, []float64{3, 3}},
		{0, 10, 1, []float64{0, 10}},
	}
	for _, c := range cases {
		got := NiceTicks(c.lo, c.hi, c.n)
		require.Len(t, got, len(c.want), "ticks %v..%v", c.lo, c.hi)
		for i := range got {
			assert.InDelta(t, c.want[i], got[i], 1e-9)
		}
	}

	ticks := NiceTicks(0.3, 97.1, 6)
	for _, v := range ticks {
		assert.True(t, v >= 0.3 && v <= 97.1, "tick %v outside range", v)
	}
}

func TestNiceStep(t *testing.T) {
	assert.Equal(t, 1.0, NiceStep(0.9))
	assert.Equal(t, 2.0, NiceStep(1.7))
	assert.Equal(t, 25.0, NiceStep(24))
	assert.Equal(t, 50.0, NiceStep(31))
	assert.Equal(t, 100.0, NiceStep(60))
	assert.Equal(t, 0.0, NiceStep(0))
}
