package chart

import (
	"testing"

	"github.com/andareed/siftly-activity/dataset"
	"github.com/andareed/siftly-activity/viewstate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func example(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New([]dataset.Record{
		{Hours: 0, MAvg: 10, FAvg: 5, Lights: dataset.LightsOn},
		{Hours: 1, MAvg: 20, FAvg: 15, Lights: dataset.LightsOff},
	})
	require.NoError(t, err)
	return ds
}

func fiveSamples(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New([]dataset.Record{
		{Hours: 0, MAvg: 10, FAvg: 5, Lights: dataset.LightsOn},
		{Hours: 1, MAvg: 20, FAvg: 15, Lights: dataset.LightsOff},
		{Hours: 2, MAvg: 30, FAvg: 12, Lights: dataset.LightsOff},
		{Hours: 3, MAvg: 8, FAvg: 9, Lights: dataset.LightsOn},
		{Hours: 4, MAvg: 11, FAvg: 4, Lights: dataset.LightsOn},
	})
	require.NoError(t, err)
	return ds
}

func TestNearest(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	cases := []struct {
		t      float64
		want   int
		wantOK bool
	}{
		{0.4, 0, true},
		{0.5, 0, true}, // tie goes to the earlier sample
		{0.6, 1, true},
		{2, 2, true},
		{3, 3, true},
		{-0.1, 0, false},
		{3.1, 0, false},
	}
	for _, c := range cases {
		got, ok := Nearest(xs, nil, c.t)
		assert.Equal(t, c.wantOK, ok, "t=%v", c.t)
		if c.wantOK {
			assert.Equal(t, c.want, got, "t=%v", c.t)
		}
	}
	_, ok := Nearest(nil, nil, 0)
	assert.False(t, ok)
}

func TestNearestDoesNotBridgeGaps(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}
	eligible := func(i int) bool { return i == 0 || i == 4 }

	_, ok := Nearest(xs, eligible, 2.2)
	assert.False(t, ok, "samples 2 and 3 are filtered out")

	idx, ok := Nearest(xs, eligible, 0.7)
	require.True(t, ok)
	assert.Equal(t, 0, idx, "nearer sample 1 is ineligible, adjacent sample 0 is used")

	_, ok = Nearest(xs, eligible, 1)
	assert.False(t, ok)
}

func TestActivitySceneYExtentIgnoresZoomAndFilter(t *testing.T) {
	ds := fiveSamples(t)
	c := viewstate.NewController(ds)
	full := Build(ActivitySpec(ds, c.State(), ActivityLayout(), DefaultPalette()))
	lo, hi := full.Y.Domain()
	assert.Equal(t, [2]float64{4, 30}, [2]float64{lo, hi})

	c.Zoom(3, 4)
	c.ToggleLight(dataset.LightsOff)
	zoomed := Build(ActivitySpec(ds, c.State(), ActivityLayout(), DefaultPalette()))
	zlo, zhi := zoomed.Y.Domain()
	assert.Equal(t, [2]float64{lo, hi}, [2]float64{zlo, zhi})
}

func TestActivitySceneSeriesToggleRoundTrip(t *testing.T) {
	ds := fiveSamples(t)
	c := viewstate.NewController(ds)
	build := func() Scene { return Build(ActivitySpec(ds, c.State(), ActivityLayout(), DefaultPalette())) }

	before := build()
	c.ToggleSeries(viewstate.Female)
	maleOnly := build()
	lo, hi := maleOnly.Y.Domain()
	assert.Equal(t, [2]float64{8, 30}, [2]float64{lo, hi})
	require.Len(t, maleOnly.Paths, 1)
	assert.Equal(t, "Male", maleOnly.Paths[0].Name)

	c.ToggleSeries(viewstate.Female)
	after := build()
	blo, bhi := before.Y.Domain()
	alo, ahi := after.Y.Domain()
	assert.Equal(t, [2]float64{blo, bhi}, [2]float64{alo, ahi})
	assert.Len(t, after.Paths, 2)
}

func TestEmptySceneWhenNoSeries(t *testing.T) {
	ds := fiveSamples(t)
	c := viewstate.NewController(ds)
	c.ToggleSeries(viewstate.Male)
	c.ToggleSeries(viewstate.Female)
	sc := Build(ActivitySpec(ds, c.State(), ActivityLayout(), DefaultPalette()))
	assert.True(t, sc.Empty)
	assert.Empty(t, sc.Paths)
	assert.Empty(t, sc.XTicks)
	assert.Nil(t, sc.WithPointer(500).Hover)
}

func TestEmptySceneWhenBothLightsOff(t *testing.T) {
	ds := fiveSamples(t)
	c := viewstate.NewController(ds)
	c.ToggleLight(dataset.LightsOn)
	c.ToggleLight(dataset.LightsOff)
	require.Equal(t, viewstate.FilterNothing, c.State().Filter)

	sc := Build(ActivitySpec(ds, c.State(), ActivityLayout(), DefaultPalette()))
	assert.True(t, sc.Empty)
	assert.Empty(t, sc.Paths)
	assert.Empty(t, sc.XTicks)
	assert.Empty(t, sc.YTicks)
	assert.Nil(t, sc.WithSample(0, -1).Hover)
}

func TestSegmentsBreakAtDefinednessGaps(t *testing.T) {
	ds := fiveSamples(t)
	c := viewstate.NewController(ds)
	c.ToggleLight(dataset.LightsOff) // On only: samples 0, 3, 4
	sc := Build(ActivitySpec(ds, c.State(), ActivityLayout(), DefaultPalette()))
	require.Len(t, sc.Paths, 2)
	segs := sc.Paths[0].Segments
	require.Len(t, segs, 2)
	assert.Len(t, segs[0], 1)
	assert.Equal(t, 0, segs[0][0].Index)
	require.Len(t, segs[1], 2)
	assert.Equal(t, []int{3, 4}, []int{segs[1][0].Index, segs[1][1].Index})
}

func TestSegmentsClipToDomain(t *testing.T) {
	ds := fiveSamples(t)
	c := viewstate.NewController(ds)
	c.Zoom(1.5, 2.5)
	sc := Build(ActivitySpec(ds, c.State(), ActivityLayout(), DefaultPalette()))
	segs := sc.Paths[0].Segments
	require.Len(t, segs, 1)
	seg := segs[0]
	require.Len(t, seg, 3)
	assert.InDelta(t, 1.5, seg[0].X, 1e-9)
	assert.InDelta(t, 25, seg[0].Y, 1e-9)
	assert.InDelta(t, 2, seg[1].X, 1e-9)
	assert.InDelta(t, 2.5, seg[2].X, 1e-9)
	assert.InDelta(t, 19, seg[2].Y, 1e-9)

	x0, x1 := sc.Layout.PlotX()
	for _, p := range seg {
		assert.True(t, p.PX >= x0-1e-9 && p.PX <= x1+1e-9)
	}

	c.Zoom(1.2, 1.8)
	narrow := Build(ActivitySpec(ds, c.State(), ActivityLayout(), DefaultPalette()))
	require.Len(t, narrow.Paths[0].Segments, 1)
	assert.Len(t, narrow.Paths[0].Segments[0], 2)
}

func TestHoverSelectsNearerSample(t *testing.T) {
	ds := example(t)
	c := viewstate.NewController(ds)
	sc := Build(ActivitySpec(ds, c.State(), ActivityLayout(), DefaultPalette()))

	px := sc.X.Forward(0.4)
	h := sc.WithPointer(px).Hover
	require.NotNil(t, h)
	assert.Equal(t, 0, h.Index)
	assert.Equal(t, []string{"Hour: 0.00", "Male: 10.00", "Female: 5.00", "Lights: On"}, h.Lines)

	assert.Nil(t, sc.WithPointer(5).Hover, "pointer in the margin")
}

func TestHoverRespectsLightFilter(t *testing.T) {
	ds := example(t)
	c := viewstate.NewController(ds)
	c.ToggleLight(dataset.LightsOn) // Off only
	sc := Build(ActivitySpec(ds, c.State(), ActivityLayout(), DefaultPalette()))
	h := sc.WithPointer(sc.X.Forward(0.4)).Hover
	require.NotNil(t, h)
	assert.Equal(t, 1, h.Index)
}

func TestBrush(t *testing.T) {
	ds := fiveSamples(t)
	c := viewstate.NewController(ds)
	sc := Build(ActivitySpec(ds, c.State(), ActivityLayout(), DefaultPalette()))

	var b Brush
	b.Begin(sc.X.Forward(3))
	b.Move(sc.X.Forward(2))
	assert.NotNil(t, sc.WithBrush(&b).Brush)
	lo, hi, ok := b.End(sc.X.Forward(1), sc)
	require.True(t, ok)
	assert.InDelta(t, 1, lo, 1e-9)
	assert.InDelta(t, 3, hi, 1e-9)
	assert.False(t, b.Active())
	assert.Nil(t, sc.WithBrush(&b).Brush)

	b.Begin(200)
	_, _, ok = b.End(200.2, sc)
	assert.False(t, ok, "zero-width drag")

	_, _, ok = b.End(300, sc)
	assert.False(t, ok, "no drag in progress")
}

func TestDifferenceSceneStableAndHidden(t *testing.T) {
	ds := fiveSamples(t)
	c := viewstate.NewController(ds)
	diff := c.Difference()
	sc := Build(DifferenceSpec(diff, c.State(), DifferenceLayout(), DefaultPalette(), true))
	lo, hi := sc.Y.Domain()
	assert.Equal(t, [2]float64{-1, 18}, [2]float64{lo, hi})

	c.Zoom(0, 1)
	zoomed := Build(DifferenceSpec(diff, c.State(), DifferenceLayout(), DefaultPalette(), true))
	zlo, zhi := zoomed.Y.Domain()
	assert.Equal(t, [2]float64{lo, hi}, [2]float64{zlo, zhi})

	h := zoomed.WithPointer(zoomed.X.Forward(0.9)).Hover
	require.NotNil(t, h)
	assert.Equal(t, []string{"Hour: 1.00", "Diff: 5.00"}, h.Lines)

	hidden := Build(DifferenceSpec(diff, c.State(), DifferenceLayout(), DefaultPalette(), false))
	assert.True(t, hidden.Hidden)
	assert.Empty(t, hidden.Paths)
	assert.Nil(t, hidden.WithPointer(500).Hover)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "12", FormatHours(12))
	assert.Equal(t, "12.5", FormatHours(12.5))
	assert.Equal(t, "1,250", FormatValue(1250))
	assert.Equal(t, "15.00", FormatExact(15))
}
