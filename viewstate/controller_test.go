package viewstate

import (
	"testing"

	"github.com/andareed/siftly-activity/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T) *dataset.Dataset {
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

func TestDefaults(t *testing.T) {
	c := NewController(fixture(t))
	s := c.State()
	assert.Equal(t, [2]float64{0, 4}, s.TimeDomain)
	assert.True(t, s.Visible.Both())
	assert.Equal(t, FilterAll, s.Filter)
	assert.Len(t, s.Filtered, 5)
	assert.False(t, s.Zoomed(c.FullDomain()))
	assert.Len(t, c.Difference(), 5)
}

func TestZoomThenResetRestoresFullDomain(t *testing.T) {
	c := NewController(fixture(t))
	require.True(t, c.Zoom(3.5, 1))
	assert.Equal(t, [2]float64{1, 3.5}, c.State().TimeDomain)
	require.True(t, c.Zoom(2, 3))
	require.True(t, c.Zoom(-10, 2.5))
	assert.Equal(t, [2]float64{0, 2.5}, c.State().TimeDomain)

	c.ResetZoom()
	assert.Equal(t, [2]float64{0, 4}, c.State().TimeDomain)

	c.Zoom(1, 2)
	c.Reset()
	assert.Equal(t, [2]float64{0, 4}, c.State().TimeDomain)
}

func TestZoomDegenerateIsNoOp(t *testing.T) {
	c := NewController(fixture(t))
	calls := 0
	c.Subscribe(func(State) { calls++ })
	assert.False(t, c.Zoom(2, 2))
	assert.False(t, c.Zoom(5, 9))
	assert.Equal(t, [2]float64{0, 4}, c.State().TimeDomain)
	assert.Zero(t, calls)
}

func TestFilteredSubsetHonoursWindowAndLights(t *testing.T) {
	c := NewController(fixture(t))
	c.ToggleLight(dataset.LightsOff)
	s := c.State()
	require.Equal(t, FilterOn, s.Filter)
	for _, r := range s.Filtered {
		assert.Equal(t, dataset.LightsOn, r.Lights)
	}
	assert.Len(t, s.Filtered, 3)

	c.Zoom(1, 2)
	assert.Empty(t, c.State().Filtered, "no On samples between hours 1 and 2")
}

func TestLightTogglesMapDirectly(t *testing.T) {
	c := NewController(fixture(t))
	c.ToggleLight(dataset.LightsOn)
	assert.Equal(t, FilterOff, c.State().Filter)
	c.ToggleLight(dataset.LightsOff)
	assert.Equal(t, FilterNothing, c.State().Filter)
	assert.Empty(t, c.State().Filtered)
	assert.True(t, c.State().ShowsNothing())

	// opposite click order lands on the same filter
	c.ToggleLight(dataset.LightsOff)
	c.ToggleLight(dataset.LightsOn)
	assert.Equal(t, FilterAll, c.State().Filter)
}

func TestSeriesToggleRoundTrip(t *testing.T) {
	c := NewController(fixture(t))
	before := c.State().Visible
	c.ToggleSeries(Male)
	assert.False(t, c.State().Visible.Has(Male))
	c.ToggleSeries(Male)
	assert.Equal(t, before, c.State().Visible)

	c.ToggleSeries(Male)
	c.ToggleSeries(Female)
	assert.True(t, c.State().Visible.Empty())
	assert.True(t, c.State().ShowsNothing())
	assert.Equal(t, "none", c.State().Visible.String())
}

func TestResetRestoresEverything(t *testing.T) {
	c := NewController(fixture(t))
	c.Zoom(1, 3)
	c.ToggleSeries(Female)
	c.ToggleLight(dataset.LightsOn)
	c.Reset()
	s := c.State()
	assert.Equal(t, [2]float64{0, 4}, s.TimeDomain)
	assert.True(t, s.Visible.Both())
	assert.Equal(t, FilterAll, s.Filter)
	assert.True(t, s.LightsOn && s.LightsOff)
	assert.Len(t, s.Filtered, 5)
}

func TestResetZoomKeepsFilters(t *testing.T) {
	c := NewController(fixture(t))
	c.ToggleSeries(Female)
	c.ToggleLight(dataset.LightsOn)
	c.Zoom(1, 3)
	c.ResetZoom()
	s := c.State()
	assert.False(t, s.Visible.Has(Female))
	assert.Equal(t, FilterOff, s.Filter)
}

func TestSubscribersSeeCommittedState(t *testing.T) {
	c := NewController(fixture(t))
	var seen []State
	c.Subscribe(func(s State) { seen = append(seen, s) })
	c.Zoom(0, 2)
	c.ToggleLight(dataset.LightsOn)
	require.Len(t, seen, 2)
	assert.Equal(t, [2]float64{0, 2}, seen[0].TimeDomain)
	assert.Len(t, seen[0].Filtered, 3)
	assert.Equal(t, FilterOff, seen[1].Filter)
	assert.Len(t, seen[1].Filtered, 2)
}

func TestPanAndScaleWindow(t *testing.T) {
	c := NewController(fixture(t))
	assert.False(t, c.Pan(1), "cannot pan the full range")

	c.Zoom(1, 2)
	assert.True(t, c.Pan(1))
	assert.Equal(t, [2]float64{2, 3}, c.State().TimeDomain)
	assert.True(t, c.Pan(10))
	assert.Equal(t, [2]float64{3, 4}, c.State().TimeDomain)
	assert.False(t, c.Pan(1))

	assert.True(t, c.ScaleWindow(0.5, 3.5))
	assert.Equal(t, [2]float64{3.25, 3.75}, c.State().TimeDomain)
	assert.True(t, c.ScaleWindow(100, 3.5))
	assert.Equal(t, [2]float64{0, 4}, c.State().TimeDomain)
}

func TestEligible(t *testing.T) {
	c := NewController(fixture(t))
	c.ToggleLight(dataset.LightsOn)
	assert.False(t, c.Eligible(0))
	assert.True(t, c.Eligible(1))
	assert.False(t, c.Eligible(-1))
	assert.False(t, c.Eligible(99))
}
