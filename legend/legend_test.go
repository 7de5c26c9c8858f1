package legend

import (
	"testing"

	"github.com/andareed/siftly-activity/chart"
	"github.com/andareed/siftly-activity/dataset"
	"github.com/andareed/siftly-activity/viewstate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func controller(t *testing.T) *viewstate.Controller {
	t.Helper()
	ds, err := dataset.New([]dataset.Record{
		{Hours: 0, MAvg: 10, FAvg: 5, Lights: dataset.LightsOn},
		{Hours: 1, MAvg: 20, FAvg: 15, Lights: dataset.LightsOff},
	})
	require.NoError(t, err)
	return viewstate.NewController(ds)
}

func TestEntriesReflectState(t *testing.T) {
	c := controller(t)
	pal := chart.DefaultPalette()

	series := SeriesEntries(c.State(), pal)
	require.Len(t, series, 2)
	assert.Equal(t, "series-legend/male", series[0].ID)
	assert.Equal(t, pal.Male, series[0].Color)
	assert.True(t, series[0].Enabled && series[1].Enabled)

	lights := LightEntries(c.State())
	require.Len(t, lights, 2)
	assert.Equal(t, "light-legend/on", lights[0].ID)
	assert.Equal(t, "light-legend/off", lights[1].ID)

	c.ToggleSeries(viewstate.Female)
	c.ToggleLight(dataset.LightsOff)
	series = SeriesEntries(c.State(), pal)
	lights = LightEntries(c.State())
	assert.True(t, series[0].Enabled)
	assert.False(t, series[1].Enabled)
	assert.True(t, lights[0].Enabled)
	assert.False(t, lights[1].Enabled)
}

func TestDispatch(t *testing.T) {
	c := controller(t)
	pal := chart.DefaultPalette()

	require.True(t, Dispatch(c, pal, "series-legend/male"))
	assert.False(t, c.State().Visible.Has(viewstate.Male))

	require.True(t, Dispatch(c, pal, "light-legend/on"))
	assert.Equal(t, viewstate.FilterOff, c.State().Filter)
	require.True(t, Dispatch(c, pal, "light-legend/off"))
	assert.Equal(t, viewstate.FilterNothing, c.State().Filter)

	assert.False(t, Dispatch(c, pal, "reset"))
}
