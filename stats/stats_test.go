package stats

import (
	"testing"

	"github.com/andareed/siftly-activity/dataset"
	"github.com/andareed/siftly-activity/viewstate"
	"github.com/stretchr/testify/assert"
)

var example = []dataset.Record{
	{Hours: 0, MAvg: 10, FAvg: 5, Lights: dataset.LightsOn},
	{Hours: 1, MAvg: 20, FAvg: 15, Lights: dataset.LightsOff},
}

func TestComputeFullRange(t *testing.T) {
	s := Compute(example, viewstate.BothSeries())
	assert.Equal(t, "15.00", s.Male.String())
	assert.Equal(t, "10.00", s.Female.String())
	assert.Equal(t, "5.00", s.Diff.String())
	assert.Equal(t, 2, s.Count)
	assert.True(t, s.DiffChartVisible())
}

func TestComputeSingleSeries(t *testing.T) {
	maleOnly := viewstate.BothSeries().Toggle(viewstate.Female)
	s := Compute(example, maleOnly)
	assert.Equal(t, "15.00", s.Male.String())
	assert.Equal(t, NotAvailable, s.Female.String())
	assert.Equal(t, NotAvailable, s.Diff.String())
	assert.False(t, s.DiffChartVisible())
	assert.Equal(t, "male=N/A female=N/A diff=N/A (n=2)", s.String())
}

func TestComputeNothingVisible(t *testing.T) {
	none := viewstate.BothSeries().Toggle(viewstate.Male).Toggle(viewstate.Female)
	s := Compute(example, none)
	assert.False(t, s.Male.Available)
	assert.False(t, s.Female.Available)
	assert.False(t, s.Diff.Available)
	assert.False(t, s.DiffChartVisible())
}

func TestComputeEmptySubset(t *testing.T) {
	s := Compute(nil, viewstate.BothSeries())
	assert.Equal(t, NotAvailable, s.Male.String())
	assert.Equal(t, NotAvailable, s.Female.String())
	assert.Equal(t, NotAvailable, s.Diff.String())
}

func TestUnavailableIsNotZero(t *testing.T) {
	zero := Stat{Value: 0, Available: true}
	assert.Equal(t, "0.00", zero.String())
	assert.NotEqual(t, zero.String(), Stat{}.String())
}

func TestStatRounding(t *testing.T) {
	assert.Equal(t, "2.68", Stat{Value: 2.675, Available: true}.String())
	assert.Equal(t, "-1.50", Stat{Value: -1.5, Available: true}.String())
}
