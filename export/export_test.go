package export

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	viewchart "github.com/andareed/siftly-activity/chart"
	"github.com/andareed/siftly-activity/dataset"
	"github.com/andareed/siftly-activity/stats"
	"github.com/andareed/siftly-activity/viewstate"
)

func sampleController(t *testing.T) *viewstate.Controller {
	t.Helper()
	ds, err := dataset.New([]dataset.Record{
		{Hours: 0, MAvg: 10, FAvg: 5, Lights: dataset.LightsOn},
		{Hours: 1, MAvg: 20, FAvg: 15, Lights: dataset.LightsOff},
		{Hours: 2, MAvg: 30, FAvg: 12, Lights: dataset.LightsOff},
		{Hours: 3, MAvg: 8, FAvg: 9, Lights: dataset.LightsOn},
	})
	require.NoError(t, err)
	return viewstate.NewController(ds)
}

func viewOf(c *viewstate.Controller) View {
	st := c.State()
	pal := viewchart.DefaultPalette()
	sum := stats.FromState(st)
	return View{
		Activity:   viewchart.Build(viewchart.ActivitySpec(c.Dataset(), st, viewchart.ActivityLayout(), pal)),
		Difference: viewchart.Build(viewchart.DifferenceSpec(c.Difference(), st, viewchart.DifferenceLayout(), pal, sum.DiffChartVisible())),
		Subset:     st.Filtered,
		Summary:    sum,
	}
}

func TestSceneSVGAndPNG(t *testing.T) {
	v := viewOf(sampleController(t))

	var svg bytes.Buffer
	require.NoError(t, Scene(&svg, v.Activity, SVG))
	assert.Contains(t, svg.String(), "<svg")

	var png bytes.Buffer
	require.NoError(t, Scene(&png, v.Activity, PNG))
	assert.True(t, bytes.HasPrefix(png.Bytes(), []byte("\x89PNG")))
}

// Run with -race: the first renders of a process share go-chart's lazily
// loaded default font.
func TestSceneConcurrentRenders(t *testing.T) {
	v := viewOf(sampleController(t))

	start := make(chan struct{})
	var g errgroup.Group
	for i := 0; i < 16; i++ {
		f := SVG
		if i%2 == 1 {
			f = PNG
		}
		g.Go(func() error {
			<-start
			return Scene(io.Discard, v.Activity, f)
		})
	}
	close(start)
	require.NoError(t, g.Wait())
}

func TestSceneWithGapsRenders(t *testing.T) {
	c := sampleController(t)
	c.ToggleLight(dataset.LightsOff)
	v := viewOf(c)
	require.Len(t, v.Activity.Paths[0].Segments, 2)

	var svg bytes.Buffer
	require.NoError(t, Scene(&svg, v.Activity, SVG))
}

func TestSceneNothingToDraw(t *testing.T) {
	c := sampleController(t)
	c.ToggleSeries(viewstate.Male)
	v := viewOf(c)
	require.True(t, v.Difference.Hidden)

	err := Scene(&bytes.Buffer{}, v.Difference, SVG)
	assert.ErrorIs(t, err, ErrNothingToDraw)

	c.ToggleSeries(viewstate.Female)
	v = viewOf(c)
	require.True(t, v.Activity.Empty)
	assert.ErrorIs(t, Scene(&bytes.Buffer{}, v.Activity, PNG), ErrNothingToDraw)
}

func TestCSV(t *testing.T) {
	c := sampleController(t)
	c.ToggleLight(dataset.LightsOff)

	var buf bytes.Buffer
	require.NoError(t, CSV(&buf, c.State().Filtered))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, []string{
		"Hours,Male,Female,Difference,Lights",
		"0,10,5,5,On",
		"3,8,9,-1,On",
	}, lines)
}

func TestXLSX(t *testing.T) {
	c := sampleController(t)
	st := c.State()

	var buf bytes.Buffer
	require.NoError(t, XLSX(&buf, st.Filtered, stats.FromState(st)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(dataSheet)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, tableHeader, rows[0])
	assert.Equal(t, []string{"1", "20", "15", "5", "Off"}, rows[2])

	summary, err := f.GetRows(statsSheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"Average male activity", "17.00"}, summary[1])
	assert.Equal(t, []string{"Samples", "4"}, summary[4])
}

func TestBundle(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	paths, err := Bundle(context.Background(), dir, viewOf(sampleController(t)))
	require.NoError(t, err)

	var names []string
	for _, p := range paths {
		names = append(names, filepath.Base(p))
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
	assert.Equal(t, []string{ActivityPNG, ActivitySVG, DifferenceSVG, FilteredCSV, FilteredXLSX}, names)
}

func TestBundleSkipsHiddenDifference(t *testing.T) {
	c := sampleController(t)
	c.ToggleSeries(viewstate.Female)

	paths, err := Bundle(context.Background(), t.TempDir(), viewOf(c))
	require.NoError(t, err)
	for _, p := range paths {
		assert.NotEqual(t, DifferenceSVG, filepath.Base(p))
	}
	assert.Len(t, paths, 4)
}
