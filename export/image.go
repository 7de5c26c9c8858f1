// Package export writes the current view to files: chart images through
// go-chart and the filtered subset as CSV or XLSX.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	viewchart "github.com/andareed/siftly-activity/chart"
)

// ErrNothingToDraw is returned for a hidden scene or one with no series.
var ErrNothingToDraw = errors.New("export: nothing to draw")

var (
	fontOnce    sync.Once
	defaultFont *truetype.Font
	fontErr     error
)

// chartFont loads go-chart's default font once. Render would otherwise load
// it lazily, which races when images are rendered in parallel.
func chartFont() (*truetype.Font, error) {
	fontOnce.Do(func() {
		defaultFont, fontErr = chart.GetDefaultFont()
	})
	return defaultFont, fontErr
}

type Format int

const (
	SVG Format = iota
	PNG
)

func (f Format) Ext() string {
	if f == PNG {
		return ".png"
	}
	return ".svg"
}

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

func ticks(in []viewchart.Tick) []chart.Tick {
	out := make([]chart.Tick, 0, len(in))
	for _, t := range in {
		out = append(out, chart.Tick{Value: t.Value, Label: t.Label})
	}
	return out
}

// renderable maps a scene onto a go-chart Chart. Each unbroken segment
// becomes its own series so filter gaps stay open; the legend is built from
// one representative series per path.
func renderable(sc viewchart.Scene) (chart.Chart, error) {
	if sc.Hidden || sc.Empty {
		return chart.Chart{}, ErrNothingToDraw
	}
	font, err := chartFont()
	if err != nil {
		return chart.Chart{}, fmt.Errorf("load font: %w", err)
	}
	x0, x1 := sc.X.Domain()
	y0, y1 := sc.Y.Domain()

	var series, legendSeries []chart.Series
	for _, p := range sc.Paths {
		style := chart.Style{StrokeColor: hexColor(p.Color), StrokeWidth: 1.5}
		legendSeries = append(legendSeries, chart.ContinuousSeries{
			Name: p.Name, Style: style, XValues: []float64{x0}, YValues: []float64{y0},
		})
		for i, seg := range p.Segments {
			xs := make([]float64, len(seg))
			ys := make([]float64, len(seg))
			for j, pt := range seg {
				xs[j], ys[j] = pt.X, pt.Y
			}
			series = append(series, chart.ContinuousSeries{
				Name:    fmt.Sprintf("%s #%d", p.Name, i+1),
				Style:   style,
				XValues: xs,
				YValues: ys,
			})
		}
	}
	if len(series) == 0 {
		// every sample filtered out: keep the axes with an invisible anchor
		series = append(series, chart.ContinuousSeries{
			Style:   chart.Style{Hidden: true},
			XValues: []float64{x0, x1},
			YValues: []float64{y0, y1},
		})
	}

	l := sc.Layout
	ch := chart.Chart{
		Font:   font,
		Width:  int(l.Width),
		Height: int(l.Height),
		Background: chart.Style{Padding: chart.Box{
			Top: int(l.Margin.Top), Right: int(l.Margin.Right),
			Bottom: int(l.Margin.Bottom), Left: int(l.Margin.Left),
		}},
		XAxis: chart.XAxis{
			Name:  "Hours",
			Range: &chart.ContinuousRange{Min: x0, Max: x1},
			Ticks: ticks(sc.XTicks),
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: y0, Max: y1},
			Ticks: ticks(sc.YTicks),
		},
		Series: series,
	}
	if len(legendSeries) > 1 {
		legend := chart.Chart{Font: font, Series: legendSeries}
		ch.Elements = []chart.Renderable{chart.Legend(&legend)}
	}
	return ch, nil
}

// Scene renders sc to w in the given format.
func Scene(w io.Writer, sc viewchart.Scene, f Format) error {
	ch, err := renderable(sc)
	if err != nil {
		return err
	}
	provider := chart.SVG
	if f == PNG {
		provider = chart.PNG
	}
	if err := ch.Render(provider, w); err != nil {
		return fmt.Errorf("render %s: %w", sc.ID, err)
	}
	return nil
}
