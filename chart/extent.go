package chart

import (
	"github.com/andareed/siftly-activity/dataset"
	"github.com/andareed/siftly-activity/scale"
	"github.com/andareed/siftly-activity/viewstate"
)

// ActivityExtent is the vertical extent over the visible series of the full
// dataset. Zoom and light filter do not change it, so the y-axis stays put
// while brushing.
func ActivityExtent(ds *dataset.Dataset, visible viewstate.SeriesSet) (lo, hi float64, ok bool) {
	var cols [][]float64
	if visible.Has(viewstate.Male) {
		cols = append(cols, column(ds, func(r dataset.Record) float64 { return r.MAvg }))
	}
	if visible.Has(viewstate.Female) {
		cols = append(cols, column(ds, func(r dataset.Record) float64 { return r.FAvg }))
	}
	return scale.Extent(cols...)
}

// DifferenceExtent covers the whole difference series.
func DifferenceExtent(diff []dataset.DifferenceRecord) (lo, hi float64, ok bool) {
	vals := make([]float64, len(diff))
	for i, d := range diff {
		vals[i] = d.Diff
	}
	return scale.Extent(vals)
}

func column(ds *dataset.Dataset, get func(dataset.Record) float64) []float64 {
	recs := ds.Records()
	out := make([]float64, len(recs))
	for i, r := range recs {
		out[i] = get(r)
	}
	return out
}
