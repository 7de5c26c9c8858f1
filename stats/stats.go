// Package stats computes the summary panel values for the filtered subset.
package stats

import (
	"fmt"

	"github.com/andareed/siftly-activity/dataset"
	"github.com/andareed/siftly-activity/viewstate"
	"github.com/shopspring/decimal"
)

const NotAvailable = "N/A"

// Stat is a mean that may be unavailable. Unavailable is not the same as 0.
type Stat struct {
	Value     float64
	Available bool
}

func (s Stat) String() string {
	if !s.Available {
		return NotAvailable
	}
	return decimal.NewFromFloat(s.Value).StringFixed(2)
}

type Summary struct {
	Male   Stat
	Female Stat
	Diff   Stat
	Count  int
}

// DiffChartVisible is false whenever the mean difference is unavailable; the
// difference chart is hidden in that case.
func (s Summary) DiffChartVisible() bool {
	return s.Diff.Available
}

func (s Summary) String() string {
	return fmt.Sprintf("male=%s female=%s diff=%s (n=%d)", s.Male, s.Female, s.Diff, s.Count)
}

// Compute averages the subset for the visible series.
func Compute(subset []dataset.Record, visible viewstate.SeriesSet) Summary {
	sum := Summary{Count: len(subset)}
	if len(subset) == 0 {
		return sum
	}
	var m, f, d float64
	for _, r := range subset {
		m += r.MAvg
		f += r.FAvg
		d += r.Diff()
	}
	n := float64(len(subset))
	if visible.Has(viewstate.Male) {
		sum.Male = Stat{Value: m / n, Available: true}
	}
	if visible.Has(viewstate.Female) {
		sum.Female = Stat{Value: f / n, Available: true}
	}
	if visible.Both() {
		sum.Diff = Stat{Value: d / n, Available: true}
	}
	return sum
}

// FromState is Compute over the state's filtered subset.
func FromState(s viewstate.State) Summary {
	return Compute(s.Filtered, s.Visible)
}
