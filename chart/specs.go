package chart

import (
	"fmt"

	"github.com/andareed/siftly-activity/dataset"
	"github.com/andareed/siftly-activity/viewstate"
)

// Palette holds hex colours for the drawn series.
type Palette struct {
	Male   string
	Female string
	Diff   string
}

func DefaultPalette() Palette {
	return Palette{Male: "#4f8fd6", Female: "#e0719c", Diff: "#8fbf5a"}
}

// ActivitySpec describes the main chart for st: one line per visible series,
// vertical extent from the full dataset.
func ActivitySpec(ds *dataset.Dataset, st viewstate.State, l Layout, pal Palette) Spec {
	spec := Spec{
		ID:      ActivityID,
		Layout:  l,
		Domain:  st.TimeDomain,
		Defined: func(i int) bool { return st.Filter.Allows(ds.At(i).Lights) },
	}
	if st.ShowsNothing() {
		// no series or no lighting state: an empty plot either way
		return spec
	}
	spec.YLo, spec.YHi, spec.HasY = ActivityExtent(ds, st.Visible)

	hours := func(i int) float64 { return ds.At(i).Hours }
	if st.Visible.Has(viewstate.Male) {
		spec.Series = append(spec.Series, Source{
			Name: viewstate.Male.String(), Color: pal.Male, Len: ds.Len(),
			X: hours, Y: func(i int) float64 { return ds.At(i).MAvg },
		})
	}
	if st.Visible.Has(viewstate.Female) {
		spec.Series = append(spec.Series, Source{
			Name: viewstate.Female.String(), Color: pal.Female, Len: ds.Len(),
			X: hours, Y: func(i int) float64 { return ds.At(i).FAvg },
		})
	}

	spec.Tooltip = func(i int) []string {
		r := ds.At(i)
		lines := []string{"Hour: " + FormatExact(r.Hours)}
		if st.Visible.Has(viewstate.Male) {
			lines = append(lines, "Male: "+FormatExact(r.MAvg))
		}
		if st.Visible.Has(viewstate.Female) {
			lines = append(lines, "Female: "+FormatExact(r.FAvg))
		}
		return append(lines, fmt.Sprintf("Lights: %s", r.Lights))
	}
	return spec
}

// DifferenceSpec describes the difference chart. Its vertical extent covers
// the whole difference series so zooming never rescales it.
func DifferenceSpec(diff []dataset.DifferenceRecord, st viewstate.State, l Layout, pal Palette, visible bool) Spec {
	spec := Spec{
		ID:      DifferenceID,
		Layout:  l,
		Domain:  st.TimeDomain,
		Hidden:  !visible,
		Defined: func(i int) bool { return st.Filter.Allows(diff[i].Lights) },
		Series: []Source{{
			Name:  "Difference",
			Color: pal.Diff,
			Len:   len(diff),
			X:     func(i int) float64 { return diff[i].Hours },
			Y:     func(i int) float64 { return diff[i].Diff },
		}},
		Tooltip: func(i int) []string {
			return []string{
				"Hour: " + FormatExact(diff[i].Hours),
				"Diff: " + FormatExact(diff[i].Diff),
			}
		},
	}
	spec.YLo, spec.YHi, spec.HasY = DifferenceExtent(diff)
	return spec
}
