// Package legend builds the clickable legend entries and routes clicks on
// them back into the view state controller.
package legend

import (
	"strings"

	"github.com/andareed/siftly-activity/chart"
	"github.com/andareed/siftly-activity/dataset"
	"github.com/andareed/siftly-activity/viewstate"
)

type Kind int

const (
	KindSeries Kind = iota
	KindLight
)

// Entry is one legend item. ID is stable and doubles as the hit-zone id.
type Entry struct {
	ID      string
	Kind    Kind
	Label   string
	Color   string
	Enabled bool

	series viewstate.Series
	light  dataset.Lights
}

func entryID(group, name string) string {
	return group + "/" + strings.ToLower(name)
}

// SeriesEntries has one entry per series, enabled when the series is drawn.
func SeriesEntries(st viewstate.State, pal chart.Palette) []Entry {
	colors := map[viewstate.Series]string{viewstate.Male: pal.Male, viewstate.Female: pal.Female}
	out := make([]Entry, 0, len(viewstate.AllSeries))
	for _, s := range viewstate.AllSeries {
		out = append(out, Entry{
			ID:      entryID(chart.SeriesLegendID, s.String()),
			Kind:    KindSeries,
			Label:   s.String(),
			Color:   colors[s],
			Enabled: st.Visible.Has(s),
			series:  s,
		})
	}
	return out
}

// LightEntries has one entry per lighting state.
func LightEntries(st viewstate.State) []Entry {
	return []Entry{
		{
			ID:      entryID(chart.LightLegendID, dataset.LightsOn.String()),
			Kind:    KindLight,
			Label:   "Lights " + dataset.LightsOn.String(),
			Color:   "#f2d16b",
			Enabled: st.LightsOn,
			light:   dataset.LightsOn,
		},
		{
			ID:      entryID(chart.LightLegendID, dataset.LightsOff.String()),
			Kind:    KindLight,
			Label:   "Lights " + dataset.LightsOff.String(),
			Color:   "#6b6f8a",
			Enabled: st.LightsOff,
			light:   dataset.LightsOff,
		},
	}
}

// Toggle applies the click on e to c.
func (e Entry) Toggle(c *viewstate.Controller) {
	switch e.Kind {
	case KindSeries:
		c.ToggleSeries(e.series)
	case KindLight:
		c.ToggleLight(e.light)
	}
}

// Dispatch finds the entry with id and toggles it. It reports whether id
// belonged to a legend entry.
func Dispatch(c *viewstate.Controller, pal chart.Palette, id string) bool {
	st := c.State()
	all := append(SeriesEntries(st, pal), LightEntries(st)...)
	for _, e := range all {
		if e.ID == id {
			e.Toggle(c)
			return true
		}
	}
	return false
}
