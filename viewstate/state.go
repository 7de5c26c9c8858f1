// Package viewstate holds the single source of truth for what the charts show.
package viewstate

import (
	"strings"

	"github.com/andareed/siftly-activity/dataset"
)

type Series int

const (
	Male Series = iota
	Female
)

var AllSeries = []Series{Male, Female}

func (s Series) String() string {
	switch s {
	case Male:
		return "Male"
	case Female:
		return "Female"
	default:
		return "Unknown"
	}
}

// SeriesSet is the set of drawn series.
type SeriesSet struct {
	male   bool
	female bool
}

func BothSeries() SeriesSet {
	return SeriesSet{male: true, female: true}
}

func (s SeriesSet) Has(series Series) bool {
	switch series {
	case Male:
		return s.male
	case Female:
		return s.female
	}
	return false
}

func (s SeriesSet) Toggle(series Series) SeriesSet {
	switch series {
	case Male:
		s.male = !s.male
	case Female:
		s.female = !s.female
	}
	return s
}

func (s SeriesSet) Empty() bool { return !s.male && !s.female }
func (s SeriesSet) Both() bool  { return s.male && s.female }

func (s SeriesSet) String() string {
	var parts []string
	for _, series := range AllSeries {
		if s.Has(series) {
			parts = append(parts, series.String())
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// LightFilter restricts drawing and stats to lighting states.
type LightFilter int

const (
	FilterAll LightFilter = iota
	FilterOn
	FilterOff
	// FilterNothing is both light toggles disabled: nothing is shown.
	FilterNothing
)

// FilterFromToggles maps the two legend toggles onto a filter. Only the
// final toggle state matters, not the click order.
func FilterFromToggles(on, off bool) LightFilter {
	switch {
	case on && off:
		return FilterAll
	case on:
		return FilterOn
	case off:
		return FilterOff
	default:
		return FilterNothing
	}
}

func (f LightFilter) Allows(l dataset.Lights) bool {
	switch f {
	case FilterAll:
		return true
	case FilterOn:
		return l == dataset.LightsOn
	case FilterOff:
		return l == dataset.LightsOff
	default:
		return false
	}
}

func (f LightFilter) String() string {
	switch f {
	case FilterAll:
		return "all"
	case FilterOn:
		return "On"
	case FilterOff:
		return "Off"
	default:
		return "nothing"
	}
}

// State is a read-only snapshot handed to renderers.
type State struct {
	TimeDomain [2]float64
	Visible    SeriesSet
	LightsOn   bool
	LightsOff  bool
	Filter     LightFilter
	// Filtered holds records inside TimeDomain that pass Filter, in time order.
	Filtered []dataset.Record
}

// Zoomed reports whether the domain differs from full.
func (s State) Zoomed(full [2]float64) bool {
	return s.TimeDomain != full
}

// ShowsNothing is true when no line can be drawn at all.
func (s State) ShowsNothing() bool {
	return s.Visible.Empty() || s.Filter == FilterNothing
}

func defaultState(full [2]float64) State {
	return State{
		TimeDomain: full,
		Visible:    BothSeries(),
		LightsOn:   true,
		LightsOff:  true,
		Filter:     FilterAll,
	}
}
