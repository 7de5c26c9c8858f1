package viewstate

import (
	"math"

	"github.com/andareed/siftly-activity/dataset"
	"github.com/andareed/siftly-activity/logging"
)

// Controller owns the one State instance. Every mutation goes through a
// controller method which re-derives the filtered subset and then notifies
// subscribers, all before returning.
type Controller struct {
	ds        *dataset.Dataset
	diff      []dataset.DifferenceRecord
	full      [2]float64
	state     State
	listeners []func(State)
}

func NewController(ds *dataset.Dataset) *Controller {
	c := &Controller{
		ds:   ds,
		diff: dataset.BuildDifference(ds),
		full: [2]float64{0, ds.MaxHours()},
	}
	c.state = defaultState(c.full)
	c.refilter()
	return c
}

func (c *Controller) Dataset() *dataset.Dataset               { return c.ds }
func (c *Controller) Difference() []dataset.DifferenceRecord { return c.diff }
func (c *Controller) FullDomain() [2]float64                  { return c.full }
func (c *Controller) State() State                            { return c.state }

// Subscribe registers fn to run after every state change.
func (c *Controller) Subscribe(fn func(State)) {
	c.listeners = append(c.listeners, fn)
}

// Eligible reports whether sample i passes the light filter.
func (c *Controller) Eligible(i int) bool {
	if i < 0 || i >= c.ds.Len() {
		return false
	}
	return c.state.Filter.Allows(c.ds.At(i).Lights)
}

// Zoom installs [a, b] as the time domain. Endpoints may come in either
// order and are clamped to the full range. A zero-width window is ignored and
// reported as false.
func (c *Controller) Zoom(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	lo, hi := math.Min(a, b), math.Max(a, b)
	lo = math.Max(lo, c.full[0])
	hi = math.Min(hi, c.full[1])
	if hi <= lo {
		logging.Debugf("viewstate: ignoring degenerate zoom [%g, %g]", a, b)
		return false
	}
	c.state.TimeDomain = [2]float64{lo, hi}
	c.commit("zoom")
	return true
}

// Pan shifts the window by delta hours keeping its width, stopping at the
// full-range edges.
func (c *Controller) Pan(delta float64) bool {
	lo, hi := c.state.TimeDomain[0], c.state.TimeDomain[1]
	width := hi - lo
	if width >= c.full[1]-c.full[0] || delta == 0 {
		return false
	}
	lo += delta
	hi += delta
	if lo < c.full[0] {
		lo, hi = c.full[0], c.full[0]+width
	}
	if hi > c.full[1] {
		lo, hi = c.full[1]-width, c.full[1]
	}
	if lo == c.state.TimeDomain[0] {
		return false
	}
	return c.Zoom(lo, hi)
}

// ScaleWindow multiplies the window width by factor around center.
func (c *Controller) ScaleWindow(factor, center float64) bool {
	if factor <= 0 {
		return false
	}
	lo, hi := c.state.TimeDomain[0], c.state.TimeDomain[1]
	if center < lo || center > hi {
		center = (lo + hi) / 2
	}
	newLo := center - (center-lo)*factor
	newHi := center + (hi-center)*factor
	return c.Zoom(newLo, newHi)
}

// ResetZoom restores the full time domain and leaves the filters alone.
func (c *Controller) ResetZoom() {
	c.state.TimeDomain = c.full
	c.commit("reset-zoom")
}

// Reset restores every default: full domain, both series, no light filter.
func (c *Controller) Reset() {
	c.state = defaultState(c.full)
	c.commit("reset")
}

func (c *Controller) ToggleSeries(s Series) {
	c.state.Visible = c.state.Visible.Toggle(s)
	c.commit("toggle-series")
}

func (c *Controller) ToggleLight(l dataset.Lights) {
	switch l {
	case dataset.LightsOn:
		c.state.LightsOn = !c.state.LightsOn
	case dataset.LightsOff:
		c.state.LightsOff = !c.state.LightsOff
	}
	c.state.Filter = FilterFromToggles(c.state.LightsOn, c.state.LightsOff)
	c.commit("toggle-light")
}

func (c *Controller) commit(reason string) {
	c.refilter()
	logging.Debugf("viewstate: %s domain=[%g, %g] series=%s filter=%s filtered=%d",
		reason, c.state.TimeDomain[0], c.state.TimeDomain[1],
		c.state.Visible, c.state.Filter, len(c.state.Filtered))
	for _, fn := range c.listeners {
		fn(c.state)
	}
}

func (c *Controller) refilter() {
	lo, hi := c.state.TimeDomain[0], c.state.TimeDomain[1]
	filtered := make([]dataset.Record, 0, c.ds.Len())
	if c.state.Filter != FilterNothing {
		for i := 0; i < c.ds.Len(); i++ {
			r := c.ds.At(i)
			if r.Hours < lo || r.Hours > hi {
				continue
			}
			if !c.state.Filter.Allows(r.Lights) {
				continue
			}
			filtered = append(filtered, r)
		}
	}
	c.state.Filtered = filtered
}
