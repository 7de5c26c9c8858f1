package main

import (
	"github.com/andareed/siftly-activity/chart"
	"github.com/andareed/siftly-activity/config"
	"github.com/andareed/siftly-activity/stats"
	"github.com/andareed/siftly-activity/viewstate"
)

// dataState owns the view state controller and everything derived from it.
// Scenes are rebuilt on every state change; nothing here is edited in place.
type dataState struct {
	source string
	ctrl   *viewstate.Controller

	activityLayout   chart.Layout
	differenceLayout chart.Layout
	palette          chart.Palette

	summary    stats.Summary
	activity   chart.Scene
	difference chart.Scene
}

func newDataState(source string, ctrl *viewstate.Controller, cfg config.Config) dataState {
	return dataState{
		source:           source,
		ctrl:             ctrl,
		activityLayout:   cfg.Activity.Layout(),
		differenceLayout: cfg.Difference.Layout(),
		palette:          cfg.Palette(),
	}
}

// rebuild lays out both charts for the state, drawn over domain. domain is
// the state's own domain except while a zoom animation runs.
func (d *dataState) rebuild(st viewstate.State, domain [2]float64) {
	d.summary = stats.FromState(st)

	drawn := st
	drawn.TimeDomain = domain
	ds := d.ctrl.Dataset()
	d.activity = chart.Build(chart.ActivitySpec(ds, drawn, d.activityLayout, d.palette))
	d.difference = chart.Build(chart.DifferenceSpec(d.ctrl.Difference(), drawn, d.differenceLayout, d.palette, d.summary.DiffChartVisible()))
}

func (d *dataState) scene(id string) (chart.Scene, bool) {
	switch id {
	case chart.ActivityID:
		return d.activity, true
	case chart.DifferenceID:
		return d.difference, true
	}
	return chart.Scene{}, false
}
