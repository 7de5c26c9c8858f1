package main

import (
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	timeWindowFocusStart = iota
	timeWindowFocusEnd
	timeWindowFocusScrubber
)

const (
	timeWindowDrawerContentHeight = 5
	timeWindowDrawerHeight        = timeWindowDrawerContentHeight + 2
	// steps are fractions of the full range
	timeWindowStepMin     = 1.0 / 64
	timeWindowStepDefault = 1.0 / 16
	timeWindowStepMax     = 1.0 / 2
)

// zoomWindowUI is the drawer for typing a zoom window in hours. Edits stay
// in the draft until applied.
type zoomWindowUI struct {
	open       bool
	focus      int
	startInput textinput.Model
	endInput   textinput.Model
	errorMsg   string
	draftStart float64
	draftEnd   float64
	step       float64
}

func initTimeWindowInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "hours"
	ti.CharLimit = hourInputWidth
	ti.Width = hourInputWidth
	ti.Prompt = ""
	return ti
}

func newZoomWindowUI() zoomWindowUI {
	return zoomWindowUI{
		startInput: initTimeWindowInput(),
		endInput:   initTimeWindowInput(),
		step:       timeWindowStepDefault,
	}
}
