package main

import (
	"time"

	"github.com/andareed/siftly-activity/chart"
)

type mode int

const (
	modeView mode = iota
	modeCommand
	modeZoomWindow
)

// pointer is where the mouse last hovered over a plot, in surface units.
type pointer struct {
	id     string
	px     float64
	active bool
}

// sampleCursor is the keyboard equivalent of hovering: a pinned sample on
// the activity chart.
type sampleCursor struct {
	index  int
	active bool
}

type click struct {
	id  string
	col int
	at  time.Time
}

type uiState struct {
	mode       mode
	command    CommandInput
	noticeMsg  string
	noticeType string
	noticeSeq  int

	pointer   pointer
	cursor    sampleCursor
	brush     chart.Brush
	brushID   string
	lastClick click

	plots      map[string]plotGeom
	zoomWindow zoomWindowUI
	anim       domainAnimation
}
