package main

import (
	"strconv"
	"strings"
)

const hourInputWidth = 10

func parseHourInput(raw string) (float64, bool) {
	raw = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "h"))
	if raw == "" {
		return 0, false
	}
	h, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return h, true
}

func clampHourToBounds(h, min, max float64) float64 {
	if h < min {
		return min
	}
	if h > max {
		return max
	}
	return h
}

func defaultWindowBounds(full [2]float64) (float64, float64) {
	return full[0], full[1]
}
