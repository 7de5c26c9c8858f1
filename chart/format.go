package chart

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatHours renders an hour value for axes and tooltips.
func FormatHours(v float64) string {
	if v == float64(int64(v)) {
		return printer.Sprintf("%d", int64(v))
	}
	return printer.Sprintf("%.1f", v)
}

// FormatValue renders an activity value with digit grouping.
func FormatValue(v float64) string {
	if v == float64(int64(v)) {
		return printer.Sprintf("%d", int64(v))
	}
	return printer.Sprintf("%.1f", v)
}

// FormatExact is used in tooltips where two decimals are shown.
func FormatExact(v float64) string {
	return printer.Sprintf("%.2f", v)
}
