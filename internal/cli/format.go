// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatAmount rounds to whole units and groups digits, e.g. 1234567.8 -> "1,234,568".
func FormatAmount(v float64) string {
	v = math.Round(v)
	if v == 0 {
		// avoid "-0"
		v = 0
	}
	return printer.Sprintf("%.0f", v)
}

// FormatCompact shortens large amounts: 1234567 -> "1.2M".
func FormatCompact(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000_000:
		return printer.Sprintf("%.1fB", v/1_000_000_000)
	case abs >= 1_000_000:
		return printer.Sprintf("%.1fM", v/1_000_000)
	case abs >= 10_000:
		return printer.Sprintf("%.1fK", v/1_000)
	default:
		return FormatAmount(v)
	}
}
