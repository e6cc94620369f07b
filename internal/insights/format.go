package insights

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// amount renders a whole-unit figure with digit grouping.
func amount(v float64) string {
	return printer.Sprintf("%.0f", v)
}

func month(t time.Time) string {
	return t.Format("January 2006")
}
