// Package format renders amounts and dates the way the dashboard displays them.
package format

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DateLayout is the display layout for dates, e.g. "15 Jun 2023".
const DateLayout = "2 Jan 2006"

var indianEnglish = language.MustParse("en-IN")

// Rupees formats an amount with the rupee sign and Indian digit grouping:
// 100000 -> "₹1,00,000", 1234.5 -> "₹1,234.5".
func Rupees(amount float64) string {
	p := message.NewPrinter(indianEnglish)
	return "₹" + p.Sprint(number.Decimal(amount, number.MaxFractionDigits(2)))
}

// Date formats t for display, or returns "" for the zero time.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// Month returns the short month label used on chart axes, e.g. "Jun".
func Month(t time.Time) string {
	return t.Format("Jan")
}
