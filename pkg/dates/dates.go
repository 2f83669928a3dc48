// Package dates renders calendar dates in the site's display format
// (ui.dateFormat).
package dates

import (
	"time"

	"github.com/mcucsya/portal/pkg/validator"
)

// Display layouts accepted by Format.
const (
	DayMonthYear = "DD/MM/YYYY"
	MonthDayYear = "MM/DD/YYYY"
	ISO          = "YYYY-MM-DD"
)

// InvalidDate is rendered for values that do not parse.
const InvalidDate = "Invalid Date"

var layouts = map[string]string{
	DayMonthYear: "02/01/2006",
	MonthDayYear: "01/02/2006",
	ISO:          time.DateOnly,
}

// Format renders t in one of the display layouts.
// Unknown layouts fall back to "2 Jan 2006".
func Format(t time.Time, layout string) string {
	if l, ok := layouts[layout]; ok {
		return t.Format(l)
	}
	return t.Format("2 Jan 2006")
}

// FormatString parses value with validator.ParseDate and formats it.
func FormatString(value, layout string) string {
	t, err := validator.ParseDate(value)
	if err != nil {
		return InvalidDate
	}
	return Format(t, layout)
}
