// Package datetime provides the calendar arithmetic behind the Cost Explorer
// query windows.
package datetime

import (
	"time"

	"github.com/iwvelando/cost-forecast/pkg/constants"
)

const (
	// DateLayout is the format Cost Explorer expects for time periods.
	DateLayout = constants.DateLayout
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// Format renders t as a Cost Explorer date.
func Format(t time.Time) string {
	return t.Format(DateLayout)
}

// ISOWeekday returns the ISO-8601 weekday of t, Monday=1 through Sunday=7.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// Midnight truncates t to the start of its day.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// FirstOfMonth returns the first day of the month containing t.
func FirstOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// FirstOfNextMonth returns the first day of the calendar month after t.
func FirstOfNextMonth(t time.Time) time.Time {
	return FirstOfMonth(t).AddDate(0, 1, 0)
}

// ForecastStart returns the first day a forecast may start from. It is
// tomorrow, except on Friday, Saturday and Sunday where Cost Explorer returns
// unreliable forecasts; those move to the following Monday.
func ForecastStart(now time.Time) time.Time {
	today := Midnight(now)
	wd := ISOWeekday(today)
	if wd >= 5 {
		return today.AddDate(0, 0, 7-wd+1)
	}
	return today.AddDate(0, 0, 1)
}

// MonthToDate returns the first of the month containing now and today.
func MonthToDate(now time.Time) (time.Time, time.Time) {
	return FirstOfMonth(now), Midnight(now)
}

// PriorMonth returns the first and last day of the month before now.
func PriorMonth(now time.Time) (time.Time, time.Time) {
	first := FirstOfMonth(now)
	return first.AddDate(0, -1, 0), first.AddDate(0, 0, -1)
}
