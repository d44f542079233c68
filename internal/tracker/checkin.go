package tracker

import (
	"time"

	"github.com/ramanasai/mindtrack/internal/wellness"
)

// DaysSinceLast counts calendar days between the last submitted entry's date and
// now. It returns -1 when there are no entries or the date does not parse.
func DaysSinceLast(entries []wellness.Entry, now time.Time) int {
	if len(entries) == 0 {
		return -1
	}
	loc := now.Location()
	day, err := entries[len(entries)-1].Day(loc)
	if err != nil {
		return -1
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	days := int(today.Sub(day).Hours()/24 + 0.5)
	if days < 0 {
		return 0
	}
	return days
}
