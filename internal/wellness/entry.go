package wellness

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format stored on every entry.
const DateLayout = "2006-01-02"

// Control ranges of the entry form.
const (
	MinMood   = 1
	MaxMood   = 10
	MinSleep  = 0.0
	MaxSleep  = 12.0
	MinStress = 1
	MaxStress = 10
)

// Defaults for a fresh draft.
const (
	DefaultMood   = 5
	DefaultSleep  = 7.0
	DefaultStress = 5
)

// Entry is one self-reported wellness sample.
type Entry struct {
	ID     string  `json:"id" yaml:"id"`
	Date   string  `json:"date" yaml:"date"`
	Mood   int     `json:"mood" yaml:"mood"`
	Sleep  float64 `json:"sleep" yaml:"sleep"`
	Stress int     `json:"stress" yaml:"stress"`
	Notes  string  `json:"notes" yaml:"notes"`
}

// NewDraft returns an uncommitted entry carrying the form defaults for the day of now.
func NewDraft(now time.Time) Entry {
	return Entry{
		Date:   now.Format(DateLayout),
		Mood:   DefaultMood,
		Sleep:  DefaultSleep,
		Stress: DefaultStress,
	}
}

// Value returns the entry's reading for m.
func (e Entry) Value(m Metric) float64 {
	switch m {
	case Mood:
		return float64(e.Mood)
	case Sleep:
		return e.Sleep
	case Stress:
		return float64(e.Stress)
	}
	return 0
}

// Day parses the entry date. Dates that do not follow DateLayout return an error.
func (e Entry) Day(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DateLayout, strings.TrimSpace(e.Date), loc)
}

func (e Entry) String() string {
	return fmt.Sprintf("%s mood=%d sleep=%g stress=%d", e.Date, e.Mood, e.Sleep, e.Stress)
}
