package wellness

import (
	"errors"
	"fmt"
	"strings"
)

// Metric names one tracked dimension.
type Metric string

const (
	Mood   Metric = "mood"
	Sleep  Metric = "sleep"
	Stress Metric = "stress"
)

// ErrUnknownMetric is returned by ParseMetric for names outside Metrics.
var ErrUnknownMetric = errors.New("unknown metric")

// Metrics lists every dimension in display order.
var Metrics = []Metric{Mood, Sleep, Stress}

// ParseMetric resolves a metric name, case-insensitively.
func ParseMetric(s string) (Metric, error) {
	switch Metric(strings.ToLower(strings.TrimSpace(s))) {
	case Mood:
		return Mood, nil
	case Sleep:
		return Sleep, nil
	case Stress:
		return Stress, nil
	}
	return "", fmt.Errorf("%w: %q (want mood, sleep or stress)", ErrUnknownMetric, s)
}

// Title is the human name of the dimension as shown on charts.
func (m Metric) Title() string {
	switch m {
	case Mood:
		return "Mood"
	case Sleep:
		return "Sleep (hours)"
	case Stress:
		return "Stress"
	}
	return string(m)
}

// Range is the fixed axis range of the dimension.
func (m Metric) Range() (lo, hi float64) {
	if m == Sleep {
		return MinSleep, MaxSleep
	}
	return 1, 10
}

// Next cycles through Metrics, wrapping around.
func (m Metric) Next() Metric {
	for i, x := range Metrics {
		if x == m {
			return Metrics[(i+1)%len(Metrics)]
		}
	}
	return Mood
}

// Prev cycles backwards through Metrics.
func (m Metric) Prev() Metric {
	for i, x := range Metrics {
		if x == m {
			return Metrics[(i+len(Metrics)-1)%len(Metrics)]
		}
	}
	return Mood
}
