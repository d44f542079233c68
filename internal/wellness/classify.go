package wellness

// MoodLabel maps a 1-10 mood reading to its band.
func MoodLabel(v float64) string {
	switch {
	case v <= 2:
		return "Very Low"
	case v <= 4:
		return "Low"
	case v <= 6:
		return "Neutral"
	case v <= 8:
		return "Good"
	default:
		return "Excellent"
	}
}

// SleepLabel maps hours slept to its band.
func SleepLabel(h float64) string {
	switch {
	case h <= 3:
		return "Very Poor"
	case h <= 5:
		return "Poor"
	case h <= 7:
		return "Fair"
	case h <= 9:
		return "Good"
	default:
		return "Excellent"
	}
}

// StressLabel maps a 1-10 stress reading to its band.
func StressLabel(v float64) string {
	switch {
	case v <= 2:
		return "Very Low"
	case v <= 4:
		return "Low"
	case v <= 6:
		return "Moderate"
	case v <= 8:
		return "High"
	default:
		return "Very High"
	}
}

// Label classifies value on the band table of m. Values are not clamped.
func Label(m Metric, value float64) string {
	switch m {
	case Mood:
		return MoodLabel(value)
	case Sleep:
		return SleepLabel(value)
	case Stress:
		return StressLabel(value)
	}
	return ""
}
