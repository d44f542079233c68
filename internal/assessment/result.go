package assessment

// Severity bands of the total score.
type Severity string

const (
	Minimal  Severity = "Minimal"
	Mild     Severity = "Mild"
	Moderate Severity = "Moderate"
	Severe   Severity = "Severe"
)

func SeverityOf(score int) Severity {
	switch {
	case score <= 4:
		return Minimal
	case score <= 9:
		return Mild
	case score <= 14:
		return Moderate
	default:
		return Severe
	}
}

// Result is the outcome shown after the last question.
type Result struct {
	Score       int
	Max         int
	Severity    Severity
	Message     string
	Heading     string
	Suggestions []string
}

// Percent is the score as a share of MaxScore.
func (r Result) Percent() float64 {
	return float64(r.Score) / float64(r.Max) * 100
}

func Evaluate(score int) Result {
	r := Result{Score: score, Max: MaxScore, Severity: SeverityOf(score)}
	switch r.Severity {
	case Minimal:
		r.Message = "Your responses suggest minimal symptoms of depression."
	case Mild:
		r.Message = "Your responses suggest mild symptoms of depression. Consider self-care strategies and monitoring your mood."
	case Moderate:
		r.Message = "Your responses suggest moderate symptoms of depression. Consider reaching out to a mental health professional."
	default:
		r.Message = "Your responses suggest severe symptoms of depression. We strongly recommend seeking help from a mental health professional."
	}

	if score <= 4 {
		r.Heading = "You're doing well!"
		return r
	}
	r.Heading = "Consider these suggestions"
	r.Suggestions = append(r.Suggestions,
		"Practice self-care: regular exercise, healthy eating, and sufficient sleep.",
		"Connect with supportive friends or family members.",
	)
	if score > 9 {
		r.Suggestions = append(r.Suggestions, "Consider reaching out to a mental health professional for support.")
	}
	if score > 14 {
		r.Suggestions = append(r.Suggestions, "We strongly recommend seeking professional help as soon as possible.")
	}
	return r
}
