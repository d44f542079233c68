// Package assessment scores the five-question wellbeing screener.
package assessment

import "errors"

// Unanswered marks a question without a selected option.
const Unanswered = -1

// MaxScore is the highest achievable score.
const MaxScore = 15

var ErrInvalidOption = errors.New("option out of range")

type Option struct {
	Value int
	Label string
}

type Question struct {
	ID      int
	Text    string
	Options []Option
}

var frequency = []Option{
	{0, "Not at all"},
	{1, "Several days"},
	{2, "More than half the days"},
	{3, "Nearly every day"},
}

// Questions is the fixed screener.
var Questions = []Question{
	{1, "Over the last 2 weeks, how often have you felt little interest or pleasure in doing things?", frequency},
	{2, "Over the last 2 weeks, how often have you felt down, depressed, or hopeless?", frequency},
	{3, "Over the last 2 weeks, how often have you had trouble falling or staying asleep, or sleeping too much?", frequency},
	{4, "Over the last 2 weeks, how often have you felt tired or had little energy?", frequency},
	{5, "Over the last 2 weeks, how often have you had poor appetite or overeaten?", frequency},
}

// Quiz walks through Questions one at a time.
type Quiz struct {
	current   int
	answers   []int
	completed bool
}

func New() *Quiz {
	q := &Quiz{}
	q.Reset()
	return q
}

func (q *Quiz) Reset() {
	q.current = 0
	q.completed = false
	q.answers = make([]int, len(Questions))
	for i := range q.answers {
		q.answers[i] = Unanswered
	}
}

func (q *Quiz) Current() int         { return q.current }
func (q *Quiz) Question() Question   { return Questions[q.current] }
func (q *Quiz) Completed() bool      { return q.completed }
func (q *Quiz) Answer(i int) int     { return q.answers[i] }
func (q *Quiz) Progress() (int, int) { return q.current + 1, len(Questions) }
func (q *Quiz) Answers() []int       { return append([]int(nil), q.answers...) }
func (q *Quiz) Answered() bool       { return q.answers[q.current] != Unanswered }

// Select records the answer for the current question.
func (q *Quiz) Select(value int) error {
	for _, o := range Questions[q.current].Options {
		if o.Value == value {
			q.answers[q.current] = value
			return nil
		}
	}
	return ErrInvalidOption
}

// Next advances, completing the quiz after the last question.
func (q *Quiz) Next() {
	if q.current < len(Questions)-1 {
		q.current++
		return
	}
	q.completed = true
}

// Previous steps back; it is a no-op on the first question.
func (q *Quiz) Previous() {
	if q.current > 0 {
		q.current--
	}
}

// Score sums the answers, counting unanswered questions as zero.
func (q *Quiz) Score() int {
	return Score(q.answers)
}

func Score(answers []int) int {
	sum := 0
	for _, a := range answers {
		if a != Unanswered {
			sum += a
		}
	}
	return sum
}
