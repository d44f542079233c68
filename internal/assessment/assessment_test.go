package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizWalkthrough(t *testing.T) {
	q := New()
	q.Previous()
	assert.Equal(t, 0, q.Current())
	assert.False(t, q.Answered())

	for i := 0; i < len(Questions); i++ {
		require.NoError(t, q.Select(2))
		q.Next()
	}
	assert.True(t, q.Completed())
	assert.Equal(t, 10, q.Score())
	assert.Equal(t, Moderate, Evaluate(q.Score()).Severity)
}

func TestQuizPreviousKeepsAnswers(t *testing.T) {
	q := New()
	require.NoError(t, q.Select(3))
	q.Next()
	require.NoError(t, q.Select(1))
	q.Previous()
	assert.Equal(t, 3, q.Answer(0))
	require.NoError(t, q.Select(0))
	assert.Equal(t, 1, q.Score())
}

func TestQuizRejectsUnknownOption(t *testing.T) {
	q := New()
	assert.ErrorIs(t, q.Select(4), ErrInvalidOption)
	assert.ErrorIs(t, q.Select(-1), ErrInvalidOption)
	assert.Equal(t, Unanswered, q.Answer(0))
}

func TestQuizReset(t *testing.T) {
	q := New()
	for range Questions {
		require.NoError(t, q.Select(3))
		q.Next()
	}
	require.True(t, q.Completed())
	q.Reset()
	assert.False(t, q.Completed())
	assert.Equal(t, 0, q.Score())
	assert.Equal(t, []int{-1, -1, -1, -1, -1}, q.Answers())
}

func TestUnansweredCountsAsZero(t *testing.T) {
	assert.Equal(t, 5, Score([]int{Unanswered, 2, Unanswered, 3, Unanswered}))
}

func TestSeverityBands(t *testing.T) {
	tests := map[int]Severity{0: Minimal, 4: Minimal, 5: Mild, 9: Mild, 10: Moderate, 14: Moderate, 15: Severe}
	for score, want := range tests {
		assert.Equal(t, want, SeverityOf(score), "score %d", score)
	}
}

func TestEvaluateSuggestions(t *testing.T) {
	assert.Empty(t, Evaluate(4).Suggestions)
	assert.Equal(t, "You're doing well!", Evaluate(4).Heading)
	assert.Len(t, Evaluate(5).Suggestions, 2)
	assert.Len(t, Evaluate(10).Suggestions, 3)
	assert.Len(t, Evaluate(15).Suggestions, 4)
	assert.InDelta(t, 60.0, Evaluate(9).Percent(), 1e-9)
}
