package wellness

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoodLabelBands(t *testing.T) {
	want := map[int]string{
		1: "Very Low", 2: "Very Low",
		3: "Low", 4: "Low",
		5: "Neutral", 6: "Neutral",
		7: "Good", 8: "Good",
		9: "Excellent", 10: "Excellent",
	}
	for v, label := range want {
		assert.Equal(t, label, MoodLabel(float64(v)), "mood %d", v)
	}
}

func TestSleepLabelBoundaries(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0, "Very Poor"},
		{3, "Very Poor"},
		{4, "Poor"},
		{5, "Poor"},
		{6, "Fair"},
		{7, "Fair"},
		{7.5, "Good"},
		{9, "Good"},
		{10, "Excellent"},
		{12, "Excellent"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SleepLabel(tt.hours), "sleep %g", tt.hours)
	}
}

func TestStressLabelBands(t *testing.T) {
	assert.Equal(t, "Very Low", StressLabel(2))
	assert.Equal(t, "Low", StressLabel(3))
	assert.Equal(t, "Moderate", StressLabel(5))
	assert.Equal(t, "High", StressLabel(8))
	assert.Equal(t, "Very High", StressLabel(9))
}

func TestLabelDoesNotClamp(t *testing.T) {
	assert.Equal(t, "Very Low", Label(Mood, -4))
	assert.Equal(t, "Excellent", Label(Sleep, 30))
	assert.Equal(t, "Very High", Label(Stress, 11))
	assert.Empty(t, Label(Metric("energy"), 5))
}

func TestParseMetric(t *testing.T) {
	m, err := ParseMetric(" Sleep ")
	require.NoError(t, err)
	assert.Equal(t, Sleep, m)

	_, err = ParseMetric("energy")
	assert.ErrorIs(t, err, ErrUnknownMetric)
}

func TestMetricCycleAndRange(t *testing.T) {
	assert.Equal(t, Sleep, Mood.Next())
	assert.Equal(t, Mood, Stress.Next())
	assert.Equal(t, Stress, Mood.Prev())

	lo, hi := Sleep.Range()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 12.0, hi)
	lo, hi = Stress.Range()
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 10.0, hi)
}

func TestNewDraftDefaults(t *testing.T) {
	d := NewDraft(time.Date(2024, 3, 9, 22, 15, 0, 0, time.UTC))
	assert.Equal(t, Entry{Date: "2024-03-09", Mood: 5, Sleep: 7, Stress: 5}, d)
	assert.Equal(t, 7.0, d.Value(Sleep))
	assert.Equal(t, 5.0, d.Value(Stress))
}
