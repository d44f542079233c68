package schedule

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ramanasai/mindtrack/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func utcConfig() config.Config {
	cfg := config.Default()
	cfg.Reminder.Timezone = "UTC"
	cfg.Reminder.Time = "20:00"
	return cfg
}

func TestNextAtSameDay(t *testing.T) {
	now := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC) // Monday
	assert.Equal(t, time.Date(2024, 3, 4, 20, 0, 0, 0, time.UTC), NextAt(now, utcConfig()))
}

func TestNextAtRollsOver(t *testing.T) {
	now := time.Date(2024, 3, 4, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 5, 20, 0, 0, 0, time.UTC), NextAt(now, utcConfig()))
}

func TestNextAtSkipsNonWorkdaysAndHolidays(t *testing.T) {
	cfg := utcConfig()
	cfg.Reminder.Workdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}
	cfg.Reminder.Holidays = []string{"2024-03-11"}

	now := time.Date(2024, 3, 8, 21, 0, 0, 0, time.UTC) // Friday, after reminder
	assert.Equal(t, time.Date(2024, 3, 12, 20, 0, 0, 0, time.UTC), NextAt(now, cfg))
}

func TestNextAtBadTimeUsesDefault(t *testing.T) {
	cfg := utcConfig()
	cfg.Reminder.Time = "later"
	now := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, 20, NextAt(now, cfg).Hour())
}

type fakeTimer struct {
	mu     sync.Mutex
	c      chan time.Time
	resets []time.Duration
}

func (f *fakeTimer) C() <-chan time.Time { return f.c }
func (f *fakeTimer) Reset(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resets = append(f.resets, d)
}
func (f *fakeTimer) Stop() bool { return true }

func TestRunnerFiresAndStops(t *testing.T) {
	now := time.Date(2024, 3, 4, 19, 0, 0, 0, time.UTC)
	ft := &fakeTimer{c: make(chan time.Time)}
	var initial time.Duration
	r := Runner{
		Now: func() time.Time { return now },
		NewTimer: func(d time.Duration) Timer {
			initial = d
			return ft
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	fired := make(chan struct{}, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		r.Run(ctx, utcConfig(), func() { fired <- struct{}{} })
	}()

	ft.c <- now
	<-fired
	cancel()
	<-done

	assert.Equal(t, time.Hour, initial)
	ft.mu.Lock()
	defer ft.mu.Unlock()
	require.Len(t, ft.resets, 1)
	assert.Equal(t, time.Hour, ft.resets[0])
}
