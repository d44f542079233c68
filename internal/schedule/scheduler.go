package schedule

import (
	"context"
	"strings"
	"time"

	"github.com/ramanasai/mindtrack/internal/config"
)

// NextAt computes the next check-in reminder after now that falls on a configured
// workday and is not a holiday. An empty workday list means every day.
func NextAt(now time.Time, cfg config.Config) time.Time {
	loc := cfg.Location()
	now = now.In(loc)

	// parse "HH:MM"
	hour, min := 20, 0
	if t, err := time.ParseInLocation("15:04", strings.TrimSpace(cfg.Reminder.Time), loc); err == nil {
		hour, min = t.Hour(), t.Minute()
	}

	workdays := map[string]bool{}
	for _, d := range cfg.Reminder.Workdays {
		d = strings.TrimSpace(d)
		if len(d) >= 3 {
			workdays[strings.ToLower(d[:3])] = true
		}
	}
	isWorkday := func(t time.Time) bool {
		return len(workdays) == 0 || workdays[strings.ToLower(t.Weekday().String()[:3])]
	}
	holidays := map[string]bool{}
	for _, h := range cfg.Reminder.Holidays {
		holidays[strings.TrimSpace(h)] = true
	}

	cand := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, loc)
	if !now.Before(cand) {
		cand = cand.AddDate(0, 0, 1)
	}
	// a year of holidays is the most we look ahead
	for i := 0; i < 366; i++ {
		if isWorkday(cand) && !holidays[cand.Format("2006-01-02")] {
			return cand
		}
		cand = cand.AddDate(0, 0, 1)
	}
	return cand
}

// Timer abstracts time.Timer so the loop can be driven by tests.
type Timer interface {
	C() <-chan time.Time
	Reset(d time.Duration)
	Stop() bool
}

type realTimer struct{ t *time.Timer }

func (r realTimer) C() <-chan time.Time   { return r.t.C }
func (r realTimer) Reset(d time.Duration) { r.t.Reset(d) }
func (r realTimer) Stop() bool            { return r.t.Stop() }
func newRealTimer(d time.Duration) Timer  { return realTimer{time.NewTimer(d)} }

// Runner fires a callback on the configured reminder schedule.
type Runner struct {
	Now      func() time.Time
	NewTimer func(d time.Duration) Timer
}

// RunConfigured runs f at every reminder instant until ctx is canceled.
func RunConfigured(ctx context.Context, cfg config.Config, f func()) {
	Runner{}.Run(ctx, cfg, f)
}

func (r Runner) Run(ctx context.Context, cfg config.Config, f func()) {
	now := r.Now
	if now == nil {
		now = time.Now
	}
	newTimer := r.NewTimer
	if newTimer == nil {
		newTimer = newRealTimer
	}

	t := newTimer(NextAt(now(), cfg).Sub(now()))
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C():
			f()
			t.Reset(NextAt(now(), cfg).Sub(now()))
		}
	}
}
