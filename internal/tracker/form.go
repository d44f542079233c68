package tracker

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ramanasai/mindtrack/internal/wellness"
)

// FormState is the entry form's visibility state.
type FormState int

const (
	FormClosed FormState = iota
	FormEditing
)

func (s FormState) String() string {
	if s == FormEditing {
		return "editing"
	}
	return "closed"
}

var (
	ErrNotEditing   = errors.New("form is not open")
	ErrInvalidDate  = errors.New("date must be YYYY-MM-DD")
	ErrUnknownField = errors.New("unknown form field")
)

// Appender receives committed entries.
type Appender interface {
	Append(ctx context.Context, e wellness.Entry) error
}

// Form drafts one entry at a time and commits it to an Appender.
type Form struct {
	repo  Appender
	now   func() time.Time
	ids   *MillisIDs
	state FormState
	draft wellness.Entry
}

type FormOption func(*Form)

// WithClock sets the time source used for draft dates and ids.
func WithClock(now func() time.Time) FormOption {
	return func(f *Form) { f.now = now }
}

func NewForm(repo Appender, opts ...FormOption) *Form {
	f := &Form{repo: repo, now: time.Now, ids: &MillisIDs{}}
	for _, o := range opts {
		o(f)
	}
	return f
}

func (f *Form) State() FormState      { return f.state }
func (f *Form) Draft() wellness.Entry { return f.draft }

// Open shows a fresh draft with today's date and default readings.
func (f *Form) Open() {
	f.draft = wellness.NewDraft(f.now())
	f.state = FormEditing
}

// Cancel discards the draft.
func (f *Form) Cancel() {
	f.draft = wellness.Entry{}
	f.state = FormClosed
}

// Submit assigns an id to the draft, appends it and closes the form. The form
// closes even if the flush to storage fails; the entry is kept in memory.
func (f *Form) Submit(ctx context.Context) (wellness.Entry, error) {
	if f.state != FormEditing {
		return wellness.Entry{}, ErrNotEditing
	}
	e := f.draft
	e.ID = f.ids.Next(f.now())

	f.draft = wellness.Entry{}
	f.state = FormClosed
	if err := f.repo.Append(ctx, e); err != nil {
		return e, fmt.Errorf("save entry: %w", err)
	}
	return e, nil
}

func (f *Form) SetDate(date string) error {
	if f.state != FormEditing {
		return ErrNotEditing
	}
	date = strings.TrimSpace(date)
	if _, err := time.Parse(wellness.DateLayout, date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	f.draft.Date = date
	return nil
}

// SetMood, SetSleep and SetStress clamp to the control range like a slider would.
func (f *Form) SetMood(v int) error {
	if f.state != FormEditing {
		return ErrNotEditing
	}
	f.draft.Mood = clampInt(v, wellness.MinMood, wellness.MaxMood)
	return nil
}

func (f *Form) SetSleep(h float64) error {
	if f.state != FormEditing {
		return ErrNotEditing
	}
	f.draft.Sleep = min(max(h, wellness.MinSleep), wellness.MaxSleep)
	return nil
}

func (f *Form) SetStress(v int) error {
	if f.state != FormEditing {
		return ErrNotEditing
	}
	f.draft.Stress = clampInt(v, wellness.MinStress, wellness.MaxStress)
	return nil
}

func (f *Form) SetNotes(notes string) error {
	if f.state != FormEditing {
		return ErrNotEditing
	}
	f.draft.Notes = notes
	return nil
}

// SetField coerces raw text input into the named field.
func (f *Form) SetField(name, raw string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "date":
		return f.SetDate(raw)
	case "notes":
		return f.SetNotes(raw)
	case "mood", "stress":
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if name == "mood" {
			return f.SetMood(v)
		}
		return f.SetStress(v)
	case "sleep":
		h, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("sleep: %w", err)
		}
		if math.IsNaN(h) {
			return fmt.Errorf("sleep: not a number")
		}
		return f.SetSleep(h)
	}
	return fmt.Errorf("%w: %s", ErrUnknownField, name)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
