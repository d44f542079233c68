package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/mindtrack/internal/store"
	"github.com/ramanasai/mindtrack/internal/tracker"
	"github.com/ramanasai/mindtrack/internal/wellness"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}
	return m
}

func newModel(t *testing.T) (Model, *store.Store) {
	t.Helper()
	s := store.New(store.NewMemorySlot(), nil)
	repo := tracker.NewRepository(s, nil)
	repo.Load(context.Background())
	mono := MonoTheme
	m := New(repo, Options{
		Theme: &mono,
		Now:   func() time.Time { return time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC) },
	})
	return m, s
}

func TestSubmitDefaultsFromForm(t *testing.T) {
	m, s := newModel(t)

	m = send(t, m, "n")
	require.True(t, m.Editing())

	m.inputs[1].SetValue("9")
	m.inputs[4].SetValue("slept in")
	m = send(t, m, "enter")

	assert.False(t, m.Editing())
	got := s.Load(context.Background())
	require.Len(t, got, 1)
	assert.Equal(t, "2024-06-01", got[0].Date)
	assert.Equal(t, 9, got[0].Mood)
	assert.Equal(t, 7.0, got[0].Sleep)
	assert.Equal(t, "slept in", got[0].Notes)
	assert.Contains(t, m.Status(), "Entry saved")
}

func TestEscDiscardsDraft(t *testing.T) {
	m, s := newModel(t)
	m = send(t, m, "n", "esc")
	assert.False(t, m.Editing())
	assert.Empty(t, s.Load(context.Background()))
}

func TestInvalidFieldKeepsFormOpen(t *testing.T) {
	m, s := newModel(t)
	m = send(t, m, "n")
	m.inputs[2].SetValue("lots")
	m = send(t, m, "enter")

	assert.True(t, m.Editing())
	assert.Equal(t, 2, m.field)
	assert.Contains(t, m.Status(), "sleep")
	assert.Empty(t, s.Load(context.Background()))
}

func TestMetricSwitching(t *testing.T) {
	m, _ := newModel(t)
	assert.Equal(t, wellness.Mood, m.Metric())
	m = send(t, m, "tab")
	assert.Equal(t, wellness.Sleep, m.Metric())
	m = send(t, m, "3")
	assert.Equal(t, wellness.Stress, m.Metric())
	m = send(t, m, "tab")
	assert.Equal(t, wellness.Mood, m.Metric())
}

func TestViewShowsEmptyStateAndCards(t *testing.T) {
	m, _ := newModel(t)
	out := m.View()
	assert.Contains(t, out, "Mental Wellness Tracker")
	assert.Contains(t, out, "No data yet")
	assert.Contains(t, out, "No data to display")
	assert.Contains(t, out, "No entries yet")
}

func TestRenderChartPlotsEveryPoint(t *testing.T) {
	entries := []wellness.Entry{
		{Date: "2024-01-01", Sleep: 6},
		{Date: "2024-01-02", Sleep: 8},
		{Date: "2023-12-31", Sleep: 12},
	}
	out := RenderChart(tracker.Project(entries, wellness.Sleep, tracker.ProjectOptions{}), 60, 7, MonoTheme)

	assert.Equal(t, 3, strings.Count(out, pointGlyph))
	assert.Contains(t, out, "Sleep (hours)")
	assert.Contains(t, out, "12 ┤")
	assert.Contains(t, out, " 0 ┤")
	assert.Contains(t, out, "1/1/2024")
	assert.Contains(t, out, "12/31/2023")

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[1], pointGlyph, "12 hours sits on the top row")
}

func TestRenderChartTrimsToWidth(t *testing.T) {
	var entries []wellness.Entry
	for i := 0; i < 50; i++ {
		entries = append(entries, wellness.Entry{Date: "2024-01-01", Mood: 1 + i%10})
	}
	out := RenderChart(tracker.Project(entries, wellness.Mood, tracker.ProjectOptions{}), 35, 5, MonoTheme)
	assert.Equal(t, 10, strings.Count(out, pointGlyph))
}

func TestThemeByName(t *testing.T) {
	assert.False(t, ThemeByName("mono").Color)
	assert.True(t, ThemeByName("catppuccin").Color)
}
