package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/mindtrack/internal/tracker"
	"github.com/ramanasai/mindtrack/internal/wellness"
)

func entries() []wellness.Entry {
	return []wellness.Entry{
		{ID: "2", Date: "2024-01-02", Mood: 8, Sleep: 7.5, Stress: 3, Notes: "good, calm\nday"},
		{ID: "1", Date: "2024-01-01", Mood: 2, Sleep: 4, Stress: 9},
	}
}

func plainRenderer(f OutputFormat) *Renderer {
	return NewRenderer(&RenderConfig{Format: f, Width: 40, ShowLabels: true, ShowNotes: true})
}

func TestRenderDefault(t *testing.T) {
	out, err := plainRenderer(FormatDefault).RenderEntryList(&EntryList{Entries: entries(), Total: 2})
	require.NoError(t, err)
	assert.Contains(t, out, "Recent Entries")
	assert.Contains(t, out, "Tue, Jan 2, 2024")
	assert.Contains(t, out, "Mood: 8/10 (Good)")
	assert.Contains(t, out, "Sleep: 7.5h (Good)")
	assert.Contains(t, out, "Stress: 9/10 (Very High)")
	assert.Less(t, strings.Index(out, "Jan 2"), strings.Index(out, "Jan 1"))
}

func TestRenderDefaultEmpty(t *testing.T) {
	out, err := plainRenderer(FormatDefault).RenderEntryList(&EntryList{})
	require.NoError(t, err)
	assert.Contains(t, out, "No entries yet")
}

func TestRenderCSVEscapes(t *testing.T) {
	out, err := plainRenderer(FormatCSV).RenderEntryList(&EntryList{Entries: entries()})
	require.NoError(t, err)
	lines := strings.SplitN(out, "\n", 2)
	assert.Equal(t, "id,date,mood,sleep,stress,notes", lines[0])
	assert.Contains(t, out, "2,2024-01-02,8,7.5,3,\"good, calm\nday\"")
}

func TestRenderJSONAndYAML(t *testing.T) {
	list := &EntryList{Entries: entries()[:1], Total: 1}

	out, err := plainRenderer(FormatJSON).RenderEntryList(list)
	require.NoError(t, err)
	assert.Contains(t, out, `"mood": 8`)
	assert.Contains(t, out, `"total": 1`)

	out, err = plainRenderer(FormatYAML).RenderEntryList(list)
	require.NoError(t, err)
	assert.Contains(t, out, "mood: 8")
	assert.Contains(t, out, "date: \"2024-01-02\"")
}

func TestRenderCompactAndQuiet(t *testing.T) {
	out, err := plainRenderer(FormatCompact).RenderEntryList(&EntryList{Entries: entries()})
	require.NoError(t, err)
	assert.Contains(t, out, "2024-01-02 m8 s7.5 x3 good, calm day")

	out, err = plainRenderer(FormatQuiet).RenderEntryList(&EntryList{Entries: entries()})
	require.NoError(t, err)
	assert.Equal(t, "2\n1\n", out)
}

func TestRenderCards(t *testing.T) {
	out := plainRenderer(FormatDefault).RenderCards(tracker.Summarize(entries()))
	assert.Contains(t, out, "Very Low")
	assert.Contains(t, out, "Latest: 4 hours")
	assert.Contains(t, out, "Latest: 9/10")
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)
	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatDefault, f)
	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestPagination(t *testing.T) {
	p := NewPagination(25, 10, 3)
	lo, hi := p.Bounds()
	assert.Equal(t, 20, lo)
	assert.Equal(t, 25, hi)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, "Showing 21-25 of 25 entries (page 3 of 3)", p.FormatSummary())
	assert.Equal(t, "use --page 2 for previous", p.FormatNavigation())

	p = NewPagination(25, 10, 99)
	assert.Equal(t, 3, p.Current)

	p = NewPagination(0, 10, 1)
	assert.Equal(t, "No entries", p.FormatSummary())
	lo, hi = p.Bounds()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 0, hi)

	p = NewPagination(5, 0, 1)
	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, "Showing 1-5 of 5 entries", p.FormatSummary())
	assert.Equal(t, "Showing 1-1 of 1 entry", NewPagination(1, 10, 1).FormatSummary())
}

func TestParsePage(t *testing.T) {
	p, err := ParsePage("last", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, p)
	p, err = ParsePage("9", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, p)
	_, err = ParsePage("zero", 4)
	assert.Error(t, err)
}

func TestParseFlexibleDate(t *testing.T) {
	now := time.Date(2024, 3, 13, 18, 0, 0, 0, time.UTC) // Wednesday
	day := func(s string) string {
		t.Helper()
		d, err := ParseFlexibleDate(s, now)
		require.NoError(t, err, s)
		return d.Format("2006-01-02")
	}
	assert.Equal(t, "2024-03-13", day("today"))
	assert.Equal(t, "2024-03-12", day("Yesterday"))
	assert.Equal(t, "2024-03-10", day("3 days ago"))
	assert.Equal(t, "2024-02-28", day("2 weeks ago"))
	assert.Equal(t, "2024-03-11", day("monday"))
	assert.Equal(t, "2024-03-13", day("wed"))
	assert.Equal(t, "2024-03-06", day("last wednesday"))
	assert.Equal(t, "2024-02-29", day("2024-02-29"))
	assert.Equal(t, "2024-01-05", day("Jan 5, 2024"))

	_, err := ParseFlexibleDate("someday", now)
	assert.Error(t, err)
	_, err = ParseFlexibleDate("", now)
	assert.Error(t, err)
}
