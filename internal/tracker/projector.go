package tracker

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ramanasai/mindtrack/internal/wellness"
)

// Order selects how entries are laid out along the x axis.
type Order string

const (
	// OrderInsertion keeps submission order; backdated entries plot where they were added.
	OrderInsertion Order = "insertion"
	// OrderDate stably sorts by the entry's own date.
	OrderDate Order = "date"
)

// ProjectOptions controls label rendering and ordering.
type ProjectOptions struct {
	Locale string
	Order  Order
}

// Point is one chart sample.
type Point struct {
	Label string
	Date  string
	Value float64
}

// Style is the per-dimension line styling.
type Style struct {
	Border  string
	Fill    string
	Tension float64
	Filled  bool
}

// Series is a chart-ready projection of the entries onto one metric.
type Series struct {
	Metric wellness.Metric
	Title  string
	Points []Point
	Style  Style
	YMin   float64
	YMax   float64
}

func (s Series) Labels() []string {
	out := make([]string, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Label
	}
	return out
}

func (s Series) Values() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Value
	}
	return out
}

var colors = map[wellness.Metric]string{
	wellness.Mood:   "#FFA500",
	wellness.Sleep:  "#4BC0C0",
	wellness.Stress: "#FF6384",
}

// StyleFor returns the line style of m. The fill is the border colour at half alpha.
func StyleFor(m wellness.Metric) Style {
	c := colors[m]
	return Style{Border: c, Fill: c + "80", Tension: 0.3, Filled: true}
}

// Project maps entries onto metric m.
func Project(entries []wellness.Entry, m wellness.Metric, opts ProjectOptions) Series {
	ordered := entries
	if opts.Order == OrderDate {
		ordered = append([]wellness.Entry(nil), entries...)
		sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Date < ordered[j].Date })
	}

	lo, hi := m.Range()
	s := Series{
		Metric: m,
		Title:  m.Title(),
		Points: make([]Point, 0, len(ordered)),
		Style:  StyleFor(m),
		YMin:   lo,
		YMax:   hi,
	}
	for _, e := range ordered {
		s.Points = append(s.Points, Point{
			Label: FormatDate(e.Date, opts.Locale),
			Date:  e.Date,
			Value: e.Value(m),
		})
	}
	return s
}

// FormatDate renders a YYYY-MM-DD date in the short form of locale. Dates that
// do not parse are returned unchanged.
func FormatDate(date, locale string) string {
	t, err := time.Parse(wellness.DateLayout, strings.TrimSpace(date))
	if err != nil {
		return date
	}
	y, mo, d := t.Date()
	switch strings.ToLower(locale) {
	case "iso":
		return t.Format(wellness.DateLayout)
	case "en-gb", "fr-fr", "es-es", "it-it":
		return fmt.Sprintf("%02d/%02d/%d", d, int(mo), y)
	case "de-de", "ru-ru":
		return fmt.Sprintf("%d.%d.%d", d, int(mo), y)
	case "ja-jp", "zh-cn":
		return fmt.Sprintf("%d/%d/%d", y, int(mo), d)
	default:
		return fmt.Sprintf("%d/%d/%d", int(mo), d, y)
	}
}

// FormatLong renders a date the way the entry list does, e.g. "Tue, Jan 2, 2024".
func FormatLong(date string) string {
	t, err := time.Parse(wellness.DateLayout, strings.TrimSpace(date))
	if err != nil {
		return date
	}
	return t.Format("Mon, Jan 2, 2006")
}

// FormatValue prints a reading without trailing zeros.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Tooltip renders a chart sample with its band label, e.g. "Mood: 7 (Good)".
func Tooltip(m wellness.Metric, v float64) string {
	return fmt.Sprintf("%s: %s (%s)", m.Title(), FormatValue(v), wellness.Label(m, v))
}

// Card is the latest-value summary of one dimension.
type Card struct {
	Metric  wellness.Metric
	Title   string
	HasData bool
	Value   float64
	Label   string
}

// Detail is the secondary line of the card.
func (c Card) Detail() string {
	if !c.HasData {
		return "No data yet"
	}
	if c.Metric == wellness.Sleep {
		return fmt.Sprintf("Latest: %s hours", FormatValue(c.Value))
	}
	return fmt.Sprintf("Latest: %s/10", FormatValue(c.Value))
}

// Summarize builds one card per dimension from the last submitted entry,
// regardless of entry dates.
func Summarize(entries []wellness.Entry) []Card {
	cards := make([]Card, 0, len(wellness.Metrics))
	for _, m := range wellness.Metrics {
		c := Card{Metric: m, Title: cardTitle(m)}
		if n := len(entries); n > 0 {
			last := entries[n-1]
			c.HasData = true
			c.Value = last.Value(m)
			c.Label = wellness.Label(m, c.Value)
		}
		cards = append(cards, c)
	}
	return cards
}

func cardTitle(m wellness.Metric) string {
	if m == wellness.Sleep {
		return "Sleep"
	}
	return m.Title()
}
