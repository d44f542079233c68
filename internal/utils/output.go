package utils

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/ramanasai/mindtrack/internal/tracker"
	"github.com/ramanasai/mindtrack/internal/wellness"
)

// OutputFormat represents different output formats
type OutputFormat string

const (
	FormatDefault OutputFormat = "default"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatCSV     OutputFormat = "csv"
	FormatYAML    OutputFormat = "yaml"
	FormatCompact OutputFormat = "compact"
	FormatQuiet   OutputFormat = "quiet"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (OutputFormat, error) {
	f := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case "":
		return FormatDefault, nil
	case FormatDefault, FormatTable, FormatJSON, FormatCSV, FormatYAML, FormatCompact, FormatQuiet:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// RenderConfig contains configuration for output rendering
type RenderConfig struct {
	Format     OutputFormat
	Width      int
	ShowID     bool
	ShowLabels bool
	ShowNotes  bool
	Color      bool
}

// DefaultRenderConfig returns a default render configuration
func DefaultRenderConfig() *RenderConfig {
	width := 100
	if colEnv := os.Getenv("COLUMNS"); colEnv != "" {
		if v, err := strconv.Atoi(colEnv); err == nil && v > 40 {
			width = v
		}
	}
	_, noColor := os.LookupEnv("NO_COLOR")

	return &RenderConfig{
		Format:     FormatDefault,
		Width:      width,
		ShowID:     false,
		ShowLabels: true,
		ShowNotes:  true,
		Color:      !noColor,
	}
}

// EntryList is a page of entries as printed by list and export.
type EntryList struct {
	Entries    []wellness.Entry `json:"entries" yaml:"entries"`
	Total      int              `json:"total" yaml:"total"`
	Page       int              `json:"page,omitempty" yaml:"page,omitempty"`
	PerPage    int              `json:"per_page,omitempty" yaml:"per_page,omitempty"`
	TotalPages int              `json:"total_pages,omitempty" yaml:"total_pages,omitempty"`
}

// Renderer handles output formatting
type Renderer struct {
	config *RenderConfig
	styles *Styles
}

// Styles contains lipgloss styles for different elements
type Styles struct {
	Title     lipgloss.Style
	Separator lipgloss.Style
	Meta      lipgloss.Style
	Date      lipgloss.Style
	Mood      lipgloss.Style
	Sleep     lipgloss.Style
	Stress    lipgloss.Style
	Text      lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
}

func NewRenderer(config *RenderConfig) *Renderer {
	if config == nil {
		config = DefaultRenderConfig()
	}
	return &Renderer{config: config, styles: initStyles(config.Color)}
}

func (r *Renderer) Styles() *Styles { return r.styles }

func initStyles(color bool) *Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return &Styles{
			Title: plain.Bold(true), Separator: plain, Meta: plain, Date: plain,
			Mood: plain, Sleep: plain, Stress: plain, Text: plain, Success: plain, Error: plain,
		}
	}
	return &Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
		Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		Meta:      lipgloss.NewStyle().Faint(true),
		Date:      lipgloss.NewStyle().Bold(true),
		Mood:      lipgloss.NewStyle().Foreground(MetricColor(wellness.Mood)),
		Sleep:     lipgloss.NewStyle().Foreground(MetricColor(wellness.Sleep)),
		Stress:    lipgloss.NewStyle().Foreground(MetricColor(wellness.Stress)),
		Text:      lipgloss.NewStyle(),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
	}
}

// MetricColor is the chart colour of m as a lipgloss colour.
func MetricColor(m wellness.Metric) lipgloss.Color {
	return lipgloss.Color(tracker.StyleFor(m).Border)
}

// RenderEntryList renders a list of entries according to the configured format
func (r *Renderer) RenderEntryList(list *EntryList) (string, error) {
	switch r.config.Format {
	case FormatJSON:
		return r.renderJSON(list)
	case FormatYAML:
		return r.renderYAML(list)
	case FormatCSV:
		return r.renderCSV(list)
	case FormatTable:
		return r.renderTable(list)
	case FormatCompact:
		return r.renderCompact(list)
	case FormatQuiet:
		return r.renderQuiet(list)
	default:
		return r.renderDefault(list)
	}
}

func (r *Renderer) rule() string {
	return r.styles.Separator.Render(strings.Repeat("─", min(r.config.Width, 120)))
}

func (r *Renderer) renderDefault(list *EntryList) (string, error) {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render("Recent Entries"))
	b.WriteString("\n")
	b.WriteString(r.rule())
	b.WriteString("\n")

	if len(list.Entries) == 0 {
		b.WriteString("No entries yet\n")
		b.WriteString(r.styles.Meta.Render("Track your first wellness entry to get started"))
		b.WriteString("\n")
		return b.String(), nil
	}

	if list.TotalPages > 1 {
		p := NewPagination(list.Total, list.PerPage, list.Page)
		b.WriteString(r.styles.Meta.Render(p.FormatSummary()))
		b.WriteString("\n")
	}

	for _, e := range list.Entries {
		b.WriteString(r.renderSingleEntry(e))
		b.WriteString(r.rule())
		b.WriteString("\n")
	}

	if list.TotalPages > 1 {
		if nav := NewPagination(list.Total, list.PerPage, list.Page).FormatNavigation(); nav != "" {
			b.WriteString(r.styles.Meta.Render(nav))
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

func (r *Renderer) renderSingleEntry(e wellness.Entry) string {
	var b strings.Builder

	head := r.styles.Date.Render(tracker.FormatLong(e.Date))
	if r.config.ShowID {
		head = r.styles.Meta.Render("["+e.ID+"]") + "  " + head
	}
	b.WriteString(head)
	b.WriteString("\n  ")

	mood := fmt.Sprintf("Mood: %d/10", e.Mood)
	sleep := fmt.Sprintf("Sleep: %sh", tracker.FormatValue(e.Sleep))
	stress := fmt.Sprintf("Stress: %d/10", e.Stress)
	if r.config.ShowLabels {
		mood += " (" + wellness.MoodLabel(float64(e.Mood)) + ")"
		sleep += " (" + wellness.SleepLabel(e.Sleep) + ")"
		stress += " (" + wellness.StressLabel(float64(e.Stress)) + ")"
	}
	b.WriteString(strings.Join([]string{
		r.styles.Mood.Render(mood),
		r.styles.Sleep.Render(sleep),
		r.styles.Stress.Render(stress),
	}, "  "))
	b.WriteString("\n")

	if r.config.ShowNotes && e.Notes != "" {
		b.WriteString(r.styles.Text.Render("  " + e.Notes))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) renderJSON(list *EntryList) (string, error) {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data) + "\n", nil
}

func (r *Renderer) renderYAML(list *EntryList) (string, error) {
	data, err := yaml.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return string(data), nil
}

func (r *Renderer) renderCSV(list *EntryList) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	rows := [][]string{{"id", "date", "mood", "sleep", "stress", "notes"}}
	for _, e := range list.Entries {
		rows = append(rows, []string{
			e.ID,
			e.Date,
			strconv.Itoa(e.Mood),
			tracker.FormatValue(e.Sleep),
			strconv.Itoa(e.Stress),
			e.Notes,
		})
	}
	if err := w.WriteAll(rows); err != nil {
		return "", fmt.Errorf("failed to write CSV: %w", err)
	}
	return buf.String(), nil
}

func (r *Renderer) renderTable(list *EntryList) (string, error) {
	var b strings.Builder
	b.WriteString("Date\tMood\tSleep\tStress\tNotes\n")
	b.WriteString(strings.Repeat("-", r.config.Width))
	b.WriteString("\n")
	for _, e := range list.Entries {
		b.WriteString(strings.Join([]string{
			e.Date,
			strconv.Itoa(e.Mood),
			tracker.FormatValue(e.Sleep),
			strconv.Itoa(e.Stress),
			truncate(oneLine(e.Notes), 50),
		}, "\t"))
		b.WriteString("\n")
	}
	return b.String(), nil
}

func (r *Renderer) renderCompact(list *EntryList) (string, error) {
	var b strings.Builder
	for _, e := range list.Entries {
		line := fmt.Sprintf("%s m%d s%s x%d", e.Date, e.Mood, tracker.FormatValue(e.Sleep), e.Stress)
		if e.Notes != "" {
			line += " " + truncate(oneLine(e.Notes), 60)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// renderQuiet prints only ids, for scripting.
func (r *Renderer) renderQuiet(list *EntryList) (string, error) {
	var b strings.Builder
	for _, e := range list.Entries {
		b.WriteString(e.ID)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// RenderCards renders the summary cards side by side.
func (r *Renderer) RenderCards(cards []tracker.Card) string {
	boxes := make([]string, 0, len(cards))
	for _, c := range cards {
		var title lipgloss.Style
		switch c.Metric {
		case wellness.Sleep:
			title = r.styles.Sleep
		case wellness.Stress:
			title = r.styles.Stress
		default:
			title = r.styles.Mood
		}
		body := title.Bold(true).Render(c.Title) + "\n"
		if c.HasData {
			body += r.styles.Title.Render(c.Label) + "\n"
		}
		body += r.styles.Meta.Render(c.Detail())
		boxes = append(boxes, lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			Width(24).
			Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func oneLine(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

func truncate(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n-3]) + "..."
}
