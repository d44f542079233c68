package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/ramanasai/mindtrack/internal/logging"
	"github.com/ramanasai/mindtrack/internal/tracker"
	"github.com/ramanasai/mindtrack/internal/utils"
	"github.com/ramanasai/mindtrack/internal/version"
	"github.com/ramanasai/mindtrack/internal/wellness"
)

// form fields in tab order
var fieldNames = []string{"date", "mood", "sleep", "stress", "notes"}

// Options configures the tracker view.
type Options struct {
	Theme   *Theme
	Project tracker.ProjectOptions
	Now     func() time.Time
	Log     *zap.Logger
}

type Model struct {
	width, height int

	repo   *tracker.Repository
	form   *tracker.Form
	opts   Options
	th     Theme
	render *utils.Renderer
	log    *zap.Logger

	metric wellness.Metric
	inputs []textinput.Model
	field  int
	scroll int
	status string
	isErr  bool
}

// New builds the tracker view over an already loaded repository.
func New(repo *tracker.Repository, opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	th := DefaultTheme
	if opts.Theme != nil {
		th = *opts.Theme
	}
	rc := utils.DefaultRenderConfig()
	rc.Color = th.Color

	inputs := make([]textinput.Model, len(fieldNames))
	for i, name := range fieldNames {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 10
		in.Width = 12
		switch name {
		case "date":
			in.Placeholder = "YYYY-MM-DD"
		case "sleep":
			in.Placeholder = "0-12"
			in.CharLimit = 5
		case "notes":
			in.Placeholder = "How are you feeling today?"
			in.CharLimit = 500
			in.Width = 48
		default:
			in.Placeholder = "1-10"
			in.CharLimit = 2
		}
		inputs[i] = in
	}

	return Model{
		repo:   repo,
		form:   tracker.NewForm(repo, tracker.WithClock(opts.Now)),
		opts:   opts,
		th:     th,
		render: utils.NewRenderer(rc),
		log:    logging.OrNop(opts.Log),
		metric: wellness.Mood,
		inputs: inputs,
	}
}

// Run starts the full-screen tracker.
func Run(repo *tracker.Repository, opts Options) error {
	_, err := tea.NewProgram(New(repo, opts), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Metric() wellness.Metric { return m.metric }
func (m Model) Editing() bool           { return m.form.State() == tracker.FormEditing }
func (m Model) Status() string          { return m.status }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.Editing() {
			return m.updateForm(msg)
		}
		return m.updateNormal(msg.String())
	}
	return m, nil
}

func (m Model) updateNormal(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "n", "a":
		m.openForm()
		return m, textinput.Blink
	case "tab", "right", "l":
		m.metric = m.metric.Next()
	case "shift+tab", "left", "h":
		m.metric = m.metric.Prev()
	case "1":
		m.metric = wellness.Mood
	case "2":
		m.metric = wellness.Sleep
	case "3":
		m.metric = wellness.Stress
	case "j", "down":
		if m.scroll < m.repo.Len()-1 {
			m.scroll++
		}
	case "k", "up":
		if m.scroll > 0 {
			m.scroll--
		}
	}
	return m, nil
}

func (m *Model) openForm() {
	m.form.Open()
	d := m.form.Draft()
	values := []string{
		d.Date,
		fmt.Sprint(d.Mood),
		tracker.FormatValue(d.Sleep),
		fmt.Sprint(d.Stress),
		d.Notes,
	}
	for i := range m.inputs {
		m.inputs[i].SetValue(values[i])
		m.inputs[i].Blur()
	}
	m.field = 0
	m.inputs[0].Focus()
	m.status, m.isErr = "", false
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.form.Cancel()
		m.status, m.isErr = "Entry discarded", false
		return m, nil
	case "tab", "down":
		m.focusField((m.field + 1) % len(m.inputs))
		return m, nil
	case "shift+tab", "up":
		m.focusField((m.field + len(m.inputs) - 1) % len(m.inputs))
		return m, nil
	case "enter":
		return m.submit()
	}

	var cmd tea.Cmd
	m.inputs[m.field], cmd = m.inputs[m.field].Update(msg)
	return m, cmd
}

func (m *Model) focusField(i int) {
	m.inputs[m.field].Blur()
	m.field = i
	m.inputs[m.field].Focus()
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	for i, name := range fieldNames {
		if err := m.form.SetField(name, m.inputs[i].Value()); err != nil {
			m.status, m.isErr = err.Error(), true
			m.focusField(i)
			return m, nil
		}
	}
	e, err := m.form.Submit(context.Background())
	if err != nil {
		// the entry is kept for this session; storage is retried on the next append
		m.log.Warn("entry not persisted", zap.String("id", e.ID), zap.Error(err))
		m.status, m.isErr = "Saved for this session only: "+err.Error(), true
		return m, nil
	}
	m.scroll = 0
	m.status, m.isErr = "Entry saved for "+tracker.FormatLong(e.Date), false
	return m, nil
}

func (m Model) View() string {
	width := m.width
	if width == 0 {
		width = 100
	}

	header := m.th.Title.Render("Mental Wellness Tracker") + "  " +
		m.th.Hint.Render("Monitor your mood, sleep, and stress levels over time")

	cards := m.render.RenderCards(tracker.Summarize(m.repo.All()))
	chart := m.th.Border.Render(m.renderTabs() + "\n\n" +
		RenderChart(tracker.Project(m.repo.All(), m.metric, m.opts.Project), min(width-4, 96), 10, m.th))

	var body string
	if m.Editing() {
		body = m.renderForm()
	} else {
		body = m.renderEntries()
	}

	parts := []string{header, cards, chart, body}
	if m.status != "" {
		st := m.th.Success
		if m.isErr {
			st = m.th.Error
		}
		parts = append(parts, st.Render(m.status))
	}
	parts = append(parts, m.statusBar())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(wellness.Metrics))
	for i, mt := range wellness.Metrics {
		st := m.th.Tab
		if mt == m.metric {
			st = m.th.TabOn
			if m.th.Color {
				st = st.Foreground(utils.MetricColor(mt))
			}
		}
		name := strings.ToUpper(string(mt)[:1]) + string(mt)[1:]
		tabs = append(tabs, st.Render(fmt.Sprintf("%d %s", i+1, name)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderForm() string {
	labels := []string{"Date", "Mood (1-10)", "Sleep (hours)", "Stress (1-10)", "Notes"}
	var b strings.Builder
	b.WriteString(m.th.Title.Render("New Entry"))
	b.WriteString("\n\n")
	for i, in := range m.inputs {
		label := m.th.Label.Render(fmt.Sprintf("%-14s", labels[i]))
		b.WriteString(label + " " + in.View())
		if hint := m.bandHint(i, in.Value()); hint != "" {
			b.WriteString("  " + m.th.Hint.Render(hint))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.th.Hint.Render("Tab next field • Enter save • Esc cancel"))
	return m.th.Border.Render(b.String())
}

// bandHint previews the band label of a numeric field while typing.
func (m Model) bandHint(field int, raw string) string {
	var metric wellness.Metric
	switch fieldNames[field] {
	case "mood":
		metric = wellness.Mood
	case "sleep":
		metric = wellness.Sleep
	case "stress":
		metric = wellness.Stress
	default:
		return ""
	}
	var v float64
	if _, err := fmt.Sscan(strings.TrimSpace(raw), &v); err != nil {
		return ""
	}
	return wellness.Label(metric, v)
}

func (m Model) renderEntries() string {
	recent := m.repo.Recent()
	if len(recent) == 0 {
		return m.th.Border.Render("No entries yet\n" + m.th.Hint.Render("Press n to track your first wellness entry"))
	}
	limit := 5
	if m.height > 0 {
		limit = max((m.height-30)/3, 2)
	}
	start := min(m.scroll, len(recent)-1)
	end := min(start+limit, len(recent))
	out, err := m.render.RenderEntryList(&utils.EntryList{Entries: recent[start:end], Total: len(recent)})
	if err != nil {
		return m.th.Error.Render(err.Error())
	}
	return strings.TrimRight(out, "\n")
}

func (m Model) statusBar() string {
	keys := "n new entry • tab/1-3 switch chart • j/k scroll • q quit"
	if m.Editing() {
		keys = "editing entry"
	}
	return m.th.Hint.Render(fmt.Sprintf("%s  |  %d entries  |  %s", version.GetShortVersion(), m.repo.Len(), keys))
}
