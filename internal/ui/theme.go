package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Border  lipgloss.Style
	Hint    lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Tab     lipgloss.Style
	TabOn   lipgloss.Style
	Axis    lipgloss.Style
	Color   bool
}

var DefaultTheme = Theme{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	Label:   lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#89B4FA")),
	Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F2CDCD")),
	Border:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	Hint:    lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#CBA6F7")),
	Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
	Success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	Tab:     lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("#6C7086")),
	TabOn:   lipgloss.NewStyle().Padding(0, 2).Bold(true).Underline(true),
	Axis:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
	Color:   true,
}

// MonoTheme avoids colour for terminals without it.
var MonoTheme = Theme{
	Title:   lipgloss.NewStyle().Bold(true),
	Label:   lipgloss.NewStyle(),
	Value:   lipgloss.NewStyle(),
	Border:  lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
	Hint:    lipgloss.NewStyle(),
	Error:   lipgloss.NewStyle().Bold(true),
	Success: lipgloss.NewStyle().Bold(true),
	Tab:     lipgloss.NewStyle().Padding(0, 2),
	TabOn:   lipgloss.NewStyle().Padding(0, 2).Bold(true).Underline(true),
	Axis:    lipgloss.NewStyle(),
	Color:   false,
}

// ThemeByName resolves the config theme; unknown names get the default.
func ThemeByName(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mono", "plain", "none":
		return MonoTheme
	}
	return DefaultTheme
}
