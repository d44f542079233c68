package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ramanasai/mindtrack/internal/tracker"
)

const (
	pointGlyph = "●"
	lineGlyph  = "·"
)

// RenderChart draws s as a line chart of the given plot size. When there are
// more points than columns, only the most recent points that fit are drawn.
func RenderChart(s tracker.Series, width, height int, th Theme) string {
	if len(s.Points) == 0 {
		return th.Hint.Render("No data to display") + "\n" +
			th.Hint.Render("Add your first entry to see your trends")
	}
	height = max(height, 3)
	mid := (s.YMax + s.YMin) / 2
	axisW := max(len(tracker.FormatValue(s.YMax)), len(tracker.FormatValue(s.YMin)), len(tracker.FormatValue(mid))) + 2
	plotW := max(width-axisW, 4)

	points := s.Points
	colW := 3
	if maxPts := plotW / colW; len(points) > maxPts {
		points = points[len(points)-maxPts:]
	}

	grid := make([][]string, height)
	for i := range grid {
		grid[i] = make([]string, plotW)
		for j := range grid[i] {
			grid[i][j] = " "
		}
	}

	line := lipgloss.NewStyle()
	if th.Color {
		line = line.Foreground(lipgloss.Color(s.Style.Border))
	}

	rowOf := func(v float64) int {
		span := s.YMax - s.YMin
		if span <= 0 {
			return height - 1
		}
		frac := (v - s.YMin) / span
		r := height - 1 - int(math.Round(frac*float64(height-1)))
		return min(max(r, 0), height-1)
	}

	prevCol, prevRow := -1, -1
	for i, p := range points {
		col := i*colW + 1
		row := rowOf(p.Value)
		if prevCol >= 0 {
			for c := prevCol + 1; c < col; c++ {
				t := float64(c-prevCol) / float64(col-prevCol)
				r := int(math.Round(float64(prevRow) + t*float64(row-prevRow)))
				grid[r][c] = line.Render(lineGlyph)
			}
		}
		grid[row][col] = line.Render(pointGlyph)
		prevCol, prevRow = col, row
	}

	var b strings.Builder
	b.WriteString(th.Title.Render(s.Title))
	b.WriteString("\n")
	for i, row := range grid {
		label := ""
		switch i {
		case 0:
			label = tracker.FormatValue(s.YMax)
		case height - 1:
			label = tracker.FormatValue(s.YMin)
		case (height - 1) / 2:
			label = tracker.FormatValue(mid)
		}
		b.WriteString(th.Axis.Render(padLeft(label, axisW-2) + " ┤"))
		b.WriteString(strings.Join(row, ""))
		b.WriteString("\n")
	}
	b.WriteString(th.Axis.Render(strings.Repeat(" ", axisW-1) + "└" + strings.Repeat("─", plotW)))
	b.WriteString("\n")

	first, last := points[0].Label, points[len(points)-1].Label
	footer := strings.Repeat(" ", axisW) + first
	if len(points) > 1 {
		gap := max(plotW-len(first)-len(last), 1)
		footer += strings.Repeat(" ", gap) + last
	}
	b.WriteString(th.Axis.Render(footer))
	return b.String()
}

func padLeft(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat(" ", n-len(s)) + s
}
