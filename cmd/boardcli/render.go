package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/programme-lv/leaderboard/board"
	"github.com/programme-lv/leaderboard/tooltip"
)

const cellPadding = 2

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	bestStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
)

// columnWidths returns the width of the name column followed by one width
// per header.
func columnWidths(t *board.Table) []int {
	widths := make([]int, len(t.Headers)+1)
	for i, h := range t.Headers {
		widths[i+1] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		widths[0] = max(widths[0], lipgloss.Width(row.Participant.Name))
		for i, c := range rowCells(row) {
			widths[i+1] = max(widths[i+1], lipgloss.Width(c.Text()))
		}
	}
	for i := range widths {
		widths[i] += cellPadding
	}
	return widths
}

func rowCells(row board.Row) []board.Cell {
	cells := make([]board.Cell, 0, len(row.Attempts)+1)
	cells = append(cells, row.Attempts...)
	return append(cells, row.Score)
}

func cell(text string, width int, style lipgloss.Style) string {
	return style.Width(width).Render(text)
}

// renderTable draws the header line and one line per participant. The row at
// cursor is highlighted; a panel is drawn below the line it is anchored to.
func renderTable(t *board.Table, cursor int, panel *tooltip.Panel) string {
	widths := columnWidths(t)
	lines := make([]string, 0, len(t.Rows)+1)

	header := []string{cell("", widths[0], lipgloss.NewStyle())}
	for i, h := range t.Headers {
		header = append(header, cell(h, widths[i+1], headerStyle))
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, header...))

	for i, row := range t.Rows {
		nameStyle := lipgloss.NewStyle()
		if i == cursor {
			nameStyle = cursorStyle
		}
		parts := []string{cell(row.Participant.Name, widths[0], nameStyle)}
		for j, c := range rowCells(row) {
			style := lipgloss.NewStyle()
			if c.Best {
				style = bestStyle
			}
			parts = append(parts, cell(c.Text(), widths[j+1], style))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}

	if panel != nil {
		at := min(max(int(panel.Top), 0), len(lines))
		out := make([]string, 0, len(lines)+1)
		out = append(out, lines[:at]...)
		out = append(out, renderPanel(*panel))
		lines = append(out, lines[at:]...)
	}
	return strings.Join(lines, "\n")
}

// nameAnchor is the box of the name cell of row i, in terminal cells.
func nameAnchor(t *board.Table, i int) tooltip.Rect {
	return tooltip.Rect{
		Top:    float64(i + 1),
		Left:   0,
		Width:  float64(columnWidths(t)[0]),
		Height: 1,
	}
}

func renderPanel(p tooltip.Panel) string {
	// the border takes one cell on each side
	width := max(int(p.Width)-2, lipgloss.Width(p.City), lipgloss.Width(p.Car))
	return panelStyle.
		Width(width).
		MarginLeft(int(p.Left)).
		Render(p.City + "\n" + p.Car)
}
