package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"airplane-seating/model"
	"airplane-seating/seating"
)

const cellWidth = 3

var classColors = map[byte]lipgloss.Color{
	'F': lipgloss.Color("5"),
	'B': lipgloss.Color("4"),
	'E': lipgloss.Color("6"),
}

func renderSeatPlan(grid *seating.Grid, registry *seating.Registry, highlight *model.SeatReference) string {
	seatStyleAvailable := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	seatStyleOccupied := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	seatStyleHighlight := lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("3")).Bold(true)

	seats := grid.Snapshot()
	rowWidth := len(fmt.Sprintf("Row %d", model.Rows))

	var b strings.Builder
	b.WriteString("Seating plan (* = available, X = occupied)\n\n")

	b.WriteString(strings.Repeat(" ", rowWidth+1))
	for c := 0; c < model.Columns; c++ {
		b.WriteString(padCell(string(rune(model.FirstColumn+c)), cellWidth))
	}
	b.WriteString("\n")

	for r := 0; r < model.Rows; r++ {
		row := r + 1
		label := fmt.Sprintf("%-*s ", rowWidth, fmt.Sprintf("Row %d", row))
		class, ok := registry.ForRow(row)
		if ok {
			label = lipgloss.NewStyle().Foreground(classColors[class.Code]).Render(label)
		}
		b.WriteString(label)

		for c := 0; c < model.Columns; c++ {
			state := seats[r][c]
			cell := padCell(state.Symbol(), cellWidth)
			switch {
			case highlight != nil && highlight.Row == row && highlight.Column == byte(model.FirstColumn+c):
				cell = seatStyleHighlight.Render(cell)
			case state == model.Available:
				cell = seatStyleAvailable.Render(cell)
			default:
				cell = seatStyleOccupied.Render(cell)
			}
			b.WriteString(cell)
		}

		if ok && row == class.RowStart {
			b.WriteString("  " + hint(fmt.Sprintf("%s (%s)", class.Name, class.RangeLabel())))
		}
		b.WriteString("\n")
	}

	available, occupied := grid.Counts()
	total := available + occupied
	percent := float64(available) / float64(max(1, total)) * 100
	counts := fmt.Sprintf("Available: %d • Occupied: %d • Total: %d • %.0f%% available", available, occupied, total, percent)
	return b.String() + "\n" + hint(counts)
}

func padCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if text == "" {
		return strings.Repeat(" ", width)
	}
	if len(text) >= width {
		return text[:width]
	}
	padding := width - len(text)
	left := padding / 2
	right := padding - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}
