package prompt

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"airplane-seating/model"
	"airplane-seating/seating"
)

// RenderPlan draws the grid as a table, one line per row, with the fare
// class merged down the last column.
func RenderPlan(grid *seating.Grid, registry *seating.Registry) string {
	t := table.NewWriter()
	t.SetTitle("Seating plan (* = available, X = occupied)")

	header := table.Row{""}
	configs := []table.ColumnConfig{{Number: 1}}
	for c := 0; c < model.Columns; c++ {
		header = append(header, string(rune(model.FirstColumn+c)))
		configs = append(configs, table.ColumnConfig{Number: c + 2, Align: text.AlignCenter, AlignHeader: text.AlignCenter})
	}
	header = append(header, "Class")
	configs = append(configs, table.ColumnConfig{Number: model.Columns + 2, AutoMerge: true})
	t.AppendHeader(header)
	t.SetColumnConfigs(configs)

	seats := grid.Snapshot()
	for r := 0; r < model.Rows; r++ {
		row := table.Row{fmt.Sprintf("Row %d", r+1)}
		for c := 0; c < model.Columns; c++ {
			row = append(row, seats[r][c].Symbol())
		}
		className := ""
		if class, ok := registry.ForRow(r + 1); ok {
			className = fmt.Sprintf("%s (%s)", class.Name, class.RangeLabel())
		}
		row = append(row, className)
		t.AppendRow(row)
	}

	available, occupied := grid.Counts()
	t.SetCaption("Available: %d • Occupied: %d • Total: %d", available, occupied, available+occupied)
	return t.Render()
}
