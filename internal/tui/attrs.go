package tui

import (
	"math"
	"strconv"

	table "github.com/charmbracelet/bubbles/table"

	"stationplot/internal/station"
)

// refreshAttrs rebuilds the detail table from the bound records.
func (m *Model) refreshAttrs() {
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "station", Width: 24},
		{Title: "date", Width: 8},
	}
	for _, v := range station.Columns() {
		cols = append(cols, table.Column{Title: string(v), Width: max(len(v)+1, 8)})
	}
	rows := make([]table.Row, 0, len(m.current))
	for i, r := range m.current {
		row := table.Row{strconv.Itoa(i + 1), r.Station, r.Date}
		for _, v := range station.Columns() {
			row = append(row, formatValue(r.Value(v)))
		}
		rows = append(rows, row)
	}
	// rows must never be wider than the column set, even for one render
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "–"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
