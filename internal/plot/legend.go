package plot

// LegendColumns is the number of legend entries per row.
const LegendColumns = 3

// Legend lays out entries in a fixed number of equal-width columns.
type Legend struct {
	Items []string
	Width int
}

func NewLegend(items []string, width int) Legend {
	return Legend{Items: items, Width: width}
}

func (l Legend) Rows() int {
	return (len(l.Items) + LegendColumns - 1) / LegendColumns
}

func (l Legend) ColWidth() int {
	return max(1, l.Width/LegendColumns)
}

// Cell returns the column and row of entry i.
func (l Legend) Cell(i int) (col, row int) {
	return i % LegendColumns, i / LegendColumns
}

// Hit maps a cell relative to the legend origin to an entry index.
func (l Legend) Hit(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= l.ColWidth()*LegendColumns {
		return 0, false
	}
	i := y*LegendColumns + x/l.ColWidth()
	if i >= len(l.Items) {
		return 0, false
	}
	return i, true
}
