package tui

import (
	"math"

	"stationplot/internal/plot"
)

// Screen rows and columns around the plot canvas. View and mouse hit
// testing both go through layout so they always agree.
const (
	headerRows   = 1
	controlRows  = 1
	sliderRows   = 2
	axisRows     = 3
	footerRows   = 2
	gutterCols   = 10
	sliderPrefix = 14
	maxLegendRow = 6

	minWidth  = 40
	minHeight = 20

	// marks are inset by this many micro-pixels so full-size disks stay inside
	pointInset = 2
)

type layout struct {
	width, height int

	sliderRow, sliderX, sliderW int

	// plot block covers the canvas plus the y gutter and the x axis rows
	blockY, blockH int
	plotX, plotY   int
	plotW, plotH   int

	legend           plot.Legend
	legendX, legendY int
	legendMore       int // stations left out of the legend
}

func (m Model) layout() layout {
	l := layout{width: max(minWidth, m.width), height: max(minHeight, m.height)}
	l.sliderRow = headerRows + controlRows
	l.sliderX = sliderPrefix
	l.sliderW = max(10, l.width-l.sliderX-2)

	l.plotX = gutterCols
	l.plotW = max(10, l.width-l.plotX-2)

	legend := plot.NewLegend(m.stations, l.plotW)
	if rows := legend.Rows(); rows > maxLegendRow {
		// the last cell is kept for the "+N more" marker
		keep := maxLegendRow*plot.LegendColumns - 1
		l.legendMore = len(legend.Items) - keep
		legend.Items = legend.Items[:keep]
	}
	legendRows := legend.Rows()

	l.blockY = headerRows + controlRows + sliderRows
	l.plotY = l.blockY
	l.plotH = max(4, l.height-l.blockY-axisRows-legendRows-footerRows)
	l.blockH = l.plotH + axisRows

	l.legend = legend
	l.legendX = l.plotX
	l.legendY = l.blockY + l.blockH
	return l
}

// micro maps a normalized position to block micro-pixel coordinates.
func (l layout) micro(nx, ny float64) (float64, float64) {
	w, h := float64(l.plotW*2), float64(l.plotH*4)
	mx := float64(l.plotX*2) + pointInset + nx*(w-1-2*pointInset)
	my := pointInset + (1-ny)*(h-1-2*pointInset)
	return mx, my
}

// inPlot reports whether screen cell (x, y) is over the canvas and returns
// it relative to the plot block.
func (l layout) inPlot(x, y int) (int, int, bool) {
	if x < l.plotX || x >= l.plotX+l.plotW || y < l.plotY || y >= l.plotY+l.plotH {
		return 0, 0, false
	}
	return x, y - l.blockY, true
}

// sliderDay converts a click on the slider bar into a day of the year.
func (l layout) sliderDay(x, days int) (int, bool) {
	if x < l.sliderX || x >= l.sliderX+l.sliderW {
		return 0, false
	}
	frac := float64(x-l.sliderX) / float64(max(1, l.sliderW-1))
	return 1 + int(math.Round(frac*float64(days-1))), true
}

// sliderCol is the inverse of sliderDay.
func (l layout) sliderCol(day, days int) int {
	frac := float64(day-1) / float64(max(1, days-1))
	return l.sliderX + int(math.Round(frac*float64(l.sliderW-1)))
}
