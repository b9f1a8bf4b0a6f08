package tui

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"stationplot/internal/plot"
)

// Point sizes in micro-pixels. Emphasized points are drawn larger, the
// terminal stand-in for a stroke.
const (
	pointRadius    = 1.5
	emphasisRadius = 2.5
	hoverReach     = 2.0 // cells
)

// renderBlock draws the axes, the points and the tooltip onto one canvas
// covering the y gutter, the plot and the x axis rows.
func (m Model) renderBlock(l layout) *plot.Canvas {
	c := plot.NewCanvas(l.width, l.blockH)
	m.drawAxes(c, l)
	frame := m.scene.Frame()
	m.drawPoints(c, l, frame)
	m.drawTooltip(c, l, frame)
	return c
}

func (m Model) drawAxes(c *plot.Canvas, l layout) {
	axisX := l.plotX - 1
	for row := 0; row < l.plotH; row++ {
		c.Text(axisX, row, "│", axisCol, false)
	}
	c.Text(axisX, l.plotH, "└"+strings.Repeat("─", l.plotW), axisCol, false)

	yCount := max(2, l.plotH/3)
	yFmt := m.yScale.TickFormat(yCount)
	for _, v := range m.yScale.Ticks(yCount) {
		_, my := l.micro(0, m.yScale.Map(v))
		row := int(my) / 4
		c.Text(axisX, row, "┤", axisCol, false)
		lbl := yFmt(v)
		c.Text(axisX-utf8.RuneCountInString(lbl), row, lbl, labelCol, false)
	}

	xCount := max(2, l.plotW/12)
	xFmt := m.xScale.TickFormat(xCount)
	lastEnd := -1
	for _, v := range m.xScale.Ticks(xCount) {
		mx, _ := l.micro(m.xScale.Map(v), 0)
		col := int(mx) / 2
		c.Text(col, l.plotH, "┬", axisCol, false)
		lbl := xFmt(v)
		start := col - utf8.RuneCountInString(lbl)/2
		if start <= lastEnd {
			continue
		}
		c.Text(start, l.plotH+1, lbl, labelCol, false)
		lastEnd = start + utf8.RuneCountInString(lbl)
	}

	xTitle := m.xVar.AxisLabel()
	c.Text(l.plotX+(l.plotW-utf8.RuneCountInString(xTitle))/2, l.plotH+2, xTitle, labelCol, true)

	yTitle := []rune(m.yVar.AxisLabel())
	start := max(0, (l.plotH-len(yTitle))/2)
	for i, r := range yTitle {
		if start+i >= l.plotH {
			break
		}
		c.Text(0, start+i, string(r), labelCol, true)
	}
}

// drawPoints paints faded points first and emphasized ones last so the
// highlighted station stays on top.
func (m Model) drawPoints(c *plot.Canvas, l layout, frame []plot.Point) {
	const (
		faded = iota
		normal
		emphasized
	)
	rank := func(p plot.Point) int {
		switch {
		case p.ID == m.hoverID || (m.focus != "" && p.Key == m.focus):
			return emphasized
		case m.focus != "":
			return faded
		}
		return normal
	}
	for pass := faded; pass <= emphasized; pass++ {
		for _, p := range frame {
			if rank(p) != pass {
				continue
			}
			r, color := pointRadius, plot.Blend(p.Color, canvasBg, plot.OpacityNormal)
			switch pass {
			case faded:
				color = plot.Blend(p.Color, canvasBg, plot.OpacityFaded)
			case emphasized:
				r, color = emphasisRadius, p.Color
			}
			mx, my := l.micro(p.X, p.Y)
			c.Disk(mx, my, r*p.Radius, color)
		}
	}
}

func (m Model) drawTooltip(c *plot.Canvas, l layout, frame []plot.Point) {
	p, ok := findPoint(frame, m.hoverID)
	if !ok || p.Ref >= len(m.current) {
		return
	}
	rec := m.current[p.Ref]
	lines := []string{
		"Station: " + rec.Station,
		fmt.Sprintf("%s: %s", m.xVar.Label(), formatValue(rec.Value(m.xVar))),
		fmt.Sprintf("%s: %s", m.yVar.Label(), formatValue(rec.Value(m.yVar))),
	}
	inner := 0
	for _, s := range lines {
		inner = max(inner, utf8.RuneCountInString(s))
	}
	w, h := inner+4, len(lines)+2

	x := m.hoverCellX + 2
	if x+w > l.width {
		x = m.hoverCellX - w - 1
	}
	x = max(0, x)
	y := min(max(0, m.hoverCellY-1), max(0, l.blockH-h))

	c.Text(x, y, "╭"+strings.Repeat("─", w-2)+"╮", labelCol, false)
	for i, s := range lines {
		pad := strings.Repeat(" ", inner-utf8.RuneCountInString(s))
		c.Text(x, y+1+i, "│ "+s+pad+" │", labelCol, i == 0)
	}
	c.Text(x, y+h-1, "╰"+strings.Repeat("─", w-2)+"╯", labelCol, false)
}

// nearestPoint finds the bound point closest to a block cell, within reach.
// Rows count double since terminal cells are about twice as tall as wide.
func (m Model) nearestPoint(l layout, cx, cy int) (string, bool) {
	best, id := math.MaxFloat64, ""
	for _, p := range m.scene.Frame() {
		if p.Exiting {
			continue
		}
		mx, my := l.micro(p.X, p.Y)
		dx := mx/2 - (float64(cx) + 0.5)
		dy := (my/4 - (float64(cy) + 0.5)) * 2
		if d := dx*dx + dy*dy; d < best {
			best, id = d, p.ID
		}
	}
	return id, id != "" && best <= hoverReach*hoverReach
}

func findPoint(frame []plot.Point, id string) (plot.Point, bool) {
	if id == "" {
		return plot.Point{}, false
	}
	for _, p := range frame {
		if p.ID == id && !p.Exiting {
			return p, true
		}
	}
	return plot.Point{}, false
}
