package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"stationplot/internal/plot"
	"stationplot/internal/station"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	l := m.layout()
	fit := lipgloss.NewStyle().MaxWidth(l.width)

	header := titleStyle.Render(" stationplot ─ US weather stations, 2017 ")

	var block string
	switch {
	case m.picking != pickNone:
		m.l.SetSize(32, max(4, l.blockH-2))
		block = lipgloss.Place(l.width, l.blockH, lipgloss.Center, lipgloss.Center, boxStyle.Render(m.l.View()))
	case m.showAttrs:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 2
		}
		maxW := min(l.width, max(32, colW+4))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(max(3, l.blockH-5))
		attrsBox := boxStyle.Width(maxW).Render(m.tbl.View())
		block = lipgloss.Place(l.width, l.blockH, lipgloss.Center, lipgloss.Center, attrsBox)
	case m.inspectPopup != "":
		box := boxStyle.MaxWidth(min(60, l.width)).Render(m.inspectPopup)
		block = lipgloss.Place(l.width, l.blockH, lipgloss.Center, lipgloss.Center, box)
	default:
		block = m.renderBlock(l).String()
	}

	m.help.Width = l.width
	help := ""
	if m.helpVisible {
		help = m.help.ShortHelpView(m.keys.ShortHelp())
	}
	status := dimStyle.Render(" " + m.status + " ")

	parts := []string{
		fit.Render(header),
		fit.Render(m.renderControls()),
		m.renderSlider(l, fit),
		block,
	}
	if legend := m.renderLegend(l); legend != "" {
		parts = append(parts, legend)
	}
	parts = append(parts, fit.Render(status), fit.Render(help))
	return appStyle.Width(l.width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) renderControls() string {
	item := func(k, name, val string) string {
		return dimStyle.Render(k) + " " + name + " " + valueStyle.Render(val)
	}
	parts := []string{
		item("x", "X:", m.xVar.Label()),
		item("y", "Y:", m.yVar.Label()),
		item("s", "State:", m.state),
	}
	line := " " + strings.Join(parts, "   ")
	if m.ds != nil && !m.exact && len(m.current) > 0 {
		line += "   " + warnStyle.Render("no readings that day, showing all dates")
	}
	return line
}

func (m Model) renderSlider(l layout, fit lipgloss.Style) string {
	days := station.DaysInYear()
	day := m.date.DayOfYear()
	prefix := " Date: " + m.date.String()
	prefix += strings.Repeat(" ", max(0, l.sliderX-len(prefix)))

	m.slider.Width = l.sliderW
	pct := float64(day-1) / float64(days-1)
	bar := prefix + m.slider.ViewAs(pct)

	ticks := []rune(strings.Repeat(" ", l.sliderX+l.sliderW))
	lastEnd := -1
	for _, md := range station.MonthStarts() {
		col := l.sliderCol(md.DayOfYear(), days)
		lbl := []rune(md.String()[:3])
		if col <= lastEnd || col+len(lbl) > len(ticks) {
			continue
		}
		copy(ticks[col:], lbl)
		lastEnd = col + len(lbl)
	}
	return lipgloss.JoinVertical(lipgloss.Left, fit.Render(bar), fit.Render(dimStyle.Render(string(ticks))))
}

func (m Model) renderLegend(l layout) string {
	rows := l.legend.Rows()
	if rows == 0 {
		return ""
	}
	c := plot.NewCanvas(l.width, rows)
	colW := l.legend.ColWidth()
	for i, name := range l.legend.Items {
		col, row := l.legend.Cell(i)
		x := l.legendX + col*colW
		color := m.palette.Color(name)
		if m.focus != "" && name != m.focus {
			color = plot.Blend(color, canvasBg, plot.OpacityFaded)
		}
		c.Text(x, row, "■", color, false)
		label := []rune(name)
		if len(label) > colW-3 {
			label = label[:max(0, colW-3)]
		}
		c.Text(x+2, row, string(label), labelCol, name == m.focus)
	}
	if l.legendMore > 0 {
		col, row := l.legend.Cell(len(l.legend.Items))
		c.Text(l.legendX+col*colW, row, fmt.Sprintf("+%d more", l.legendMore), axisCol, false)
	}
	return c.String()
}

// Snapshot renders a single frame of m at the given terminal size.
func Snapshot(m Model, width, height int) string {
	next, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return next.View()
}
