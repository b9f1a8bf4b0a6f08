package tui

import (
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"stationplot/internal/plot"
	"stationplot/internal/station"
)

const frameInterval = time.Second / 30

type frameMsg time.Time

// updateAxes rebuilds both scales from the whole dataset so axes stay put
// while the state or date changes.
func (m *Model) updateAxes() {
	m.xScale = m.scaleFor(m.xVar)
	m.yScale = m.scaleFor(m.yVar)
}

func (m *Model) scaleFor(v station.Variable) plot.Linear {
	if m.ds == nil {
		return plot.NewLinear(0, 1, 0, 1)
	}
	lo, hi, ok := m.ds.Extent(v)
	if !ok {
		return plot.NewLinear(0, 1, 0, 1)
	}
	return plot.NewLinear(lo, hi, 0, 1)
}

// updateVis filters the dataset for the current state and date, recolors the
// stations and joins the result into the scene.
func (m *Model) updateVis() {
	m.current, m.exact = nil, false
	if m.ds != nil {
		m.current, m.exact = m.ds.Select(m.state, m.date)
	}
	m.stations = station.Stations(m.current)
	m.palette.SetDomain(m.stations)

	marks := make([]plot.Mark, 0, len(m.current))
	for i, r := range m.current {
		x := m.xScale.Map(r.Value(m.xVar))
		y := m.yScale.Map(r.Value(m.yVar))
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		marks = append(marks, plot.Mark{Key: r.Station, X: x, Y: y, Color: m.palette.Color(r.Station), Ref: i})
	}
	m.scene.Join(marks)

	if m.focus != "" && !contains(m.stations, m.focus) {
		m.focus, m.focusByHover = "", false
	}
	m.hoverID = ""

	switch {
	case m.ds == nil:
		m.status = "no dataset loaded"
	case len(m.current) == 0:
		m.status = fmt.Sprintf("no readings for %s", m.state)
	case !m.exact:
		m.status = fmt.Sprintf("no %s readings on %s; showing all %d", m.state, m.date, len(m.current))
	default:
		m.status = fmt.Sprintf("%s %s: %d readings, %d stations", m.state, m.date, len(m.current), len(m.stations))
	}
	if skipped := len(m.current) - len(marks); skipped > 0 {
		m.status += fmt.Sprintf(" (%d missing %s/%s)", skipped, m.xVar, m.yVar)
	}
	m.log.Debug("selection bound",
		"state", m.state, "date", m.date.Key(), "x", m.xVar, "y", m.yVar,
		"records", len(m.current), "points", len(marks), "exact", m.exact)

	if m.showAttrs {
		m.refreshAttrs()
	}
}

// redraw re-runs the axes and the data binding, then keeps frames coming
// while points are in flight.
func (m *Model) redraw() tea.Cmd {
	m.updateAxes()
	m.updateVis()
	return m.animate()
}

func (m *Model) animate() tea.Cmd {
	if m.ticking || !m.scene.Animating() {
		return nil
	}
	m.ticking = true
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
