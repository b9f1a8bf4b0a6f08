package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"stationplot/internal/station"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.hoverID = ""
	case frameMsg:
		if m.scene.Animating() {
			return m, tick()
		}
		m.ticking = false
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.picking != pickNone {
		// While filtering, every key belongs to the list
		if m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "esc":
			m.picking = pickNone
			return m, nil
		case "enter":
			kind := m.picking
			if !m.applyPick() {
				return m, nil
			}
			cmd := m.redraw()
			if kind == pickFile {
				m.status = m.loadedStatus() + "  " + m.status
			}
			return m, cmd
		case "ctrl+c":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}

	if m.showAttrs {
		switch {
		case key.Matches(msg, m.keys.Attrs), key.Matches(msg, m.keys.Clear):
			m.showAttrs = false
			return m, nil
		case msg.String() == "ctrl+c":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.XVar):
		m.openPicker(pickX)
	case key.Matches(msg, m.keys.YVar):
		m.openPicker(pickY)
	case key.Matches(msg, m.keys.State):
		m.openPicker(pickState)
	case key.Matches(msg, m.keys.Open):
		m.openPicker(pickFile)
	case key.Matches(msg, m.keys.PrevDay):
		return m.setDate(m.date.AddDays(-1))
	case key.Matches(msg, m.keys.NextDay):
		return m.setDate(m.date.AddDays(1))
	case key.Matches(msg, m.keys.PrevMonth):
		return m.setDate(m.date.AddMonths(-1))
	case key.Matches(msg, m.keys.NextMonth):
		return m.setDate(m.date.AddMonths(1))
	case key.Matches(msg, m.keys.FirstDay):
		return m.setDate(station.FirstDay)
	case key.Matches(msg, m.keys.LastDay):
		return m.setDate(station.LastDay)
	case key.Matches(msg, m.keys.NextFocus):
		m.cycleFocus(1)
	case key.Matches(msg, m.keys.PrevFocus):
		m.cycleFocus(-1)
	case key.Matches(msg, m.keys.Clear):
		m.focus, m.focusByHover = "", false
		m.inspectPopup = ""
	case key.Matches(msg, m.keys.Attrs):
		m.showAttrs = true
		m.inspectPopup = ""
		m.refreshAttrs()
		m.status = fmt.Sprintf("table: %d rows", len(m.current))
	case key.Matches(msg, m.keys.Inspect):
		if m.inspectPopup != "" {
			m.inspectPopup = ""
		} else {
			m.inspectPopup = m.inspect()
			m.status = "inspect popup"
		}
	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
	}
	return m, nil
}

func (m Model) setDate(md station.MonthDay) (tea.Model, tea.Cmd) {
	if md == m.date {
		return m, nil
	}
	m.date = md
	m.updateVis()
	return m, m.animate()
}

// cycleFocus moves the legend highlight through the bound stations; stepping
// past either end clears it.
func (m *Model) cycleFocus(step int) {
	m.focusByHover = false
	n := len(m.stations)
	if n == 0 {
		m.focus = ""
		return
	}
	i := -1
	for j, s := range m.stations {
		if s == m.focus {
			i = j
			break
		}
	}
	switch {
	case i == -1 && step > 0:
		i = 0
	case i == -1:
		i = n - 1
	default:
		i += step
	}
	if i < 0 || i >= n {
		m.focus = ""
		m.status = "legend: all stations"
		return
	}
	m.focus = m.stations[i]
	m.status = "legend: " + m.focus
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.picking != pickNone || m.showAttrs || m.inspectPopup != "" {
		return m, nil
	}
	l := m.layout()
	mouse := tea.MouseEvent(msg)

	if mouse.Action == tea.MouseActionPress && mouse.Button == tea.MouseButtonLeft && mouse.Y == l.sliderRow {
		if day, ok := l.sliderDay(mouse.X, station.DaysInYear()); ok {
			return m.setDate(station.FromDayOfYear(day))
		}
	}

	if bx, by, ok := l.inPlot(mouse.X, mouse.Y); ok {
		m.hoverCellX, m.hoverCellY = bx, by
		if id, ok := m.nearestPoint(l, bx, by); ok {
			m.hoverID = id
		} else {
			m.hoverID = ""
		}
	} else {
		m.hoverID = ""
	}

	if i, ok := l.legend.Hit(mouse.X-l.legendX, mouse.Y-l.legendY); ok {
		m.focus, m.focusByHover = l.legend.Items[i], true
	} else if m.focusByHover {
		m.focus, m.focusByHover = "", false
	}
	return m, nil
}

func (m Model) inspect() string {
	if m.ds == nil {
		return "no dataset loaded"
	}
	s := m.ds.Summary()
	name := filepath.Base(m.selPath)
	if m.selPath == "" {
		name = "<memory>"
	}
	selection := "exact day"
	if !m.exact {
		selection = "all dates (no readings that day)"
	}
	meta := []string{
		fmt.Sprintf("name: %s", name),
		fmt.Sprintf("path: %s", m.selPath),
		fmt.Sprintf("records: %d  stations: %d", s.Records, s.Stations),
		fmt.Sprintf("states: %d (%s)", len(s.States), strings.Join(s.States, " ")),
		fmt.Sprintf("dates: %s – %s", s.FirstDate, s.LastDate),
		fmt.Sprintf("selection: %s %s, %d readings, %s", m.state, m.date, len(m.current), selection),
		fmt.Sprintf("axes: %s × %s", m.xVar, m.yVar),
	}
	return strings.Join(meta, "\n")
}
