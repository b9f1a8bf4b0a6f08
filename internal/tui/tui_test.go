package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stationplot/internal/config"
	"stationplot/internal/station"
)

const testCSV = `station,state,latitude,longitude,elevation,date,TMIN,TMAX,TAVG,AWND,WDF5,WSF5,SNOW,SNWD,PRCP
BIRMINGHAM AP,AL,33.56,-86.74,187.5,20170101,10.6,22.8,16.7,2.6,190,8.9,0,0,0.3
MOBILE RGNL AP,AL,30.68,-88.24,65.2,20170101,14.4,23.3,18.9,3.1,180,9.8,,,12.4
BIRMINGHAM AP,AL,33.56,-86.74,187.5,20170102,11.1,20.0,15.6,1.9,200,7.2,0,0,4.1
ANCHORAGE INTL AP,AK,61.17,-150.02,36.6,20170101,-18.2,-9.9,-14.1,1.2,40,6.3,0,310,0
`

func newTestModel(t *testing.T) (Model, *clockwork.FakeClock) {
	t.Helper()
	ds, err := station.Parse(strings.NewReader(testCSV))
	require.NoError(t, err)
	clock := clockwork.NewFakeClockAt(time.Date(2017, time.January, 1, 12, 0, 0, 0, time.UTC))
	m := New(ds, config.Default(), WithClock(clock))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model), clock
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	var next tea.Model = m
	for _, msg := range msgs {
		next, cmd = next.Update(msg)
	}
	return next.(Model), cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewBindsInitialSelection(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Equal(t, station.Elevation, m.xVar)
	assert.Equal(t, station.TAvg, m.yVar)
	assert.Equal(t, "AL", m.state)
	assert.True(t, m.exact)
	assert.Equal(t, []string{"BIRMINGHAM AP", "MOBILE RGNL AP"}, m.stations)
	assert.Equal(t, "AL Jan 01: 2 readings, 2 stations", m.status)
	assert.Len(t, m.scene.Frame(), 2)
}

func TestDateKeysAndFallback(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "Jan 02", m.date.String())
	assert.True(t, m.exact)
	assert.Equal(t, []string{"BIRMINGHAM AP"}, m.stations)

	m, _ = send(t, m, keyRunes("]"))
	assert.Equal(t, "Feb 02", m.date.String())
	assert.False(t, m.exact)
	assert.Len(t, m.current, 3, "falls back to every AL reading")
	assert.Contains(t, m.status, "no AL readings on Feb 02")
	assert.Contains(t, m.View(), "no readings that day")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, station.FirstDay, m.date)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, station.LastDay, m.date)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyHome}, keyRunes("l"))
	assert.Equal(t, "Jan 02", m.date.String())
	m, _ = send(t, m, keyRunes("h"))
	assert.Equal(t, station.FirstDay, m.date)
	m, _ = send(t, m, keyRunes("h"))
	assert.Equal(t, station.FirstDay, m.date, "stays within the year")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, "Feb 01", m.date.String())
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyPgDown}, tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, "Feb 01", m.date.String())
	m, _ = send(t, m, keyRunes("["))
	assert.Equal(t, station.FirstDay, m.date)
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)
	require.True(t, m.helpVisible)
	assert.Contains(t, m.View(), "x var")

	m, _ = send(t, m, keyRunes("?"))
	assert.False(t, m.helpVisible)
	assert.NotContains(t, m.View(), "x var")

	m, _ = send(t, m, keyRunes("?"))
	assert.Contains(t, m.View(), "x var")
}

func TestMissingValuesAreNotDrawn(t *testing.T) {
	data := `station,state,date,elevation,TAVG
BIRMINGHAM AP,AL,20170101,187.5,16.7
MOBILE RGNL AP,AL,20170101,65.2,
HUNTSVILLE INTL,AL,20170101,190.2,n/a
`
	ds, err := station.Parse(strings.NewReader(data))
	require.NoError(t, err)
	m := New(ds, config.Default(), WithClock(clockwork.NewFakeClock()))

	assert.Len(t, m.current, 3)
	assert.Len(t, m.scene.Frame(), 1)
	assert.Equal(t, "BIRMINGHAM AP", m.scene.Frame()[0].Key)
	assert.Equal(t, "AL Jan 01: 3 readings, 3 stations (2 missing elevation/TAVG)", m.status)
	assert.Len(t, m.stations, 3, "stations without a point keep their legend entry")
}

func TestLegendOverflow(t *testing.T) {
	var b strings.Builder
	b.WriteString("station,state,date,elevation,TAVG\n")
	for i := 0; i < 20; i++ {
		fmt.Fprintf(&b, "STATION %02d,AL,20170101,%d,%d\n", i, 100+i, i)
	}
	ds, err := station.Parse(strings.NewReader(b.String()))
	require.NoError(t, err)
	m, _ := send(t, New(ds, config.Default(), WithClock(clockwork.NewFakeClock())), tea.WindowSizeMsg{Width: 100, Height: 40})

	l := m.layout()
	assert.Len(t, l.legend.Items, 17)
	assert.Equal(t, 3, l.legendMore)
	assert.Contains(t, m.View(), "+3 more")

	col, row := l.legend.Cell(17)
	_, ok := l.legend.Hit(col*l.legend.ColWidth(), row)
	assert.False(t, ok, "the marker is not a station")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "STATION 19", m.focus, "hidden stations are still reachable with tab")
}

func TestStatePicker(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, keyRunes("s"))
	require.Equal(t, pickState, m.picking)
	assert.Equal(t, 0, m.l.Index(), "current state is preselected")
	assert.Contains(t, m.View(), "State")

	m.l.Select(1) // AK
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, pickNone, m.picking)
	assert.Equal(t, "AK", m.state)
	assert.Equal(t, []string{"ANCHORAGE INTL AP"}, m.stations)

	m, _ = send(t, m, keyRunes("s"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, pickNone, m.picking)
	assert.Equal(t, "AK", m.state, "esc cancels")
}

func TestVariablePickerAnimates(t *testing.T) {
	m, clock := newTestModel(t)
	before := m.scene.Frame()

	m, _ = send(t, m, keyRunes("x"))
	require.Equal(t, pickX, m.picking)
	for i, v := range station.Options() {
		if v == station.TMin {
			m.l.Select(i)
		}
	}
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, station.TMin, m.xVar)
	require.NotNil(t, cmd, "a transition starts ticking")
	assert.True(t, m.ticking)

	after := m.scene.Frame()
	require.Len(t, after, len(before))
	assert.Equal(t, before[0].X, after[0].X, "points start where they were")

	clock.Advance(2 * time.Second)
	m, cmd = send(t, m, frameMsg(clock.Now()))
	assert.Nil(t, cmd)
	assert.False(t, m.ticking)
	assert.NotEqual(t, before[0].X, m.scene.Frame()[0].X)
	assert.Contains(t, m.View(), "Minimum Temperature (°C)")
}

func TestHoverShowsTooltip(t *testing.T) {
	m, _ := newTestModel(t)
	l := m.layout()

	var target string
	var x, y int
	for _, p := range m.scene.Frame() {
		if p.Key == "MOBILE RGNL AP" {
			mx, my := l.micro(p.X, p.Y)
			target, x, y = p.ID, int(mx/2), int(my/4)+l.blockY
		}
	}
	require.NotEmpty(t, target)

	m, _ = send(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion})
	assert.Equal(t, target, m.hoverID)
	view := m.View()
	assert.Contains(t, view, "Station: MOBILE RGNL AP")
	assert.Contains(t, view, "Elevation: 65.2")
	assert.Contains(t, view, "Avg Temp: 18.9")

	m, _ = send(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	assert.Empty(t, m.hoverID)
	assert.NotContains(t, m.View(), "Station:")
}

func TestLegendHoverAndCycle(t *testing.T) {
	m, _ := newTestModel(t)
	l := m.layout()

	m, _ = send(t, m, tea.MouseMsg{X: l.legendX + l.legend.ColWidth() + 1, Y: l.legendY, Action: tea.MouseActionMotion})
	assert.Equal(t, "MOBILE RGNL AP", m.focus)

	m, _ = send(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	assert.Empty(t, m.focus, "leaving the legend restores every station")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "BIRMINGHAM AP", m.focus)
	m, _ = send(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	assert.Equal(t, "BIRMINGHAM AP", m.focus, "keyboard focus survives mouse motion")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab})
	assert.Empty(t, m.focus, "cycling past the end clears")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "MOBILE RGNL AP", m.focus)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.focus)
}

func TestSliderClick(t *testing.T) {
	m, _ := newTestModel(t)
	l := m.layout()

	m, _ = send(t, m, tea.MouseMsg{X: l.sliderX + l.sliderW - 1, Y: l.sliderRow, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, station.LastDay, m.date)

	m, _ = send(t, m, tea.MouseMsg{X: l.sliderX, Y: l.sliderRow, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, station.FirstDay, m.date)
}

func TestAttrsAndInspect(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, keyRunes("a"))
	require.True(t, m.showAttrs)
	assert.Len(t, m.tbl.Rows(), 2)
	assert.Equal(t, "MOBILE RGNL AP", m.tbl.Rows()[1][1])
	assert.Equal(t, "–", m.tbl.Rows()[1][11], "missing snowfall")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showAttrs)

	m, _ = send(t, m, keyRunes("i"))
	assert.Contains(t, m.inspectPopup, "records: 4  stations: 3")
	assert.Contains(t, m.inspectPopup, "states: 2 (AK AL)")
	assert.Contains(t, m.View(), "selection: AL Jan 01")
	m, _ = send(t, m, keyRunes("i"))
	assert.Empty(t, m.inspectPopup)
}

func TestLoadPath(t *testing.T) {
	m, _ := newTestModel(t)

	assert.False(t, m.loadPath(filepath.Join(t.TempDir(), "missing.csv")))
	assert.Contains(t, m.status, "load error")
	assert.Equal(t, 4, m.ds.Len(), "failed loads keep the current dataset")

	dir := t.TempDir()
	path := filepath.Join(dir, "tx.csv")
	data := "station,state,date,elevation,TAVG\nAUSTIN,TX,20170101,150,10\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	m.cwd = dir
	m, _ = send(t, m, keyRunes("o"))
	require.Equal(t, pickFile, m.picking)
	require.Len(t, m.l.Items(), 1)
	m.state = "TX"
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, path, m.selPath)
	assert.Equal(t, []string{"AUSTIN"}, m.stations)
	assert.True(t, strings.HasPrefix(m.status, "loaded: tx.csv  records=1"))
}

func TestSnapshotAndQuit(t *testing.T) {
	ds, err := station.Parse(strings.NewReader(testCSV))
	require.NoError(t, err)
	cfg := config.Default()
	cfg.Transition = 0

	out := Snapshot(New(ds, cfg), 100, 40)
	assert.Contains(t, out, "stationplot")
	assert.Contains(t, out, "Elevation (m)")
	assert.Contains(t, out, "Date: Jan 01")
	assert.Contains(t, out, "Dec")
	assert.Contains(t, out, "BIRMINGHAM AP")
	assert.Contains(t, out, "MOBILE RGNL AP")
	assert.Equal(t, "", New(ds, cfg).View(), "no size yet")

	m, _ := newTestModel(t)
	_, cmd := send(t, m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
