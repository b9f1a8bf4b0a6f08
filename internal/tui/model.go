package tui

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"stationplot/internal/config"
	"stationplot/internal/plot"
	"stationplot/internal/station"
)

type Model struct {
	width  int
	height int

	helpVisible bool
	status      string

	log   *slog.Logger
	clock clockwork.Clock

	// Data
	ds      *station.Dataset
	cwd     string
	selPath string

	// Selection
	xVar  station.Variable
	yVar  station.Variable
	state string
	date  station.MonthDay

	// Bound records and the scales they are drawn with
	current  []station.Record
	exact    bool
	stations []string
	xScale   plot.Linear
	yScale   plot.Linear
	scene    *plot.Scene
	palette  *plot.Palette
	ticking  bool

	// Picker
	picking pickKind
	l       list.Model

	// attributes table
	showAttrs bool
	tbl       table.Model

	// inspect popup
	inspectPopup string

	// hover state
	hoverID      string
	hoverCellX   int
	hoverCellY   int
	focus        string
	focusByHover bool

	keys   keyMap
	help   help.Model
	slider progress.Model
}

type Option func(*Model)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) { m.log = l }
}

// WithClock sets the clock that drives transitions.
func WithClock(c clockwork.Clock) Option {
	return func(m *Model) { m.clock = c }
}

// New builds the model around an already loaded dataset.
func New(ds *station.Dataset, cfg config.Config, opts ...Option) Model {
	m := Model{
		helpVisible: true,
		status:      "stationplot ready",
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		clock:       clockwork.NewRealClock(),
		ds:          ds,
		xVar:        cfg.X,
		yVar:        cfg.Y,
		state:       cfg.State,
		date:        cfg.Date,
		palette:     plot.NewPalette(plot.Set2),
		keys:        defaultKeys(),
		help:        help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.scene = plot.NewScene(m.clock, cfg.Transition)
	if ds != nil {
		m.selPath = ds.Source
	}
	m.cwd, _ = os.Getwd()

	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)

	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)

	m.slider = progress.New(progress.WithSolidFill(string(accentFg)), progress.WithoutPercentage())

	m.updateAxes()
	m.updateVis()
	return m
}

func (m Model) Init() tea.Cmd { return nil }
