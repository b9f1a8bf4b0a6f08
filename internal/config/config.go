package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"

	"stationplot/internal/plot"
	"stationplot/internal/station"
)

// CLI is the command-line grammar. Every flag can also come from the
// environment or a .env file in the working directory.
type CLI struct {
	Data string `arg:"" optional:"" default:"data/data.json" help:"Station data file (CSV or JSON array)." env:"STATIONPLOT_DATA"`

	X     string `default:"elevation" help:"Variable on the X axis." env:"STATIONPLOT_X"`
	Y     string `default:"TAVG" help:"Variable on the Y axis." env:"STATIONPLOT_Y"`
	State string `default:"AL" help:"Initial state code." env:"STATIONPLOT_STATE"`
	Date  string `default:"20170101" help:"Initial date (YYYYMMDD or YYYY-MM-DD, 2017)." env:"STATIONPLOT_DATE"`

	Transition time.Duration `default:"1s" help:"Point transition duration; 0 disables animation." env:"STATIONPLOT_TRANSITION"`

	LogFile   string `help:"Write logs to this file; logs are discarded when empty." env:"STATIONPLOT_LOG_FILE"`
	LogLevel  string `default:"info" enum:"debug,info,warn,error" help:"Log level." env:"STATIONPLOT_LOG_LEVEL"`
	LogFormat string `default:"text" enum:"text,json" help:"Log format." env:"STATIONPLOT_LOG_FORMAT"`

	Snapshot bool `help:"Render a single frame to stdout and exit." env:"STATIONPLOT_SNAPSHOT"`
	Width    int  `default:"100" help:"Snapshot width in cells." env:"STATIONPLOT_WIDTH"`
	Height   int  `default:"40" help:"Snapshot height in cells." env:"STATIONPLOT_HEIGHT"`
}

// Config is the validated, typed view of CLI.
type Config struct {
	DataPath   string
	X, Y       station.Variable
	State      string
	Date       station.MonthDay
	Transition time.Duration

	LogFile   string
	LogLevel  slog.Level
	LogFormat string

	Snapshot bool
	Width    int
	Height   int
}

// Load parses args (without the program name) into a Config.
func Load(args []string, options ...kong.Option) (*Config, error) {
	var cli CLI
	options = append([]kong.Option{
		kong.Name("stationplot"),
		kong.Description("Interactive scatter plot of US weather-station readings."),
		kong.Configuration(kongdotenv.ENVFileReader, ".env"),
	}, options...)
	parser, err := kong.New(&cli, options...)
	if err != nil {
		return nil, err
	}
	if _, err := parser.Parse(args); err != nil {
		return nil, err
	}
	return cli.Config()
}

// Config validates the parsed flags.
func (c CLI) Config() (*Config, error) {
	var errs []error
	x, err := station.ParseVariable(c.X)
	if err != nil {
		errs = append(errs, fmt.Errorf("x: %w", err))
	}
	y, err := station.ParseVariable(c.Y)
	if err != nil {
		errs = append(errs, fmt.Errorf("y: %w", err))
	}
	st, err := station.ParseState(c.State)
	if err != nil {
		errs = append(errs, fmt.Errorf("state: %w", err))
	}
	md, err := station.ParseDate(c.Date)
	if err != nil {
		errs = append(errs, fmt.Errorf("date: %w", err))
	}
	if c.Transition < 0 {
		errs = append(errs, errors.New("transition must not be negative"))
	}
	if strings.TrimSpace(c.Data) == "" {
		errs = append(errs, errors.New("data path is required"))
	}
	if c.Snapshot && (c.Width < 20 || c.Height < 10) {
		errs = append(errs, errors.New("snapshot needs at least 20x10 cells"))
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	transition := c.Transition
	if c.Snapshot {
		transition = 0
	}
	return &Config{
		DataPath:   c.Data,
		X:          x,
		Y:          y,
		State:      st,
		Date:       md,
		Transition: transition,
		LogFile:    c.LogFile,
		LogLevel:   level,
		LogFormat:  c.LogFormat,
		Snapshot:   c.Snapshot,
		Width:      c.Width,
		Height:     c.Height,
	}, nil
}

// Default is the configuration used when no flags are given.
func Default() Config {
	return Config{
		DataPath:   "data/data.json",
		X:          station.Elevation,
		Y:          station.TAvg,
		State:      station.States()[0],
		Date:       station.FirstDay,
		Transition: plot.DefaultDuration,
		LogLevel:   slog.LevelInfo,
		LogFormat:  "text",
		Width:      100,
		Height:     40,
	}
}
