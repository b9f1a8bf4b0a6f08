package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"stationplot/internal/config"
	"stationplot/internal/logging"
	"stationplot/internal/station"
	"stationplot/internal/tui"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	out, err := logging.Open(*cfg)
	if err != nil {
		slog.Error("failed to open log file", "path", cfg.LogFile, "error", err)
		os.Exit(1)
	}
	defer out.Close()
	logger := logging.New(out, *cfg)

	ds, err := station.Load(cfg.DataPath)
	if err != nil {
		logger.Error("failed to load dataset", "path", cfg.DataPath, "error", err)
		fmt.Fprintln(os.Stderr, "stationplot:", err)
		os.Exit(1)
	}
	logger.Info("dataset loaded", "path", cfg.DataPath, "records", ds.Len())

	m := tui.New(ds, *cfg, tui.WithLogger(logger))

	if cfg.Snapshot {
		fmt.Println(tui.Snapshot(m, cfg.Width, cfg.Height))
		return
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		logger.Error("program exited", "error", err)
		fmt.Fprintln(os.Stderr, "stationplot:", err)
		os.Exit(1)
	}
}
