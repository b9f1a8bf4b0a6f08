package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"stationplot/internal/config"
)

// New builds the application logger. Text goes through tint, json through
// slog's JSON handler.
func New(w io.Writer, cfg config.Config) *slog.Logger {
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel})
	} else {
		h = tint.NewHandler(w, &tint.Options{
			Level:      cfg.LogLevel,
			TimeFormat: time.Kitchen,
			NoColor:    !isTerminal(w),
		})
	}
	return slog.New(h).With("app", "stationplot")
}

// Open returns the log destination for cfg. The terminal belongs to the UI,
// so without a log file everything is discarded.
func Open(cfg config.Config) (io.WriteCloser, error) {
	if cfg.LogFile == "" {
		return nopCloser{io.Discard}, nil
	}
	return os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
