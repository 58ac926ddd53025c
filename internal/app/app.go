package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/cellgrid/internal/spreadsheet"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	sheet  *spreadsheet.Synchronized
}

// NewApp is the constructor for the main application. It returns an App with
// its own isolated logger and an empty spreadsheet.
func NewApp(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		sheet:  spreadsheet.NewSynchronized(spreadsheet.WithLogger(logger)),
	}
}

// Sheet returns the application's spreadsheet. This is primarily for testing.
func (a *App) Sheet() spreadsheet.Sheet {
	return a.sheet
}
