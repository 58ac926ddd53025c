package cli

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/cellgrid/internal/app"
	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const long = `cellgrid - a dependency-tracking spreadsheet engine.

Loads the cell assignments of a workbook (a single .hcl file or a directory
of .hcl files), applies them in order and prints every non-empty cell with
its content and value.`

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var (
		config      *app.Config
		logFormat   string
		logLevel    string
		showClosure bool
		strict      bool
	)

	cmd := &cobra.Command{
		Use:           "cellgrid [flags] WORKBOOK_PATH",
		Short:         "Evaluate a workbook of spreadsheet cells",
		Long:          long,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				slog.Debug("No workbook path provided, printing usage and exiting.")
				return cmd.Help()
			}

			cfg, err := app.NewConfig(app.Config{
				WorkbookPath: args[0],
				LogFormat:    strings.ToLower(logFormat),
				LogLevel:     strings.ToLower(logLevel),
				ShowClosure:  showClosure,
				Strict:       strict,
			})
			if err != nil {
				return err
			}
			config = cfg
			return nil
		},
	}
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	flags := cmd.Flags()
	flags.StringVar(&logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.StringVar(&logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.BoolVar(&showClosure, "show-closure", false, "Print the cells recomputed by every assignment.")
	flags.BoolVar(&strict, "strict", false, "Exit with an error if any assignment is rejected.")

	if err := cmd.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return nil, false, exitErr
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if config == nil {
		// Help was requested or no path was given.
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
