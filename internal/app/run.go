package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/cellgrid/internal/ctxlog"
	"github.com/specialistvlad/cellgrid/internal/workbook"
)

// ErrRejected is returned by Run in strict mode when any assignment was
// rejected.
var ErrRejected = errors.New("assignments rejected")

// Run loads the configured workbook, applies it to the spreadsheet and writes
// the report.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	wb, err := workbook.Load(ctx, a.config.WorkbookPath)
	if err != nil {
		return fmt.Errorf("failed to load workbook: %w", err)
	}
	a.logger.Info("Workbook loaded.", "files", len(wb.Files), "assignments", len(wb.Assignments))

	steps, err := wb.Apply(ctx, a.sheet)
	if err != nil {
		return fmt.Errorf("applying workbook: %w", err)
	}
	failed := workbook.Failed(steps)
	a.logger.Info("Workbook applied.", "applied", len(steps)-len(failed), "rejected", len(failed))

	if err := a.report(steps); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if a.config.Strict && len(failed) > 0 {
		return fmt.Errorf("%w: %d of %d", ErrRejected, len(failed), len(steps))
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
