package workbook

import (
	"context"

	"github.com/specialistvlad/cellgrid/internal/ctxlog"
)

// Target is what Apply writes assignments to; spreadsheet.Store and
// spreadsheet.Synchronized both satisfy it.
type Target interface {
	SetInput(name, raw string) ([]string, error)
}

// Step is the outcome of one assignment: the recomputed closure, or the
// error that rejected it.
type Step struct {
	Assignment
	Closure []string
	Err     error
}

// Apply performs every assignment in order. A rejected assignment is recorded
// in its Step and does not stop the rest. Apply stops early only when ctx is
// done, returning the steps performed so far and the context error.
func (w *Workbook) Apply(ctx context.Context, target Target) ([]Step, error) {
	logger := ctxlog.FromContext(ctx)

	steps := make([]Step, 0, len(w.Assignments))
	for _, a := range w.Assignments {
		if err := ctx.Err(); err != nil {
			return steps, err
		}

		closure, err := target.SetInput(a.Name, a.Input)
		if err != nil {
			logger.Warn("Assignment rejected.", "cell", a.Name, "input", a.Input, "at", a.Range.String(), "error", err)
		} else {
			logger.Debug("Assignment applied.", "cell", a.Name, "closure", closure)
		}
		steps = append(steps, Step{Assignment: a, Closure: closure, Err: err})
	}
	return steps, nil
}

// Failed returns the steps that were rejected.
func Failed(steps []Step) []Step {
	var failed []Step
	for _, s := range steps {
		if s.Err != nil {
			failed = append(failed, s)
		}
	}
	return failed
}
