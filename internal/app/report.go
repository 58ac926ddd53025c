package app

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/specialistvlad/cellgrid/internal/workbook"
)

// report prints the closures (when enabled), the rejected assignments and
// every non-empty cell with its content and value.
func (a *App) report(steps []workbook.Step) error {
	tw := tabwriter.NewWriter(a.outW, 0, 4, 2, ' ', 0)

	if a.config.ShowClosure {
		fmt.Fprintln(tw, "ASSIGNMENT\tCLOSURE")
		for _, s := range steps {
			if s.Err != nil {
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\n", s.Name, strings.Join(s.Closure, " "))
		}
		fmt.Fprintln(tw)
	}

	if failed := workbook.Failed(steps); len(failed) > 0 {
		fmt.Fprintln(tw, "REJECTED\tAT\tERROR")
		for _, s := range failed {
			fmt.Fprintf(tw, "%s\t%s\t%v\n", s.Name, s.Range, s.Err)
		}
		fmt.Fprintln(tw)
	}

	fmt.Fprintln(tw, "CELL\tCONTENT\tVALUE")
	for name := range a.sheet.NonemptyCellNames() {
		content, err := a.sheet.Content(name)
		if err != nil {
			return err
		}
		value, err := a.sheet.Value(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", name, content, value)
	}

	return tw.Flush()
}
