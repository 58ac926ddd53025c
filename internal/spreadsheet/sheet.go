package spreadsheet

import (
	"iter"

	"github.com/specialistvlad/cellgrid/internal/cell"
	"github.com/specialistvlad/cellgrid/internal/formula"
)

// Sheet is the operation surface shared by Store and Synchronized.
type Sheet interface {
	Content(name string) (cell.Content, error)
	Value(name string) (cell.Value, error)
	NonemptyCellNames() iter.Seq[string]
	DirectDependents(name string) ([]string, error)
	DirectDependees(name string) ([]string, error)

	SetContent(name string, c cell.Content) ([]string, error)
	SetText(name, text string) ([]string, error)
	SetNumber(name string, number float64) ([]string, error)
	SetFormula(name string, f *formula.Formula) ([]string, error)
	SetInput(name, raw string) ([]string, error)
}

var (
	_ Sheet = (*Store)(nil)
	_ Sheet = (*Synchronized)(nil)
)
