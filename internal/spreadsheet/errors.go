package spreadsheet

import (
	"errors"

	"github.com/specialistvlad/cellgrid/internal/cell"
	"github.com/specialistvlad/cellgrid/internal/recalc"
)

var (
	// ErrInvalidName is returned for malformed names and, by the read
	// operations, for names that have no record.
	ErrInvalidName = cell.ErrInvalidName

	// ErrNullContent is returned when a mutation is given no content.
	ErrNullContent = errors.New("null content")

	// ErrCircularDependency is returned when a mutation would make a cell
	// depend on itself. The error also unwraps to a *recalc.CycleError.
	ErrCircularDependency = recalc.ErrCycle
)
