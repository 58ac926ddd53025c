package spreadsheet

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/specialistvlad/cellgrid/internal/cell"
	"github.com/specialistvlad/cellgrid/internal/formula"
	"github.com/specialistvlad/cellgrid/internal/recalc"
)

// SetContent assigns c to the named cell and returns the closure of cells
// that were recomputed: name first, then every cell that depends on it
// directly or transitively, each after the cells it reads from.
//
// It fails with ErrInvalidName for a malformed name, ErrNullContent for nil
// content or a Formula without a parsed formula, and ErrCircularDependency
// if the content would make a cell depend on itself. A failed call changes
// nothing.
func (s *Store) SetContent(name string, c cell.Content) ([]string, error) {
	if err := cell.CheckName(name); err != nil {
		return nil, err
	}

	var references []string
	switch v := c.(type) {
	case nil:
		return nil, fmt.Errorf("%w for cell %q", ErrNullContent, name)
	case cell.Formula:
		if v.Formula == nil {
			return nil, fmt.Errorf("%w for cell %q", ErrNullContent, name)
		}
		references = v.Variables()
	case cell.Text, cell.Number:
		// literals reference nothing; any previous formula edges are dropped
	default:
		return nil, fmt.Errorf("cell %q: unsupported content type %T", name, c)
	}

	previous := s.graph.ReplaceDependees(name, references)
	closure, err := s.closure(name)
	if err != nil {
		s.graph.ReplaceDependees(name, previous)
		var cycleErr *recalc.CycleError
		if errors.As(err, &cycleErr) {
			s.logger.Debug("Rejected circular reference.", "cell", name, "cycle", cycleErr.Path)
		}
		return nil, fmt.Errorf("cell %q: %w", name, err)
	}

	i := s.ensure(name)
	for _, ref := range references {
		s.ensure(ref)
	}
	s.records[i].content = c

	s.recompute(closure)
	s.logger.Debug("Cell contents set.", "cell", name, "content", c.String(), "closure", closure)
	return closure, nil
}

// SetText assigns literal text. Empty text leaves an empty cell.
func (s *Store) SetText(name, text string) ([]string, error) {
	return s.SetContent(name, cell.Text(text))
}

// SetNumber assigns a literal number.
func (s *Store) SetNumber(name string, number float64) ([]string, error) {
	return s.SetContent(name, cell.Number(number))
}

// SetFormula assigns a parsed formula. A nil formula fails with
// ErrNullContent.
func (s *Store) SetFormula(name string, f *formula.Formula) ([]string, error) {
	return s.SetContent(name, cell.Formula{Formula: f})
}

// SetInput assigns content typed the way a user enters it: a leading '='
// makes the rest a formula, text that parses as a finite number is a number,
// and anything else is text. Formula syntax errors wrap formula.ErrFormat.
func (s *Store) SetInput(name, raw string) ([]string, error) {
	if err := cell.CheckName(name); err != nil {
		return nil, err
	}
	c, err := ParseInput(raw)
	if err != nil {
		return nil, fmt.Errorf("cell %q: %w", name, err)
	}
	return s.SetContent(name, c)
}

// ParseInput converts user input into content using the rules of SetInput.
func ParseInput(raw string) (cell.Content, error) {
	if src, ok := strings.CutPrefix(raw, "="); ok {
		f, err := formula.Parse(src, formula.WithValidator(cell.ValidName))
		if err != nil {
			return nil, err
		}
		return cell.Formula{Formula: f}, nil
	}
	if n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
		return cell.Number(n), nil
	}
	return cell.Text(raw), nil
}

// closure orders the cells to recompute after name changed. A cell nothing
// reads from is its own closure and cannot close a cycle.
func (s *Store) closure(name string) ([]string, error) {
	if !s.graph.HasDependents(name) {
		return []string{name}, nil
	}
	return recalc.Order(s.graph, name)
}

// recompute refreshes the value of every cell in closure, in order. The
// resolver only lives for this call.
func (s *Store) recompute(closure []string) {
	resolve := func(name string) float64 {
		i, ok := s.index[name]
		if !ok {
			return math.NaN()
		}
		return cell.NumberOf(s.records[i].value)
	}

	for _, name := range closure {
		i, ok := s.index[name]
		if !ok {
			continue
		}
		s.records[i].value = evaluate(s.records[i].content, resolve)
	}
}

func evaluate(c cell.Content, resolve formula.Resolver) cell.Value {
	switch v := c.(type) {
	case cell.Text:
		return v
	case cell.Number:
		return v
	case cell.Formula:
		n, err := v.Evaluate(resolve)
		if err != nil {
			var evalErr *formula.EvalError
			if errors.As(err, &evalErr) {
				return cell.Error{Reason: evalErr.Reason}
			}
			return cell.Error{Reason: err.Error()}
		}
		return cell.Number(n)
	}
	return cell.Text("")
}
