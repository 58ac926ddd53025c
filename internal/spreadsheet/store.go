package spreadsheet

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/specialistvlad/cellgrid/internal/cell"
	"github.com/specialistvlad/cellgrid/internal/depgraph"
)

// record is a cell's slot in the arena.
type record struct {
	name    string
	content cell.Content
	value   cell.Value
}

// Store is an in-memory cell store. The zero value is not usable; use New.
type Store struct {
	records []record
	index   map[string]int // Key: cell name, Value: position in records
	graph   *depgraph.Graph
	logger  *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger mutations are reported to at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		index:  make(map[string]int),
		graph:  depgraph.New(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Content returns the content of the named cell. It fails with ErrInvalidName
// if the name is malformed or no record exists for it.
func (s *Store) Content(name string) (cell.Content, error) {
	r, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	return r.content, nil
}

// Value returns the last computed value of the named cell, with the same
// failure rules as Content.
func (s *Store) Value(name string) (cell.Value, error) {
	r, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	return r.value, nil
}

// NonemptyCellNames yields the names of all cells whose content is not empty,
// in the order the cells were first created. The sequence may be ranged over
// any number of times; each pass reflects the store at that moment.
func (s *Store) NonemptyCellNames() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := range s.records {
			if cell.IsEmpty(s.records[i].content) {
				continue
			}
			if !yield(s.records[i].name) {
				return
			}
		}
	}
}

// Len returns the number of cell records, empty ones included.
func (s *Store) Len() int {
	return len(s.records)
}

// DirectDependents returns the cells whose formulas reference name directly,
// sorted. The name only has to be well-formed.
func (s *Store) DirectDependents(name string) ([]string, error) {
	if err := cell.CheckName(name); err != nil {
		return nil, err
	}
	return s.graph.DependentsOf(name), nil
}

// DirectDependees returns the cells the named cell's formula references,
// sorted. The name only has to be well-formed.
func (s *Store) DirectDependees(name string) ([]string, error) {
	if err := cell.CheckName(name); err != nil {
		return nil, err
	}
	return s.graph.DependeesOf(name), nil
}

func (s *Store) lookup(name string) (*record, error) {
	if err := cell.CheckName(name); err != nil {
		return nil, err
	}
	i, ok := s.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: no cell named %q", ErrInvalidName, name)
	}
	return &s.records[i], nil
}

// ensure returns the position of name's record, creating an empty one if
// the name has not been seen before.
func (s *Store) ensure(name string) int {
	if i, ok := s.index[name]; ok {
		return i
	}
	s.records = append(s.records, record{
		name:    name,
		content: cell.Text(""),
		value:   cell.Text(""),
	})
	i := len(s.records) - 1
	s.index[name] = i
	return i
}
