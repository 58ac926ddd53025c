package spreadsheet

import (
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/specialistvlad/cellgrid/internal/cell"
	"github.com/specialistvlad/cellgrid/internal/formula"
)

// Synchronized is a Store guarded by a single RWMutex. Each mutation, from
// extracting references to recomputing the last dependent, runs under the
// write lock, so a rejected mutation is never observable half-applied.
type Synchronized struct {
	mu    sync.RWMutex
	store *Store
}

// NewSynchronized creates an empty store that is safe for concurrent use.
func NewSynchronized(opts ...Option) *Synchronized {
	return &Synchronized{store: New(opts...)}
}

// Content is Store.Content under the read lock.
func (s *Synchronized) Content(name string) (cell.Content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Content(name)
}

// Value is Store.Value under the read lock.
func (s *Synchronized) Value(name string) (cell.Value, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Value(name)
}

// NonemptyCellNames returns a snapshot of the non-empty cell names taken under
// the read lock. Later mutations do not affect the returned sequence.
func (s *Synchronized) NonemptyCellNames() iter.Seq[string] {
	s.mu.RLock()
	names := slices.Collect(s.store.NonemptyCellNames())
	s.mu.RUnlock()
	return slices.Values(names)
}

// Len is Store.Len under the read lock.
func (s *Synchronized) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Len()
}

// DirectDependents is Store.DirectDependents under the read lock.
func (s *Synchronized) DirectDependents(name string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.DirectDependents(name)
}

// DirectDependees is Store.DirectDependees under the read lock.
func (s *Synchronized) DirectDependees(name string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.DirectDependees(name)
}

// SetContent is Store.SetContent under the write lock.
func (s *Synchronized) SetContent(name string, c cell.Content) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.SetContent(name, c)
}

// SetText is Store.SetText under the write lock.
func (s *Synchronized) SetText(name, text string) ([]string, error) {
	return s.SetContent(name, cell.Text(text))
}

// SetNumber is Store.SetNumber under the write lock.
func (s *Synchronized) SetNumber(name string, number float64) ([]string, error) {
	return s.SetContent(name, cell.Number(number))
}

// SetFormula is Store.SetFormula under the write lock.
func (s *Synchronized) SetFormula(name string, f *formula.Formula) ([]string, error) {
	return s.SetContent(name, cell.Formula{Formula: f})
}

// SetInput is Store.SetInput under the write lock. Parsing happens before the
// lock is taken.
func (s *Synchronized) SetInput(name, raw string) ([]string, error) {
	if err := cell.CheckName(name); err != nil {
		return nil, err
	}
	c, err := ParseInput(raw)
	if err != nil {
		return nil, fmt.Errorf("cell %q: %w", name, err)
	}
	return s.SetContent(name, c)
}
