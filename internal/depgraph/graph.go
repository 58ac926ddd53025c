package depgraph

import (
	"slices"
)

// set is an adjacency set of names.
type set map[string]struct{}

// Graph is a directed graph of name-to-name dependency edges.
type Graph struct {
	dependents map[string]set // Key: dependee, Value: set of its dependents
	dependees  map[string]set // Key: dependent, Value: set of its dependees
	size       int
}

// New creates an empty dependency graph.
func New() *Graph {
	return &Graph{
		dependents: make(map[string]set),
		dependees:  make(map[string]set),
	}
}

// Len returns the number of edges in the graph.
func (g *Graph) Len() int {
	return g.size
}

// AddDependency records that dependent's formula references dependee. Adding
// an edge that already exists does nothing.
func (g *Graph) AddDependency(dependent, dependee string) {
	if _, exists := g.dependees[dependent][dependee]; exists {
		return
	}
	link(g.dependees, dependent, dependee)
	link(g.dependents, dependee, dependent)
	g.size++
}

// RemoveDependency deletes the edge from dependent to dependee if present.
func (g *Graph) RemoveDependency(dependent, dependee string) {
	if _, exists := g.dependees[dependent][dependee]; !exists {
		return
	}
	unlink(g.dependees, dependent, dependee)
	unlink(g.dependents, dependee, dependent)
	g.size--
}

// ReplaceDependees removes every edge leaving dependent and adds one edge to
// each name in newDependees. Duplicates in newDependees are collapsed. It
// returns the dependees dependent had before the call, sorted, so a caller
// can undo the replacement by passing them back.
func (g *Graph) ReplaceDependees(dependent string, newDependees []string) []string {
	previous := g.DependeesOf(dependent)
	for _, dependee := range previous {
		g.RemoveDependency(dependent, dependee)
	}
	for _, dependee := range newDependees {
		g.AddDependency(dependent, dependee)
	}
	return previous
}

// DependeesOf returns the names that name reads from, sorted. The slice is
// empty, not nil, when there are none.
func (g *Graph) DependeesOf(name string) []string {
	return sorted(g.dependees[name])
}

// DependentsOf returns the names whose formulas read name, sorted. The slice
// is empty, not nil, when there are none.
func (g *Graph) DependentsOf(name string) []string {
	return sorted(g.dependents[name])
}

// HasDependents reports whether any formula references name.
func (g *Graph) HasDependents(name string) bool {
	return len(g.dependents[name]) > 0
}

// Names returns every name that takes part in at least one edge, sorted.
func (g *Graph) Names() []string {
	all := make(set, len(g.dependents)+len(g.dependees))
	for name := range g.dependents {
		all[name] = struct{}{}
	}
	for name := range g.dependees {
		all[name] = struct{}{}
	}
	return sorted(all)
}

func link(index map[string]set, key, member string) {
	s, ok := index[key]
	if !ok {
		s = make(set)
		index[key] = s
	}
	s[member] = struct{}{}
}

// unlink deletes member from key's set and prunes the set once it is empty.
func unlink(index map[string]set, key, member string) {
	s := index[key]
	delete(s, member)
	if len(s) == 0 {
		delete(index, key)
	}
}

func sorted(s set) []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
