package recalc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/specialistvlad/cellgrid/internal/depgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildGraph creates a graph from "dependent: dependees..." pairs.
func buildGraph(edges map[string][]string) *depgraph.Graph {
	g := depgraph.New()
	for dependent, dependees := range edges {
		for _, dependee := range dependees {
			g.AddDependency(dependent, dependee)
		}
	}
	return g
}

// requireTopological checks that every name in order comes after each of its
// dependees that is also in order, and that there are no duplicates.
func requireTopological(t *testing.T, g *depgraph.Graph, order []string) {
	t.Helper()
	position := make(map[string]int, len(order))
	for i, name := range order {
		_, dup := position[name]
		require.False(t, dup, "duplicate %q in %v", name, order)
		position[name] = i
	}
	for i, name := range order {
		for _, dependee := range g.DependeesOf(name) {
			if at, ok := position[dependee]; ok {
				require.Less(t, at, i, "%q must come after %q in %v", name, dependee, order)
			}
		}
	}
}

func TestOrder_SingleCell(t *testing.T) {
	order, err := Order(depgraph.New(), "A1")
	require.NoError(t, err)
	assert.Equal(t, []string{"A1"}, order)
}

func TestOrder_Closures(t *testing.T) {
	testCases := []struct {
		name     string
		edges    map[string][]string
		start    string
		expected []string
	}{
		{
			name:     "chain",
			edges:    map[string][]string{"B1": {"A1"}, "C1": {"B1"}},
			start:    "A1",
			expected: []string{"A1", "B1", "C1"},
		},
		{
			name:     "reads from changed cell and its dependent",
			edges:    map[string][]string{"B1": {"A1"}, "C1": {"B1", "A1"}},
			start:    "A1",
			expected: []string{"A1", "B1", "C1"},
		},
		{
			name:     "middle of chain",
			edges:    map[string][]string{"B1": {"A1"}, "C1": {"B1"}},
			start:    "B1",
			expected: []string{"B1", "C1"},
		},
		{
			name:     "unrelated cells excluded",
			edges:    map[string][]string{"B1": {"A1"}, "Y1": {"X1"}},
			start:    "A1",
			expected: []string{"A1", "B1"},
		},
		{
			name:     "diamond",
			edges:    map[string][]string{"B1": {"A1"}, "C1": {"A1"}, "D1": {"B1", "C1"}},
			start:    "A1",
			expected: []string{"A1", "C1", "B1", "D1"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := buildGraph(tc.edges)
			order, err := Order(g, tc.start)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, order)
			requireTopological(t, g, order)
		})
	}
}

func TestOrder_Cycles(t *testing.T) {
	testCases := []struct {
		name  string
		edges map[string][]string
		start string
		path  []string
	}{
		{
			name:  "self reference",
			edges: map[string][]string{"D1": {"D1"}},
			start: "D1",
			path:  []string{"D1", "D1"},
		},
		{
			name:  "two cells",
			edges: map[string][]string{"A1": {"B1"}, "B1": {"A1"}},
			start: "A1",
			path:  []string{"A1", "B1", "A1"},
		},
		{
			name:  "three cells",
			edges: map[string][]string{"B1": {"A1"}, "C1": {"B1"}, "A1": {"C1"}},
			start: "A1",
			path:  []string{"A1", "B1", "C1", "A1"},
		},
		{
			name:  "cycle downstream of start",
			edges: map[string][]string{"X1": {"A1", "Y1"}, "Y1": {"X1"}},
			start: "A1",
			path:  []string{"X1", "Y1", "X1"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			order, err := Order(buildGraph(tc.edges), tc.start)
			require.Error(t, err)
			assert.Nil(t, order)
			assert.True(t, errors.Is(err, ErrCycle))

			var cycleErr *CycleError
			require.ErrorAs(t, err, &cycleErr)
			assert.Equal(t, tc.path, cycleErr.Path)
			assert.Contains(t, err.Error(), "circular dependency")
		})
	}
}

func TestOrder_DeepChain(t *testing.T) {
	const depth = 100_000
	g := depgraph.New()
	for i := 1; i < depth; i++ {
		g.AddDependency(fmt.Sprintf("C%d", i), fmt.Sprintf("C%d", i-1))
	}

	order, err := Order(g, "C0")
	require.NoError(t, err)
	require.Len(t, order, depth)
	assert.Equal(t, "C0", order[0])
	assert.Equal(t, fmt.Sprintf("C%d", depth-1), order[depth-1])
}

func TestOrder_DoesNotModifyGraph(t *testing.T) {
	g := buildGraph(map[string][]string{"B1": {"A1"}, "C1": {"A1", "B1"}})
	before := g.Len()

	_, err := Order(g, "A1")
	require.NoError(t, err)
	assert.Equal(t, before, g.Len())
	assert.Equal(t, []string{"B1", "C1"}, g.DependentsOf("A1"))
}
