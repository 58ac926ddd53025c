// Package recalc computes which cells must be recomputed after a change, and
// in which order, while detecting circular references.
package recalc

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrCycle is matched by every *CycleError.
var ErrCycle = errors.New("circular dependency")

// CycleError reports a circular reference found while ordering a closure.
//
// Path lists the names along the cycle, each one read by the next, and ends
// with the name it started from. A self-reference has the path [X X].
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCycle, strings.Join(e.Path, " -> "))
}

// Is lets errors.Is match a *CycleError against ErrCycle.
func (e *CycleError) Is(target error) bool {
	return target == ErrCycle
}

// Dependents is the part of the dependency graph the ordering needs.
type Dependents interface {
	DependentsOf(name string) []string
}

// frame is one entry of the explicit work stack: a name being explored and the
// dependents of it that are still to be visited.
type frame struct {
	name    string
	pending []string
}

// Order returns start followed by every name that transitively depends on it,
// without duplicates, ordered so that each name comes after all of the names
// it reads from that are also part of the result.
//
// The walk is a depth-first traversal over dependents that uses an explicit
// stack, so deep chains do not grow the goroutine stack. Reaching a name that
// is still being explored means the graph has a cycle through start and
// Order fails with a *CycleError.
func Order(g Dependents, start string) ([]string, error) {
	visited := make(map[string]struct{})
	onStack := map[string]int{start: 0} // Key: name, Value: index in stack
	stack := []frame{{name: start, pending: g.DependentsOf(start)}}

	var postOrder []string
	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if len(top.pending) == 0 {
			name := top.name
			stack = stack[:len(stack)-1]
			delete(onStack, name)
			visited[name] = struct{}{}
			postOrder = append(postOrder, name)
			continue
		}

		next := top.pending[0]
		top.pending = top.pending[1:]

		if _, done := visited[next]; done {
			continue
		}
		if at, exploring := onStack[next]; exploring {
			return nil, newCycleError(stack[at:], next)
		}

		onStack[next] = len(stack)
		stack = append(stack, frame{name: next, pending: g.DependentsOf(next)})
	}

	slices.Reverse(postOrder)
	return postOrder, nil
}

func newCycleError(frames []frame, closing string) *CycleError {
	path := make([]string, 0, len(frames)+1)
	for _, f := range frames {
		path = append(path, f.name)
	}
	return &CycleError{Path: append(path, closing)}
}
