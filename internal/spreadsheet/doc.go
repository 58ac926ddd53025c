// Package spreadsheet provides the cell store: a named set of cells whose
// formulas may read one another, kept consistent on every mutation.
//
// # Mutations
//
// Every Set* call follows the same sequence:
//
//  1. Validate the name and the content.
//  2. Stage the cell's new outgoing edges in the dependency graph.
//  3. Order the cell and its transitive dependents with recalc.Order, which
//     also detects circular references.
//  4. On a cycle, restore the previous edges and return an error wrapping
//     ErrCircularDependency. Content, values and records are untouched.
//  5. Otherwise commit the content and recompute the value of every cell in
//     the order, the changed cell first.
//
// The returned closure is the order from step 3.
//
// # Records
//
// Cell records live in an arena indexed by name and are created lazily: when
// a cell is assigned, and when it is first referenced by another cell's
// formula. A record created by reference holds empty text, so Content
// returns Text("") for it instead of failing. Records are never deleted.
//
// # Values
//
// Formulas are evaluated with a resolver that reads the current value of the
// referenced cell. Missing cells, text values and error values all read as
// NaN, so one failing formula never blocks recalculation of the others.
//
// # Concurrency
//
// A Store is not safe for concurrent use. Synchronized wraps one behind a
// single lock for hosts that share a store between goroutines.
package spreadsheet
