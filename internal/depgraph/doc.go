// Package depgraph records which cells read which other cells.
//
// # Terms
//
// An edge (A, B) means A's formula references B:
//   - A is a **dependent** of B (its value changes when B changes)
//   - B is a **dependee** of A (A reads from it)
//
// # Structure
//
// The graph keeps two indices over names only, never over cell records:
//   - dependents: Key: dependee, Value: set of names that read it
//   - dependees:  Key: dependent, Value: set of names it reads
//
// Every edge appears in exactly one set of each index. A set that becomes
// empty is removed from its index, so "no entry" and "empty" never differ.
// Names do not need to exist anywhere else; a formula may reference a cell
// that has never been assigned.
//
// The graph does not reject cycles. Cycle detection belongs to package recalc
// and runs against the graph after an edit is staged.
//
// A Graph is not safe for concurrent use.
package depgraph
