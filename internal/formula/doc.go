// Package formula parses and evaluates the arithmetic formulas stored in
// cells.
//
// A formula is an HCL expression (see hclsyntax) restricted to numbers:
// literals, cell references, the usual arithmetic operators, conditionals and
// a small set of numeric functions. Comparisons only make sense as the
// condition of a conditional (`A1 > 0 ? A1 : 0`); a formula whose result is a
// bool fails to evaluate. References are plain identifiers, e.g.
// `A1 * 2 + max(B1, C1)`.
//
// The package knows nothing about cells or stores. It offers exactly two
// things to its callers:
//
//   - Variables: the distinct names a formula references.
//   - Evaluate: the numeric value of the formula, given a callback that
//     resolves a name to a number.
//
// A resolver returns NaN for any name it cannot turn into a number. NaN is
// never an error: it flows through the expression as an unknown value and the
// formula evaluates to NaN as well.
package formula
