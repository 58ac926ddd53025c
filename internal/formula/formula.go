package formula

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
)

// ErrFormat is returned by Parse for source that is not a valid formula.
var ErrFormat = errors.New("invalid formula")

// variableRegex is the default rule a referenced name must satisfy: a letter
// or underscore followed by at least one letter, digit or underscore.
var variableRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]+$`)

// referenceRegex is checked on every reference regardless of the validator:
// a run of letters and underscores followed by a letter or digit. It is a
// prefix match, so `A12` passes and `a_` does not.
var referenceRegex = regexp.MustCompile(`^[A-Za-z_]+[A-Za-z0-9]`)

// Formula is a parsed, immutable formula. The zero value is not usable; build
// one with Parse.
type Formula struct {
	src  string
	expr hclsyntax.Expression
	vars []string
}

// Option configures Parse.
type Option func(*parseOptions)

type parseOptions struct {
	valid func(name string) bool
}

// WithValidator replaces the default variable naming rule. Parse fails with
// ErrFormat if any referenced name is rejected by valid.
func WithValidator(valid func(name string) bool) Option {
	return func(o *parseOptions) {
		o.valid = valid
	}
}

// Parse parses src into a Formula. Surrounding whitespace is ignored and an
// empty source yields an empty formula, which references nothing and fails
// to evaluate.
func Parse(src string, opts ...Option) (*Formula, error) {
	o := parseOptions{valid: variableRegex.MatchString}
	for _, opt := range opts {
		opt(&o)
	}

	trimmed := strings.TrimSpace(src)
	if trimmed == "" {
		return &Formula{src: src, vars: []string{}}, nil
	}

	expr, diags := hclsyntax.ParseExpression([]byte(canonicalize(trimmed)), "formula", hcl.InitialPos)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w %q: %s", ErrFormat, src, diags.Error())
	}

	vars, err := variables(expr, o.valid)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrFormat, src, err)
	}

	return &Formula{src: src, expr: expr, vars: vars}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(src string, opts ...Option) *Formula {
	f, err := Parse(src, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// variables collects the distinct root names referenced by expr, in order of
// first appearance.
func variables(expr hclsyntax.Expression, valid func(string) bool) ([]string, error) {
	traversals := expr.Variables()
	seen := make(map[string]struct{}, len(traversals))
	names := make([]string, 0, len(traversals))

	for _, t := range traversals {
		name := t.RootName()
		if _, ok := seen[name]; ok {
			continue
		}
		if !valid(name) || !referenceRegex.MatchString(name) {
			return nil, fmt.Errorf("invalid variable name %q", name)
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names, nil
}

// Variables returns the distinct names the formula references. The returned
// slice is a copy.
func (f *Formula) Variables() []string {
	out := make([]string, len(f.vars))
	copy(out, f.vars)
	return out
}

// String returns the source the formula was parsed from.
func (f *Formula) String() string {
	return f.src
}

// IsEmpty reports whether the formula source is blank.
func (f *Formula) IsEmpty() bool {
	return f.expr == nil
}

// Equal reports whether two formulas were parsed from the same source.
func (f *Formula) Equal(other *Formula) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.src == other.src
}
