package cell

import (
	"math"
	"strconv"

	"github.com/specialistvlad/cellgrid/internal/formula"
)

// Content is the user-authored source of a cell: Text, Number or Formula.
type Content interface {
	String() string
	isContent()
}

// Value is the evaluated result of a cell: Text, Number or Error.
type Value interface {
	String() string
	isValue()
}

// Text is literal text content, and the value of text content.
type Text string

func (Text) isContent() {}
func (Text) isValue()   {}

func (t Text) String() string { return string(t) }

// Number is literal numeric content, and the value of numeric content and of
// formulas that evaluate successfully.
type Number float64

func (Number) isContent() {}
func (Number) isValue()   {}

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// Formula is formula content. A Formula wrapping a nil *formula.Formula is
// treated as missing content by the store.
type Formula struct {
	*formula.Formula
}

func (Formula) isContent() {}

// String renders the formula the way a user types it, with a leading '='.
func (f Formula) String() string {
	if f.Formula == nil {
		return "="
	}
	return "=" + f.Formula.String()
}

// Error is the value of a formula whose evaluation failed. It is stored in the
// cell like any other value; it is not returned as a Go error by the store.
type Error struct {
	Reason string
}

func (Error) isValue() {}

func (e Error) Error() string  { return e.Reason }
func (e Error) String() string { return "#ERROR: " + e.Reason }

// IsEmpty reports whether c counts as an empty cell: empty text, a formula
// with a blank source, or no content at all.
func IsEmpty(c Content) bool {
	switch v := c.(type) {
	case nil:
		return true
	case Text:
		return v == ""
	case Formula:
		return v.Formula == nil || v.Formula.IsEmpty()
	}
	return false
}

// Equal reports whether two contents are the same. Formulas compare by source.
func Equal(a, b Content) bool {
	switch av := a.(type) {
	case Text:
		bv, ok := b.(Text)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && (av == bv || math.IsNaN(float64(av)) && math.IsNaN(float64(bv)))
	case Formula:
		bv, ok := b.(Formula)
		return ok && av.Formula.Equal(bv.Formula)
	}
	return a == nil && b == nil
}

// NumberOf returns the numeric reading of v: the number for Number values and
// NaN for everything else.
func NumberOf(v Value) float64 {
	if n, ok := v.(Number); ok {
		return float64(n)
	}
	return math.NaN()
}
