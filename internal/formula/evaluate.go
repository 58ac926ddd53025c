package formula

import (
	"fmt"
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// Resolver maps a referenced name to its current numeric value. It returns
// NaN for names that have no numeric value.
type Resolver func(name string) float64

// EvalError describes a formula whose own arithmetic failed, e.g. a division
// by zero or a call to an unknown function.
type EvalError struct {
	Formula string
	Reason  string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("evaluating %q: %s", e.Formula, e.Reason)
}

// functions available to every formula.
var functions = map[string]function.Function{
	"abs":    stdlib.AbsoluteFunc,
	"ceil":   stdlib.CeilFunc,
	"floor":  stdlib.FloorFunc,
	"log":    stdlib.LogFunc,
	"max":    stdlib.MaxFunc,
	"min":    stdlib.MinFunc,
	"pow":    stdlib.PowFunc,
	"signum": stdlib.SignumFunc,
}

// Evaluate computes the formula. It returns NaN and a nil error when any
// reference the result depends on resolved to NaN. Failures of the formula's
// own arithmetic are reported as *EvalError.
func (f *Formula) Evaluate(resolve Resolver) (result float64, err error) {
	if f.expr == nil {
		return math.NaN(), f.fail("empty formula")
	}

	// cty arithmetic panics on indeterminate forms it does not guard itself.
	defer func() {
		if r := recover(); r != nil {
			result, err = math.NaN(), f.fail(fmt.Sprint(r))
		}
	}()

	vars := make(map[string]cty.Value, len(f.vars))
	for _, name := range f.vars {
		vars[name] = toCty(resolve(name))
	}

	val, diags := f.expr.Value(&hcl.EvalContext{
		Variables: vars,
		Functions: functions,
	})
	if diags.HasErrors() {
		return math.NaN(), f.fail(diags.Error())
	}
	if !val.IsWhollyKnown() {
		return math.NaN(), nil
	}
	if val.IsNull() {
		return math.NaN(), f.fail("result is null")
	}

	num, convErr := convert.Convert(val, cty.Number)
	if convErr != nil {
		return math.NaN(), f.fail(fmt.Sprintf("result is not a number: %s", convErr))
	}
	if !num.IsKnown() {
		return math.NaN(), nil
	}

	bf := num.AsBigFloat()
	if bf.IsInf() {
		return math.NaN(), f.fail("result is infinite")
	}
	out, _ := bf.Float64()
	if math.IsInf(out, 0) {
		return math.NaN(), f.fail("result out of range")
	}
	return out, nil
}

func (f *Formula) fail(reason string) *EvalError {
	return &EvalError{Formula: f.src, Reason: reason}
}

// toCty converts a resolved value. NaN has no cty representation and becomes
// an unknown number, which HCL propagates through every operator.
func toCty(v float64) cty.Value {
	if math.IsNaN(v) {
		return cty.UnknownVal(cty.Number)
	}
	return cty.NumberFloatVal(v)
}
