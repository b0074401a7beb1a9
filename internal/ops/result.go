// Package ops implements the arithmetic operators applied to a value stream:
// streaming operators that map each input value to one output value, and
// reducing operators that fold the whole stream into a single value.
package ops

import (
	"math"
	"strconv"
)

// Result is a computed value plus how it should be rendered. Most operators
// produce plain floats; ceil, floor, round at precision 0 and fmod produce
// integral results that print without a fractional part.
type Result struct {
	Value    float64
	Integral bool
}

// Float wraps v as a floating-point result.
func Float(v float64) Result { return Result{Value: v} }

// Int wraps v as an integral result.
func Int(v float64) Result { return Result{Value: v, Integral: true} }

// String renders the result the way it is written to output: shortest
// round-trip form for floats, no fractional part for integral results.
// Integral values outside the int64 range (and NaN/Inf) are rendered by the
// float formatter with zero fractional digits; a conversion there would be
// implementation-defined.
func (r Result) String() string {
	if r.Integral {
		if r.Value >= math.MinInt64 && r.Value < math.MaxInt64 {
			return strconv.FormatInt(int64(r.Value), 10)
		}
		return strconv.FormatFloat(r.Value, 'f', 0, 64)
	}
	return strconv.FormatFloat(r.Value, 'g', -1, 64)
}
