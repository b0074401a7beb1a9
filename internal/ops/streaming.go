package ops

import "math"

// Mapper transforms one input value into one output value. Mappers are pure:
// the same input always yields the same output.
type Mapper func(v float64) Result

// Add returns a mapper that adds a constant to each value.
func Add(c float64) Mapper { return func(v float64) Result { return Float(v + c) } }

// Sub returns a mapper that subtracts a constant from each value.
func Sub(c float64) Mapper { return func(v float64) Result { return Float(v - c) } }

// Mul returns a mapper that multiplies each value by a constant.
func Mul(c float64) Mapper { return func(v float64) Result { return Float(v * c) } }

// Div returns a mapper that divides each value by a constant. Division is
// floating-point; dividing by zero yields the usual IEEE infinities/NaN.
func Div(c float64) Mapper { return func(v float64) Result { return Float(v / c) } }

// Pow returns a mapper that raises each value to a constant exponent.
func Pow(c float64) Mapper { return func(v float64) Result { return Float(math.Pow(v, c)) } }

// Mod returns a mapper that reduces each value modulo divisor. The default
// is floored modulo, where the result's sign follows the divisor. With fmod
// set it is the IEEE remainder instead (sign follows the dividend) and the
// result is integral.
func Mod(divisor float64, fmod bool) Mapper {
	if fmod {
		return func(v float64) Result { return Int(math.Mod(v, divisor)) }
	}
	return func(v float64) Result { return Float(flooredMod(v, divisor)) }
}

// flooredMod is the modulo with the divisor's sign, i.e. x - floor(x/y)*y.
func flooredMod(x, y float64) float64 {
	m := math.Mod(x, y)
	if m != 0 && (m < 0) != (y < 0) {
		m += y
	}
	return m
}

// Round returns a mapper that rounds to the given decimal precision using
// round-half-to-even. Negative precision rounds at powers of ten. Precision
// 0 produces an integral result.
func Round(precision int) Mapper {
	if precision == 0 {
		return func(v float64) Result { return Int(math.RoundToEven(v)) }
	}
	return func(v float64) Result { return Float(roundTo(v, float64(precision))) }
}

// roundTo rounds half-to-even at the given decimal precision. Dividing by
// the power of ten for negative precisions keeps results like 120 exact
// instead of accumulating error from multiplying by 0.1.
func roundTo(v, precision float64) float64 {
	if precision < 0 {
		scale := math.Pow(10, -precision)
		return math.RoundToEven(v/scale) * scale
	}
	scale := math.Pow(10, precision)
	return math.RoundToEven(v*scale) / scale
}

// Ceil returns a mapper that rounds toward positive infinity.
func Ceil() Mapper { return func(v float64) Result { return Int(math.Ceil(v)) } }

// Floor returns a mapper that rounds toward negative infinity.
func Floor() Mapper { return func(v float64) Result { return Int(math.Floor(v)) } }

// Abs returns a mapper that takes the absolute value.
func Abs() Mapper { return func(v float64) Result { return Float(math.Abs(v)) } }
