package ops

import (
	"errors"
	"math"
	"slices"

	"pcalc/internal/stream"
)

// ErrAmbiguousMode reports that two or more values tie for most frequent.
// Formatting multiple modes on a single output line is ill-defined, so this
// is surfaced to the user instead of picking one.
var ErrAmbiguousMode = errors.New("multiple modes share the highest frequency")

// BinaryOp combines the running accumulator with the next value.
type BinaryOp func(acc, next float64) float64

// Binary operators usable with Fold. ModOp is floored modulo (sign follows
// the divisor); FModOp is the IEEE remainder (sign follows the dividend).
var (
	AddOp  BinaryOp = func(a, b float64) float64 { return a + b }
	SubOp  BinaryOp = func(a, b float64) float64 { return a - b }
	MulOp  BinaryOp = func(a, b float64) float64 { return a * b }
	DivOp  BinaryOp = func(a, b float64) float64 { return a / b }
	ModOp  BinaryOp = flooredMod
	FModOp BinaryOp = math.Mod
	PowOp  BinaryOp = math.Pow
)

// Fold applies op cumulatively across the stream in encounter order, seeding
// the accumulator with the first value. A single-value stream returns that
// value with op never applied.
func Fold(src *stream.Source, op BinaryOp) (Result, error) {
	if !src.Scan() {
		return Result{}, src.Err()
	}
	acc := src.Value()
	for src.Scan() {
		acc = op(acc, src.Value())
	}
	if err := src.Err(); err != nil {
		return Result{}, err
	}
	return Float(acc), nil
}

// Min returns the smallest value in the stream. Ordering of NaN against
// other values is implementation-defined (plain < comparisons).
func Min(src *stream.Source) (Result, error) {
	return Fold(src, func(a, b float64) float64 {
		if b < a {
			return b
		}
		return a
	})
}

// Max returns the largest value in the stream. NaN ordering is
// implementation-defined, as for Min.
func Max(src *stream.Source) (Result, error) {
	return Fold(src, func(a, b float64) float64 {
		if b > a {
			return b
		}
		return a
	})
}

// Mean returns the arithmetic mean of the stream. The source guarantees at
// least one value, so the count is never zero.
func Mean(src *stream.Source) (Result, error) {
	values, err := src.Collect()
	if err != nil {
		return Result{}, err
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return Float(sum / float64(len(values))), nil
}

// Median returns the middle value of the sorted stream. For an even count it
// returns the sum of the two middle elements divided by two.
func Median(src *stream.Source) (Result, error) {
	values, err := src.Collect()
	if err != nil {
		return Result{}, err
	}
	slices.Sort(values)
	n := len(values)
	if n%2 == 1 {
		return Float(values[(n-1)/2]), nil
	}
	return Float((values[n/2-1] + values[n/2]) / 2), nil
}

// Mode returns the single most frequent value in the stream, or
// ErrAmbiguousMode when two or more values tie for the highest frequency.
// NaN never compares equal to itself, so each NaN input counts as its own
// occurrence of frequency one; the outcome for NaN-heavy input is
// implementation-defined, as for Min and Max.
func Mode(src *stream.Source) (Result, error) {
	values, err := src.Collect()
	if err != nil {
		return Result{}, err
	}
	counts := make(map[float64]int, len(values))
	var order []float64 // first-seen order, so the winner is deterministic
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}
	best, ties := order[0], 0
	for _, v := range order {
		switch {
		case counts[v] > counts[best]:
			best, ties = v, 0
		case v != best && counts[v] == counts[best]:
			ties++
		}
	}
	if ties > 0 {
		return Result{}, ErrAmbiguousMode
	}
	return Float(best), nil
}
