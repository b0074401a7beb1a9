package expr

import (
	"fmt"
	"math"
)

// value is the result of evaluating a subexpression: a number, one of the
// whitelisted functions, or the math namespace.
type value interface {
	describe() string
}

type number float64

func (number) describe() string { return "a number" }

type function struct {
	name    string
	minArgs int
	maxArgs int
	apply   func(args []float64) (float64, error)
}

func (f *function) describe() string { return fmt.Sprintf("the function %s", f.name) }

type namespace struct {
	name    string
	entries map[string]value
}

func (n *namespace) describe() string { return fmt.Sprintf("the %s namespace", n.name) }

// environment is the full lookup scope for one evaluation: the per-value
// variable bindings plus the fixed builtin table. Nothing outside it is
// resolvable.
type environment struct {
	vars map[string]float64
}

func (env *environment) lookup(name string) (value, bool) {
	if v, ok := env.vars[name]; ok {
		return number(v), true
	}
	v, ok := builtins[name]
	return v, ok
}

func fixed(name string, arity int, fn func(args []float64) float64) *function {
	return &function{
		name:    name,
		minArgs: arity,
		maxArgs: arity,
		apply:   func(args []float64) (float64, error) { return fn(args), nil },
	}
}

func unaryMath(name string, fn func(float64) float64) *function {
	return fixed(name, 1, func(args []float64) float64 { return fn(args[0]) })
}

// builtins is the whitelisted name table shared by every evaluation. It is
// never mutated after package initialization.
var builtins = map[string]value{
	"abs":   unaryMath("abs", math.Abs),
	"ceil":  unaryMath("ceil", math.Ceil),
	"floor": unaryMath("floor", math.Floor),
	"round": &function{
		// round(x) or round(x, precision), half-to-even like the round
		// subcommand.
		name:    "round",
		minArgs: 1,
		maxArgs: 2,
		apply: func(args []float64) (float64, error) {
			if len(args) == 1 {
				return math.RoundToEven(args[0]), nil
			}
			if args[1] < 0 {
				scale := math.Pow(10, -args[1])
				return math.RoundToEven(args[0]/scale) * scale, nil
			}
			scale := math.Pow(10, args[1])
			return math.RoundToEven(args[0]*scale) / scale, nil
		},
	},
	"add":  fixed("add", 2, func(a []float64) float64 { return a[0] + a[1] }),
	"sub":  fixed("sub", 2, func(a []float64) float64 { return a[0] - a[1] }),
	"mul":  fixed("mul", 2, func(a []float64) float64 { return a[0] * a[1] }),
	"div":  fixed("div", 2, func(a []float64) float64 { return a[0] / a[1] }),
	"mod":  fixed("mod", 2, func(a []float64) float64 { return flooredModFn(a[0], a[1]) }),
	"fmod": fixed("fmod", 2, func(a []float64) float64 { return math.Mod(a[0], a[1]) }),
	"pow":  fixed("pow", 2, func(a []float64) float64 { return math.Pow(a[0], a[1]) }),
	"math": &namespace{
		name: "math",
		entries: map[string]value{
			"sqrt":  unaryMath("math.sqrt", math.Sqrt),
			"exp":   unaryMath("math.exp", math.Exp),
			"log":   unaryMath("math.log", math.Log),
			"log2":  unaryMath("math.log2", math.Log2),
			"log10": unaryMath("math.log10", math.Log10),
			"sin":   unaryMath("math.sin", math.Sin),
			"cos":   unaryMath("math.cos", math.Cos),
			"tan":   unaryMath("math.tan", math.Tan),
			"asin":  unaryMath("math.asin", math.Asin),
			"acos":  unaryMath("math.acos", math.Acos),
			"atan":  unaryMath("math.atan", math.Atan),
			"pi":    number(math.Pi),
			"e":     number(math.E),
			"tau":   number(2 * math.Pi),
		},
	},
}

// flooredModFn mirrors the floored modulo used by the mod subcommand: the
// result's sign follows the divisor.
func flooredModFn(x, y float64) float64 {
	m := math.Mod(x, y)
	if m != 0 && (m < 0) != (y < 0) {
		m += y
	}
	return m
}
