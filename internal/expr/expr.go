// Package expr evaluates user-supplied arithmetic expressions against a
// fixed, whitelisted scope. The grammar covers numeric literals, the bound
// variables (v for streaming, a and b for reducing), unary +/-, the binary
// operators + - * / % **, parentheses, calls to a fixed function set, and
// attribute access on the math namespace. Nothing else resolves: the scope
// is the security boundary, so the evaluator has no access to the
// filesystem, the process, or any ambient name.
package expr

import "fmt"

// Error is the uniform user-facing failure for expression parsing and
// evaluation. Index is the 1-based position of the input value being
// processed, or 0 when no value is involved.
type Error struct {
	Index int
	Msg   string
}

func (e *Error) Error() string {
	if e.Index > 0 {
		return fmt.Sprintf("expression failed at value %d: %s", e.Index, e.Msg)
	}
	return fmt.Sprintf("expression failed: %s", e.Msg)
}

// Evaluator applies one expression string, re-parsed on every call. Parsing
// per call keeps the evaluator stateless across values, matching the
// one-shot lifecycle of everything else in an invocation.
type Evaluator struct {
	src string
}

// New returns an Evaluator for the given expression string.
func New(src string) *Evaluator { return &Evaluator{src: src} }

// EvalStream evaluates the expression with v bound to the current value.
// index is the value's 1-based position, used for error reporting.
func (e *Evaluator) EvalStream(v float64, index int) (float64, error) {
	return e.eval(map[string]float64{"v": v}, index)
}

// EvalReduce evaluates the expression with a bound to the running
// accumulator and b to the next value.
func (e *Evaluator) EvalReduce(a, b float64, index int) (float64, error) {
	return e.eval(map[string]float64{"a": a, "b": b}, index)
}

func (e *Evaluator) eval(vars map[string]float64, index int) (float64, error) {
	root, err := parse(e.src)
	if err != nil {
		return 0, &Error{Index: index, Msg: err.Error()}
	}
	val, err := root.eval(&environment{vars: vars})
	if err != nil {
		return 0, &Error{Index: index, Msg: err.Error()}
	}
	n, ok := val.(number)
	if !ok {
		return 0, &Error{Index: index, Msg: fmt.Sprintf("expression result is %s, not a number", val.describe())}
	}
	return float64(n), nil
}
