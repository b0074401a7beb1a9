package main

import (
	"github.com/spf13/cobra"

	"pcalc/internal/expr"
	"pcalc/internal/ops"
	"pcalc/internal/stream"
)

var evalReduce bool

var evalCmd = &cobra.Command{
	Use:   "eval EXPRESSION",
	Short: "Apply an arithmetic expression to values",
	Long: `Apply an arithmetic expression to values.

By default the expression is evaluated once per input value with 'v'
bound to the current value:

    $ pcalc eval "((v + 1) * 10) % 3"

With --reduce the expression is a custom reducer: 'a' is the running
accumulator (seeded with the first value) and 'b' the next value, and
the final accumulator is the single output:

    $ pcalc eval --reduce "(a ** 2) + b"

Expressions resolve against a fixed scope: the bound variables, the
functions abs, ceil, floor, round, add, sub, mul, div, mod, fmod and
pow, and the math namespace (math.sqrt, math.log, math.pi, ...). Any
other name is an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().BoolVarP(&evalReduce, "reduce", "r", false, "reduce values with the expression over a and b")
}

func runEval(cmd *cobra.Command, args []string) error {
	ev := expr.New(args[0])
	if evalReduce {
		return runReducing(cmd, func(src *stream.Source) (ops.Result, error) {
			return evalFold(ev, src)
		})
	}
	return runStreaming(cmd, func(v float64, index int) (ops.Result, error) {
		out, err := ev.EvalStream(v, index)
		if err != nil {
			return ops.Result{}, err
		}
		return ops.Float(out), nil
	})
}

// evalFold folds the stream through the expression exactly like the built-in
// reducers: the accumulator starts at the first value, and a single-value
// stream returns it without evaluating the expression.
func evalFold(ev *expr.Evaluator, src *stream.Source) (ops.Result, error) {
	if !src.Scan() {
		return ops.Result{}, src.Err()
	}
	acc := src.Value()
	for src.Scan() {
		next, err := ev.EvalReduce(acc, src.Value(), src.Index())
		if err != nil {
			return ops.Result{}, err
		}
		acc = next
	}
	if err := src.Err(); err != nil {
		return ops.Result{}, err
	}
	return ops.Float(acc), nil
}
