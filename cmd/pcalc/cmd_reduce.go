package main

import (
	"github.com/spf13/cobra"

	"pcalc/internal/ops"
	"pcalc/internal/stream"
)

// Reducing commands: the whole input folds to a single output value. All of
// them return a single value unchanged when the input has exactly one.

var raddCmd = &cobra.Command{
	Use:     "radd",
	Aliases: []string{"sum"},
	Short:   "Reduce by addition (alias: sum)",
	Args:    cobra.NoArgs,
	RunE:    runRAdd,
}

var rsubCmd = &cobra.Command{
	Use:   "rsub",
	Short: "Reduce by subtraction",
	Args:  cobra.NoArgs,
	RunE:  runRSub,
}

var rmulCmd = &cobra.Command{
	Use:   "rmul",
	Short: "Reduce by multiplication",
	Args:  cobra.NoArgs,
	RunE:  runRMul,
}

var rdivCmd = &cobra.Command{
	Use:   "rdiv",
	Short: "Reduce by division",
	Args:  cobra.NoArgs,
	RunE:  runRDiv,
}

var rmodFMod bool

var rmodCmd = &cobra.Command{
	Use:   "rmod",
	Short: "Reduce by modulo",
	Long: `Reduce by modulo.

By default each step is floored modulo, matching the mod command: the
sign follows the divisor. Pass --fmod for the IEEE remainder instead
(sign follows the dividend, fmod-style).`,
	Args: cobra.NoArgs,
	RunE: runRMod,
}

var rpowCmd = &cobra.Command{
	Use:   "rpow",
	Short: "Reduce by exponentiation",
	Args:  cobra.NoArgs,
	RunE:  runRPow,
}

var minCmd = &cobra.Command{
	Use:   "min",
	Short: "Return the smallest value",
	Args:  cobra.NoArgs,
	RunE:  runMin,
}

var maxCmd = &cobra.Command{
	Use:   "max",
	Short: "Return the largest value",
	Args:  cobra.NoArgs,
	RunE:  runMax,
}

var meanCmd = &cobra.Command{
	Use:   "mean",
	Short: "Compute mean",
	Args:  cobra.NoArgs,
	RunE:  runMean,
}

var medianCmd = &cobra.Command{
	Use:   "median",
	Short: "Compute median",
	Args:  cobra.NoArgs,
	RunE:  runMedian,
}

var modeCmd = &cobra.Command{
	Use:   "mode",
	Short: "Compute mode",
	Long: `Compute mode.

Formatting multiple modes is ambiguous on a single output line, so a
tie for the highest frequency is an error.`,
	Args: cobra.NoArgs,
	RunE: runMode,
}

func init() {
	rmodCmd.Flags().BoolVar(&rmodFMod, "fmod", false, "IEEE remainder at each step: sign follows the dividend")
}

func foldReduce(cmd *cobra.Command, op ops.BinaryOp) error {
	return runReducing(cmd, func(src *stream.Source) (ops.Result, error) {
		return ops.Fold(src, op)
	})
}

func runRAdd(cmd *cobra.Command, args []string) error { return foldReduce(cmd, ops.AddOp) }
func runRSub(cmd *cobra.Command, args []string) error { return foldReduce(cmd, ops.SubOp) }
func runRMul(cmd *cobra.Command, args []string) error { return foldReduce(cmd, ops.MulOp) }
func runRDiv(cmd *cobra.Command, args []string) error { return foldReduce(cmd, ops.DivOp) }
func runRPow(cmd *cobra.Command, args []string) error { return foldReduce(cmd, ops.PowOp) }

func runRMod(cmd *cobra.Command, args []string) error {
	op := ops.ModOp
	if rmodFMod {
		op = ops.FModOp
	}
	return foldReduce(cmd, op)
}

func runMin(cmd *cobra.Command, args []string) error    { return runReducing(cmd, ops.Min) }
func runMax(cmd *cobra.Command, args []string) error    { return runReducing(cmd, ops.Max) }
func runMean(cmd *cobra.Command, args []string) error   { return runReducing(cmd, ops.Mean) }
func runMedian(cmd *cobra.Command, args []string) error { return runReducing(cmd, ops.Median) }
func runMode(cmd *cobra.Command, args []string) error   { return runReducing(cmd, ops.Mode) }
