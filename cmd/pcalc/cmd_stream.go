package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"pcalc/internal/ops"
)

// Streaming commands: one output value per input value, emitted immediately.

var addCmd = &cobra.Command{
	Use:   "add CONSTANT",
	Short: "Add a constant to values",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

var subCmd = &cobra.Command{
	Use:   "sub CONSTANT",
	Short: "Subtract a constant from values",
	Args:  cobra.ExactArgs(1),
	RunE:  runSub,
}

var mulCmd = &cobra.Command{
	Use:   "mul CONSTANT",
	Short: "Multiply values by a constant",
	Args:  cobra.ExactArgs(1),
	RunE:  runMul,
}

var divCmd = &cobra.Command{
	Use:   "div CONSTANT",
	Short: "Divide values by a constant",
	Long:  "Divide values by a constant. Floating point division.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDiv,
}

var powCmd = &cobra.Command{
	Use:   "pow CONSTANT",
	Short: "Exponentiation of values by a constant",
	Args:  cobra.ExactArgs(1),
	RunE:  runPow,
}

var modFMod bool

var modCmd = &cobra.Command{
	Use:   "mod DIVISOR",
	Short: "Modulo values by a single divisor",
	Long: `Modulo values by a single divisor.

By default the result's sign follows the divisor (floored modulo). With
--fmod the result is the IEEE remainder instead: its sign follows the
dividend and it is printed as an integer.`,
	Args: cobra.ExactArgs(1),
	RunE: runMod,
}

var roundCmd = &cobra.Command{
	Use:   "round PRECISION",
	Short: "Round values to a decimal precision",
	Long: `Round values to a decimal precision, half to even.

Precision 0 also casts to an integer. Negative precision rounds at
powers of ten.`,
	Args: cobra.ExactArgs(1),
	RunE: runRound,
}

var ceilCmd = &cobra.Command{
	Use:   "ceil",
	Short: "Ceiling values",
	Args:  cobra.NoArgs,
	RunE:  runCeil,
}

var floorCmd = &cobra.Command{
	Use:   "floor",
	Short: "Floor values",
	Args:  cobra.NoArgs,
	RunE:  runFloor,
}

var absCmd = &cobra.Command{
	Use:   "abs",
	Short: "Compute absolute value",
	Args:  cobra.NoArgs,
	RunE:  runAbs,
}

func init() {
	modCmd.Flags().BoolVar(&modFMod, "fmod", false, "IEEE remainder: result sign follows the dividend, output is integral")
}

// parseConstant parses the single float argument the constant commands take.
func parseConstant(raw string) (float64, error) {
	c, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("constant %q is not a number", raw)
	}
	return c, nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	c, err := parseConstant(args[0])
	if err != nil {
		return err
	}
	return runStreaming(cmd, mapperFn(ops.Add(c)))
}

func runSub(cmd *cobra.Command, args []string) error {
	c, err := parseConstant(args[0])
	if err != nil {
		return err
	}
	return runStreaming(cmd, mapperFn(ops.Sub(c)))
}

func runMul(cmd *cobra.Command, args []string) error {
	c, err := parseConstant(args[0])
	if err != nil {
		return err
	}
	return runStreaming(cmd, mapperFn(ops.Mul(c)))
}

func runDiv(cmd *cobra.Command, args []string) error {
	c, err := parseConstant(args[0])
	if err != nil {
		return err
	}
	return runStreaming(cmd, mapperFn(ops.Div(c)))
}

func runPow(cmd *cobra.Command, args []string) error {
	c, err := parseConstant(args[0])
	if err != nil {
		return err
	}
	return runStreaming(cmd, mapperFn(ops.Pow(c)))
}

func runMod(cmd *cobra.Command, args []string) error {
	divisor, err := parseConstant(args[0])
	if err != nil {
		return err
	}
	return runStreaming(cmd, mapperFn(ops.Mod(divisor, modFMod)))
}

func runRound(cmd *cobra.Command, args []string) error {
	precision, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("precision %q is not an integer", args[0])
	}
	return runStreaming(cmd, mapperFn(ops.Round(precision)))
}

func runCeil(cmd *cobra.Command, args []string) error {
	return runStreaming(cmd, mapperFn(ops.Ceil()))
}

func runFloor(cmd *cobra.Command, args []string) error {
	return runStreaming(cmd, mapperFn(ops.Floor()))
}

func runAbs(cmd *cobra.Command, args []string) error {
	return runStreaming(cmd, mapperFn(ops.Abs()))
}
