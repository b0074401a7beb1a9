package main

import (
	"bufio"
	"errors"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pcalc/internal/ops"
	"pcalc/internal/stream"
)

// streamFn transforms one input value; index is the value's 1-based
// position, used by the expression evaluator for error reporting.
type streamFn func(v float64, index int) (ops.Result, error)

// reduceFn folds a whole source into a single result.
type reduceFn func(src *stream.Source) (ops.Result, error)

// mapperFn adapts a pure operator to the streaming run loop.
func mapperFn(m ops.Mapper) streamFn {
	return func(v float64, _ int) (ops.Result, error) { return m(v), nil }
}

// runStreaming drives a streaming command: each result is written as soon as
// it is computed. On a mid-stream failure (a non-numeric line, an expression
// error) the results already computed are flushed before the error is
// returned, so upstream output is never retracted.
func runStreaming(cmd *cobra.Command, fn streamFn) error {
	src, err := newSource(cmd)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(cmd.OutOrStdout())
	n := 0
	for src.Scan() {
		res, err := fn(src.Value(), src.Index())
		if err != nil {
			return finish(w, err)
		}
		if _, err := w.WriteString(res.String() + "\n"); err != nil {
			return finish(w, err)
		}
		n++
	}
	logger.Debug("stream done", zap.Int("values", n))
	return finish(w, src.Err())
}

// runReducing drives a reducing command: nothing is written unless the whole
// input folded cleanly.
func runReducing(cmd *cobra.Command, fn reduceFn) error {
	src, err := newSource(cmd)
	if err != nil {
		return err
	}
	res, err := fn(src)
	if err != nil {
		return err
	}
	logger.Debug("reduce done", zap.String("result", res.String()))
	w := bufio.NewWriter(cmd.OutOrStdout())
	if _, err := w.WriteString(res.String() + "\n"); err != nil {
		return finish(w, err)
	}
	return finish(w, nil)
}

func newSource(cmd *cobra.Command) (*stream.Source, error) {
	return stream.New(cmd.InOrStdin(), cfg.Input.MaxLineBytes)
}

// finish flushes buffered output and reconciles the flush error with the
// error that ended the run. A broken downstream pipe means the consumer is
// gone and is swallowed; every other write failure is fatal.
func finish(w *bufio.Writer, runErr error) error {
	flushErr := w.Flush()
	if brokenPipe(runErr) || brokenPipe(flushErr) {
		logger.Debug("downstream closed the pipe, stopping")
		return nil
	}
	if runErr != nil {
		return runErr
	}
	return flushErr
}

func brokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE)
}
