// Package stream turns newline-delimited text into an ordered sequence of
// float64 values. Blank and whitespace-only lines are skipped; every other
// line must parse as a number. The sequence is lazy and single-pass: once a
// value has been consumed it cannot be replayed.
package stream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrEmptyInput reports that the input contained no usable lines.
var ErrEmptyInput = errors.New("no input values (input was empty or all blank lines)")

// ParseError reports a line that did not parse as a number.
type ParseError struct {
	Raw  string // the offending line, whitespace-trimmed
	Line int    // 1-based index among surviving (non-blank) lines
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("value %d: %q is not a number", e.Line, e.Raw)
}

// Source yields parsed values from an input stream in line order.
//
// Iteration follows the bufio.Scanner idiom:
//
//	src, err := stream.New(r, 0)
//	for src.Scan() {
//	    v := src.Value()
//	}
//	err = src.Err()
//
// New reads ahead to the first value so that empty input and a malformed
// first line fail before the caller produces any output.
type Source struct {
	sc      *bufio.Scanner
	value   float64
	index   int
	pending *float64
	err     error
}

// DefaultMaxLineBytes caps the length of a single input line.
const DefaultMaxLineBytes = 1024 * 1024

// New builds a Source over r. It fails with ErrEmptyInput if no line
// survives blank-line skipping, or with a *ParseError if the first surviving
// line is not numeric. maxLineBytes <= 0 selects DefaultMaxLineBytes.
func New(r io.Reader, maxLineBytes int) (*Source, error) {
	if maxLineBytes <= 0 {
		maxLineBytes = DefaultMaxLineBytes
	}
	sc := bufio.NewScanner(r)
	// The scanner's limit is the larger of the cap and max arguments, so the
	// initial buffer must not exceed the configured line cap.
	initial := 64 * 1024
	if maxLineBytes < initial {
		initial = maxLineBytes
	}
	sc.Buffer(make([]byte, 0, initial), maxLineBytes)

	s := &Source{sc: sc}
	v, ok, err := s.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrEmptyInput
	}
	s.pending = &v
	return s, nil
}

// next scans forward to the next surviving line and parses it.
func (s *Source) next() (float64, bool, error) {
	for s.sc.Scan() {
		line := strings.TrimSpace(s.sc.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return 0, false, &ParseError{Raw: line, Line: s.index + 1}
		}
		return v, true, nil
	}
	if err := s.sc.Err(); err != nil {
		return 0, false, fmt.Errorf("reading input: %w", err)
	}
	return 0, false, nil
}

// Scan advances to the next value. It returns false at the end of input or
// on error; Err distinguishes the two.
func (s *Source) Scan() bool {
	if s.err != nil {
		return false
	}
	if s.pending != nil {
		s.value = *s.pending
		s.pending = nil
		s.index++
		return true
	}
	v, ok, err := s.next()
	if err != nil {
		s.err = err
		return false
	}
	if !ok {
		return false
	}
	s.value = v
	s.index++
	return true
}

// Value returns the value read by the last successful Scan.
func (s *Source) Value() float64 { return s.value }

// Index returns the 1-based position of the current value among surviving
// lines.
func (s *Source) Index() int { return s.index }

// Err returns the first error encountered while scanning, or nil if the
// input was consumed cleanly.
func (s *Source) Err() error { return s.err }

// Collect drains the remaining values into a slice. Operators that need the
// whole sequence (median, mode, mean) use this; the Source cannot be reused
// afterwards.
func (s *Source) Collect() ([]float64, error) {
	var out []float64
	for s.Scan() {
		out = append(out, s.Value())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
