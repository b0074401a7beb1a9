package stream

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectAll(t *testing.T, input string) ([]float64, error) {
	t.Helper()
	src, err := New(strings.NewReader(input), 0)
	if err != nil {
		return nil, err
	}
	return src.Collect()
}

func TestSource_OrderAndBlankSkipping(t *testing.T) {
	values, err := collectAll(t, "1\n\n  \n2.5\n\t\n-3\n")
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{1, 2.5, -3}, values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestSource_AcceptsFloatForms(t *testing.T) {
	values, err := collectAll(t, " 10 \n-0.5\n1e3\n+4\n")
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{10, -0.5, 1000, 4}, values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestSource_EmptyInput(t *testing.T) {
	t.Run("no lines at all", func(t *testing.T) {
		_, err := New(strings.NewReader(""), 0)
		assert.ErrorIs(t, err, ErrEmptyInput)
	})

	t.Run("only blank lines", func(t *testing.T) {
		_, err := New(strings.NewReader("\n   \n\t\n"), 0)
		assert.ErrorIs(t, err, ErrEmptyInput)
	})
}

func TestSource_ParseErrorOnFirstLine(t *testing.T) {
	_, err := New(strings.NewReader("banana\n2\n"), 0)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "banana", perr.Raw)
	assert.Equal(t, 1, perr.Line)
}

func TestSource_ParseErrorMidStream(t *testing.T) {
	src, err := New(strings.NewReader("1\n2\noops\n3\n"), 0)
	require.NoError(t, err)

	var got []float64
	for src.Scan() {
		got = append(got, src.Value())
	}

	// Values before the bad line were delivered; the error names the line.
	if diff := cmp.Diff([]float64{1, 2}, got); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	var perr *ParseError
	require.ErrorAs(t, src.Err(), &perr)
	assert.Equal(t, "oops", perr.Raw)
	assert.Equal(t, 3, perr.Line)
}

func TestSource_IndexIsOneBased(t *testing.T) {
	src, err := New(strings.NewReader("\n5\n\n6\n"), 0)
	require.NoError(t, err)

	require.True(t, src.Scan())
	assert.Equal(t, 1, src.Index())
	require.True(t, src.Scan())
	assert.Equal(t, 2, src.Index())
	assert.False(t, src.Scan())
	assert.NoError(t, src.Err())
}

func TestSource_SinglePass(t *testing.T) {
	src, err := New(strings.NewReader("1\n2\n"), 0)
	require.NoError(t, err)

	values, err := src.Collect()
	require.NoError(t, err)
	assert.Len(t, values, 2)

	// Exhausted: no replay.
	assert.False(t, src.Scan())
	more, err := src.Collect()
	require.NoError(t, err)
	assert.Empty(t, more)
}

func TestSource_LineTooLong(t *testing.T) {
	long := strings.Repeat("9", 100)
	_, err := New(strings.NewReader(long+"\n"), 16)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyInput)
}
