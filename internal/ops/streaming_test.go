package ops

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstantMappers(t *testing.T) {
	tests := []struct {
		name   string
		mapper Mapper
		in     float64
		want   float64
	}{
		{"add", Add(3), 1, 4},
		{"add negative constant", Add(-3), 1, -2},
		{"sub", Sub(3), 1, -2},
		{"mul", Mul(10), 2.5, 25},
		{"div", Div(2), 5, 2.5},
		{"div by negative", Div(-2), 5, -2.5},
		{"pow", Pow(2), 3, 9},
		{"pow fractional", Pow(0.5), 9, 3},
		{"abs negative", Abs(), -3.5, 3.5},
		{"abs positive", Abs(), 3.5, 3.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.mapper(tt.in)
			assert.Equal(t, tt.want, got.Value)
			assert.False(t, got.Integral)
		})
	}
}

func TestMappersArePure(t *testing.T) {
	m := Add(3)
	assert.Equal(t, m(1), m(1))
}

func TestMod(t *testing.T) {
	t.Run("floored result sign follows divisor", func(t *testing.T) {
		assert.Equal(t, Float(-2), Mod(-3, false)(7))
		assert.Equal(t, Float(2), Mod(3, false)(-7))
		assert.Equal(t, Float(1), Mod(3, false)(7))
	})

	t.Run("fmod result sign follows dividend and is integral", func(t *testing.T) {
		got := Mod(-3, true)(7)
		assert.Equal(t, 1.0, got.Value)
		assert.True(t, got.Integral)

		got = Mod(3, true)(-7)
		assert.Equal(t, -1.0, got.Value)
		assert.True(t, got.Integral)
	})
}

func TestRound(t *testing.T) {
	t.Run("precision zero is integral and half to even", func(t *testing.T) {
		r := Round(0)
		assert.Equal(t, Int(2), r(2.5))
		assert.Equal(t, Int(2), r(1.5))
		assert.Equal(t, Int(-2), r(-2.5))
		assert.Equal(t, Int(3), r(2.7))
	})

	t.Run("positive precision", func(t *testing.T) {
		r := Round(1)
		assert.Equal(t, Float(2.2), r(2.25))
		assert.Equal(t, Float(1.4), r(1.44))
	})

	t.Run("negative precision rounds at powers of ten", func(t *testing.T) {
		r := Round(-1)
		assert.Equal(t, Float(120), r(123))
		assert.Equal(t, Float(-120), r(-123))
	})
}

func TestCeilFloor(t *testing.T) {
	assert.Equal(t, Int(-1), Ceil()(-1.5))
	assert.Equal(t, Int(2), Ceil()(1.5))
	assert.Equal(t, Int(-2), Floor()(-1.5))
	assert.Equal(t, Int(1), Floor()(1.5))
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "2.5", Float(2.5).String())
	assert.Equal(t, "6", Float(6).String())
	assert.Equal(t, "-0.5", Float(-0.5).String())
	assert.Equal(t, "3", Int(3).String())
	assert.Equal(t, "-2", Int(-2).String())
	assert.Equal(t, "+Inf", Float(math.Inf(1)).String())
}

func TestResultString_IntegralOutOfInt64Range(t *testing.T) {
	// ceil/floor of huge values must not wrap through an int64 conversion.
	assert.Equal(t, strconv.FormatFloat(1e300, 'f', 0, 64), Ceil()(1e300).String())
	assert.Equal(t, strconv.FormatFloat(-1e300, 'f', 0, 64), Floor()(-1e300).String())
	assert.Equal(t, "+Inf", Int(math.Inf(1)).String())
	assert.Equal(t, "NaN", Int(math.NaN()).String())
}
