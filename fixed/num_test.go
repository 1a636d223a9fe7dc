package fixed_test

import (
	"fmt"
	"testing"

	"github.com/plus3/pong/fixed"
	"github.com/stretchr/testify/assert"
)

func TestNumConversions(t *testing.T) {
	assert.Equal(t, int32(3<<8), fixed.Int(3).Raw())
	assert.Equal(t, fixed.Int(-2), fixed.FromRaw(-512))
	assert.Equal(t, fixed.FromRaw(384), fixed.FromFloat(1.5))
	assert.Equal(t, fixed.FromRaw(64), fixed.Ratio(1, 4))
	assert.Equal(t, 1.5, fixed.FromFloat(1.5).Float64())
	assert.Equal(t, "-0.25", fixed.FromFloat(-0.25).String())
	assert.Equal(t, "7", fixed.Int(7).String())
}

func TestNumArithmetic(t *testing.T) {
	half := fixed.FromFloat(0.5)

	assert.Equal(t, fixed.FromFloat(1.5), fixed.Int(3).Mul(half))
	assert.Equal(t, fixed.Int(6), fixed.Int(3).Div(half))
	assert.Equal(t, fixed.FromFloat(4.5), fixed.FromFloat(1.5).MulInt(3))
	assert.Equal(t, fixed.Int(2), fixed.Int(1)+fixed.Int(1))

	// Mul rounds toward negative infinity on the raw value.
	assert.Equal(t, fixed.FromRaw(-1), fixed.FromRaw(-1).Mul(half))
	assert.Equal(t, fixed.FromRaw(0), fixed.FromRaw(1).Mul(half))

	// Div truncates toward zero.
	assert.Equal(t, fixed.FromRaw(-85), fixed.Int(-1).Div(fixed.Int(3)))

	assert.Panics(t, func() { fixed.Int(1).Div(0) })
}

func TestNumRounding(t *testing.T) {
	tests := []struct {
		in    float64
		floor int
		round int
		frac  float64
	}{
		{1.5, 1, 2, 0.5},
		{1.25, 1, 1, 0.25},
		{-1.5, -2, -1, 0.5},
		{-0.25, -1, 0, 0.75},
		{3, 3, 3, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.in), func(t *testing.T) {
			n := fixed.FromFloat(tt.in)
			assert.Equal(t, tt.floor, n.Floor())
			assert.Equal(t, tt.round, n.Round())
			assert.Equal(t, tt.frac, n.Frac().Float64())
		})
	}
}

func TestNumSignAndAbs(t *testing.T) {
	assert.Equal(t, -1, fixed.Int(-4).Sign())
	assert.Equal(t, 0, fixed.Num(0).Sign())
	assert.Equal(t, 1, fixed.FromRaw(1).Sign())
	assert.Equal(t, fixed.Int(4), fixed.Int(-4).Abs())
	assert.Equal(t, fixed.Int(4), fixed.Int(4).Abs())
}

func TestNumClamp(t *testing.T) {
	lo, hi := fixed.Int(0), fixed.Int(112)

	assert.Equal(t, fixed.Int(0), fixed.FromFloat(-1.5).Clamp(lo, hi))
	assert.Equal(t, fixed.FromFloat(56.5), fixed.FromFloat(56.5).Clamp(lo, hi))
	assert.Equal(t, fixed.Int(112), fixed.FromFloat(112.25).Clamp(lo, hi))
}

func ExampleNum() {
	speed := fixed.FromFloat(1.5)
	pos := fixed.Int(10)
	for range 3 {
		pos += speed
	}
	fmt.Println(pos, pos.Floor())
	// Output: 14.5 14
}
