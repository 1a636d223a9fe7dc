// Package fixed implements the fixed-point arithmetic used for positions and
// velocities. Values are signed 24.8 numbers stored in an int32, so addition,
// subtraction and comparison are plain integer operations and are exact.
package fixed

import (
	"math"
	"strconv"
)

// FracBits is the number of fractional bits in a Num.
const FracBits = 8

const (
	one      = 1 << FracBits
	fracMask = one - 1
)

// Num is a signed fixed-point number with FracBits fractional bits.
// The zero value is 0.
type Num int32

// Int returns n as a Num.
func Int(n int) Num {
	return Num(int32(n) << FracBits)
}

// FromRaw wraps a raw 24.8 value.
func FromRaw(raw int32) Num {
	return Num(raw)
}

// FromFloat converts f to the nearest representable Num.
func FromFloat(f float64) Num {
	return Num(int32(math.Round(f * one)))
}

// Ratio returns a/b as a Num.
func Ratio(a, b int) Num {
	return Int(a).Div(Int(b))
}

// Raw returns the underlying 24.8 representation.
func (n Num) Raw() int32 {
	return int32(n)
}

// Mul multiplies two fixed-point numbers. The result is rounded toward
// negative infinity.
func (n Num) Mul(o Num) Num {
	return Num((int64(n) * int64(o)) >> FracBits)
}

// Div divides n by o, truncating toward zero. Dividing by zero panics.
func (n Num) Div(o Num) Num {
	return Num((int64(n) << FracBits) / int64(o))
}

// MulInt multiplies by a whole number.
func (n Num) MulInt(k int) Num {
	return n * Num(k)
}

// Floor returns the largest integer not greater than n.
func (n Num) Floor() int {
	return int(n >> FracBits)
}

// Round returns the nearest integer, rounding halves up.
func (n Num) Round() int {
	return int((n + one/2) >> FracBits)
}

// Frac returns the non-negative fractional part, n - Floor(n).
func (n Num) Frac() Num {
	return n & fracMask
}

// Clamp limits n to [lo, hi].
func (n Num) Clamp(lo, hi Num) Num {
	return Clamp(n, lo, hi)
}

// Abs returns the absolute value of n.
func (n Num) Abs() Num {
	if n < 0 {
		return -n
	}
	return n
}

// Sign returns -1, 0 or 1.
func (n Num) Sign() int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// Float64 converts n to a float64. Every Num is exactly representable.
func (n Num) Float64() float64 {
	return float64(n) / one
}

func (n Num) String() string {
	return strconv.FormatFloat(n.Float64(), 'f', -1, 64)
}
