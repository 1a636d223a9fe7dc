package fixed

import "cmp"

// Scalar is the set of component types a Vector2D or Rect can hold: whole
// pixels (int32) or fixed-point numbers (Num).
type Scalar interface {
	~int32
}

// Vector2D is a two dimensional vector.
type Vector2D[T Scalar] struct {
	X, Y T
}

// Vec is shorthand for Vector2D[T]{X: x, Y: y}.
func Vec[T Scalar](x, y T) Vector2D[T] {
	return Vector2D[T]{X: x, Y: y}
}

// NumVec builds a fixed-point vector from whole numbers.
func NumVec(x, y int) Vector2D[Num] {
	return Vector2D[Num]{X: Int(x), Y: Int(y)}
}

func (v Vector2D[T]) Add(o Vector2D[T]) Vector2D[T] {
	return Vector2D[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2D[T]) Sub(o Vector2D[T]) Vector2D[T] {
	return Vector2D[T]{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2D[T]) Neg() Vector2D[T] {
	return Vector2D[T]{X: -v.X, Y: -v.Y}
}

// Clamp clamps each component into the box spanned by lo and hi.
func (v Vector2D[T]) Clamp(lo, hi Vector2D[T]) Vector2D[T] {
	return Vector2D[T]{X: Clamp(v.X, lo.X, hi.X), Y: Clamp(v.Y, lo.Y, hi.Y)}
}

// Floor converts a fixed-point vector to whole pixels.
func Floor(v Vector2D[Num]) Vector2D[int32] {
	return Vector2D[int32]{X: int32(v.X.Floor()), Y: int32(v.Y.Floor())}
}

// ToNum converts a pixel vector to fixed point.
func ToNum(v Vector2D[int32]) Vector2D[Num] {
	return Vector2D[Num]{X: Int(int(v.X)), Y: Int(int(v.Y))}
}

// ScaleNum multiplies both components by k.
func ScaleNum(v Vector2D[Num], k Num) Vector2D[Num] {
	return Vector2D[Num]{X: v.X.Mul(k), Y: v.Y.Mul(k)}
}

// Clamp restricts v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return max(lo, min(v, hi))
}
