package fixed

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect[T Scalar] struct {
	Position Vector2D[T]
	Size     Vector2D[T]
}

// NewRect builds a rectangle from its top-left corner and size.
func NewRect[T Scalar](position, size Vector2D[T]) Rect[T] {
	return Rect[T]{Position: position, Size: size}
}

func (r Rect[T]) Right() T {
	return r.Position.X + r.Size.X
}

func (r Rect[T]) Bottom() T {
	return r.Position.Y + r.Size.Y
}

// Center returns the midpoint of the rectangle.
func (r Rect[T]) Center() Vector2D[T] {
	return Vector2D[T]{X: r.Position.X + r.Size.X/2, Y: r.Position.Y + r.Size.Y/2}
}

// Touches reports whether r and o overlap. Rectangles that only share an
// edge do not touch.
func (r Rect[T]) Touches(o Rect[T]) bool {
	return r.Position.X < o.Right() &&
		o.Position.X < r.Right() &&
		r.Position.Y < o.Bottom() &&
		o.Position.Y < r.Bottom()
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect[T]) Contains(p Vector2D[T]) bool {
	return p.X >= r.Position.X && p.X < r.Right() &&
		p.Y >= r.Position.Y && p.Y < r.Bottom()
}
