package tetris

// Number is the set of coordinate types a Point can carry.
type Number interface {
	~int | ~float32
}

// Point is a 2D coordinate in piece-local or grid space.
type Point[T Number] struct {
	X, Y T
}

// Pt is shorthand for constructing a Point.
func Pt[T Number](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Add returns the component-wise sum of p and o.
func (p Point[T]) Add(o Point[T]) Point[T] {
	return Point[T]{X: p.X + o.X, Y: p.Y + o.Y}
}
