// Package geometry provides the planar value types the homography
// estimation pipeline operates on.
package geometry

// Float constrains the scalar width of the estimation pipeline.
type Float interface {
	~float32 | ~float64
}

// Point represents a 2D coordinate in float space.
type Point[T Float] struct {
	X T
	Y T
}

// Line represents a 2D line in homogeneous form a*x + b*y + c = 0.
// (a, b) simultaneously zero does not describe a line; callers are
// responsible for not constructing such values.
type Line[T Float] struct {
	A T
	B T
	C T
}

// LineThroughPoints returns the line passing through p1 and p2.
// If the points coincide the result is degenerate (all coefficients zero).
func LineThroughPoints[T Float](p1, p2 Point[T]) Line[T] {
	a := p2.Y - p1.Y
	b := p1.X - p2.X
	c := -a*p1.X - b*p1.Y
	return Line[T]{A: a, B: b, C: c}
}

// Eval returns a*x + b*y + c for the given point; zero means the point
// lies on the line.
func (l Line[T]) Eval(p Point[T]) T {
	return l.A*p.X + l.B*p.Y + l.C
}
