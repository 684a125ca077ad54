package homography

import (
	"github.com/MeKo-Tech/homography/internal/geometry"
)

// Matrix is a 3x3 planar homography, valid up to an arbitrary nonzero
// scale factor.
type Matrix[T geometry.Float] [3][3]T

// Apply maps p through the homography with a homogeneous divide.
// ok is false when the denominator is zero (p maps to the line at
// infinity).
func (m Matrix[T]) Apply(p geometry.Point[T]) (out geometry.Point[T], ok bool) {
	den := m[2][0]*p.X + m[2][1]*p.Y + m[2][2]
	if den == 0 {
		return geometry.Point[T]{}, false
	}
	return geometry.Point[T]{
		X: (m[0][0]*p.X + m[0][1]*p.Y + m[0][2]) / den,
		Y: (m[1][0]*p.X + m[1][1]*p.Y + m[1][2]) / den,
	}, true
}

// Scale returns the homography with every coefficient multiplied by k.
// For nonzero k the result represents the same transform.
func (m Matrix[T]) Scale(k T) Matrix[T] {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] *= k
		}
	}
	return m
}

// Normalized rescales the homography so the bottom-right coefficient is 1.
// ok is false when that coefficient is zero, in which case m is returned
// unchanged.
func (m Matrix[T]) Normalized() (Matrix[T], bool) {
	if m[2][2] == 0 {
		return m, false
	}
	return m.Scale(1 / m[2][2]), true
}
