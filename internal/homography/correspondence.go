// Package homography estimates a 3x3 planar homography from mixed point
// and line correspondences using the Direct Linear Transform: each
// correspondence contributes a 2x9 linear constraint block on the nine
// homography coefficients, the blocks are stacked into one design matrix,
// and the coefficient vector is recovered as the right singular vector of
// the smallest singular value.
package homography

import (
	"github.com/MeKo-Tech/homography/internal/geometry"
)

// Restriction is the 2x9 constraint block one correspondence contributes
// to the design matrix. Columns follow the row-major order of the
// homography coefficients h11..h33.
type Restriction[T geometry.Float] [2][9]T

// Correspondence is anything that constrains the homography through a
// fixed 2x9 restriction block.
type Correspondence[T geometry.Float] interface {
	Restriction() Restriction[T]
}

// PointPair binds a source-plane point to its target-plane counterpart
// under the sought homography.
type PointPair[T geometry.Float] struct {
	Src geometry.Point[T]
	Dst geometry.Point[T]
}

// Restriction encodes dst x (H*src) = 0 in homogeneous coordinates.
func (p PointPair[T]) Restriction() Restriction[T] {
	x, y := p.Src.X, p.Src.Y
	xp, yp := p.Dst.X, p.Dst.Y
	return Restriction[T]{
		{0, 0, 0, -x, -y, -1, x * yp, y * yp, yp},
		{x, y, 1, 0, 0, 0, -x * xp, -y * xp, -xp},
	}
}

// LinePair binds a source-plane line to its target-plane counterpart
// under the sought homography.
type LinePair[T geometry.Float] struct {
	Src geometry.Line[T]
	Dst geometry.Line[T]
}

// Restriction encodes src x (H^T*dst) = 0, the dual of the point
// constraint: the source line and the pulled-back target line must be
// parallel as homogeneous vectors.
func (l LinePair[T]) Restriction() Restriction[T] {
	a, b, c := l.Src.A, l.Src.B, l.Src.C
	ap, bp, cp := l.Dst.A, l.Dst.B, l.Dst.C
	return Restriction[T]{
		{0, -c * ap, b * ap, 0, -c * bp, b * bp, 0, -c * cp, b * cp},
		{c * ap, 0, -a * ap, c * bp, 0, -a * bp, c * cp, 0, -a * cp},
	}
}
