package homography

import (
	"math"

	"github.com/MeKo-Tech/homography/internal/geometry"
)

// ExactQuad computes the homography mapping src[i] -> dst[i] exactly for
// four point correspondences by fixing h33 = 1 and solving the resulting
// 8x8 linear system. ok is false when the system is singular (collinear
// or coincident corners). Unlike the DLT path this is a closed-form
// solve with no residual; use it for noise-free quad-to-quad mappings.
func ExactQuad(src, dst [4]geometry.Point[float64]) (Matrix[float64], bool) {
	// Two rows per correspondence:
	//   x' = (h11 x + h12 y + h13) / (h31 x + h32 y + 1)
	//   y' = (h21 x + h22 y + h23) / (h31 x + h32 y + 1)
	var a [8][8]float64
	var b [8]float64
	for i := 0; i < 4; i++ {
		x, y := src[i].X, src[i].Y
		xp, yp := dst[i].X, dst[i].Y
		r := 2 * i

		a[r][0] = x
		a[r][1] = y
		a[r][2] = 1
		a[r][6] = -x * xp
		a[r][7] = -y * xp
		b[r] = xp

		a[r+1][3] = x
		a[r+1][4] = y
		a[r+1][5] = 1
		a[r+1][6] = -x * yp
		a[r+1][7] = -y * yp
		b[r+1] = yp
	}

	h, ok := solveLinear8(a, b)
	if !ok {
		return Matrix[float64]{}, false
	}
	return Matrix[float64]{
		{h[0], h[1], h[2]},
		{h[3], h[4], h[5]},
		{h[6], h[7], 1},
	}, true
}

// solveLinear8 solves the 8x8 system a*x = b by Gauss-Jordan elimination
// with partial pivoting. ok is false when a pivot column is entirely zero.
func solveLinear8(a [8][8]float64, b [8]float64) ([8]float64, bool) {
	for col := 0; col < 8; col++ {
		pivot := pivotRow(&a, col)
		if pivot < 0 {
			return [8]float64{}, false
		}
		if pivot != col {
			a[col], a[pivot] = a[pivot], a[col]
			b[col], b[pivot] = b[pivot], b[col]
		}

		div := a[col][col]
		for c := col; c < 8; c++ {
			a[col][c] /= div
		}
		b[col] /= div

		for r := 0; r < 8; r++ {
			if r == col || a[r][col] == 0 {
				continue
			}
			factor := a[r][col]
			for c := col; c < 8; c++ {
				a[r][c] -= factor * a[col][c]
			}
			b[r] -= factor * b[col]
		}
	}
	return b, true
}

// pivotRow returns the row at or below col with the largest absolute
// value in that column, or -1 when the column is zero.
func pivotRow(a *[8][8]float64, col int) int {
	best := -1
	maxAbs := 0.0
	for r := col; r < 8; r++ {
		if v := math.Abs(a[r][col]); v > maxAbs {
			maxAbs = v
			best = r
		}
	}
	return best
}
