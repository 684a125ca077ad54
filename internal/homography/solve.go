package homography

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/MeKo-Tech/homography/internal/geometry"
)

// ErrInsufficientConstraints is returned by Estimator.Solve when the
// correspondences supply fewer than four point-equivalents, leaving the
// system under-determined.
var ErrInsufficientConstraints = errors.New("homography: insufficient constraints (need at least 4 point or line correspondences)")

// ErrFactorization is returned when the SVD fails to converge.
var ErrFactorization = errors.New("homography: svd factorization failed")

// Solution is a homography candidate together with the singular values
// of the design matrix it was extracted from.
type Solution[T geometry.Float] struct {
	// H is the estimated homography, valid up to scale.
	H Matrix[T]
	// Residual is the smallest singular value. For a consistent,
	// well-conditioned system it is near zero (assuming normalized
	// input scale).
	Residual T
	// Spectrum holds all singular values in descending order, so
	// callers can assess conditioning and rank deficiency themselves.
	Spectrum []T
}

// SolveDesign computes the least-squares null-space direction of an Mx9
// design matrix via SVD and reshapes it, row-major, into the homography.
// Only the right singular vectors are computed. The factorization is
// defined for any real matrix; a rank-deficient input yields a solution
// with no geometric meaning rather than an error.
func SolveDesign[T geometry.Float](a *mat.Dense) (Solution[T], error) {
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThinV) {
		return Solution[T]{}, ErrFactorization
	}

	values := svd.Values(nil)
	var v mat.Dense
	svd.VTo(&v)

	// gonum orders singular values descending, so the null-space
	// direction is strictly the last column of V. The restriction
	// columns are already in row-major h11..h33 order, so the reshape
	// needs no transpose.
	last := len(values) - 1
	var h Matrix[T]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			h[i][j] = T(v.At(3*i+j, last))
		}
	}

	spectrum := make([]T, len(values))
	for i, s := range values {
		spectrum[i] = T(s)
	}

	return Solution[T]{H: h, Residual: T(values[last]), Spectrum: spectrum}, nil
}
