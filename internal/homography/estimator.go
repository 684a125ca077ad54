package homography

import (
	"github.com/MeKo-Tech/homography/internal/geometry"
)

// Estimator accumulates point and line correspondences and solves for
// the homography mapping the source plane onto the target plane.
// The zero value is ready to use. Not safe for concurrent use.
type Estimator[T geometry.Float] struct {
	correspondences []Correspondence[T]
}

// NewEstimator returns an empty estimator.
func NewEstimator[T geometry.Float]() *Estimator[T] {
	return &Estimator[T]{}
}

// AddPointPair records that src in the source plane maps to dst in the
// target plane.
func (e *Estimator[T]) AddPointPair(src, dst geometry.Point[T]) {
	e.correspondences = append(e.correspondences, PointPair[T]{Src: src, Dst: dst})
}

// AddLinePair records that the line src in the source plane maps to the
// line dst in the target plane.
func (e *Estimator[T]) AddLinePair(src, dst geometry.Line[T]) {
	e.correspondences = append(e.correspondences, LinePair[T]{Src: src, Dst: dst})
}

// Add records an arbitrary correspondence.
func (e *Estimator[T]) Add(c Correspondence[T]) {
	e.correspondences = append(e.correspondences, c)
}

// Len returns the number of recorded correspondences.
func (e *Estimator[T]) Len() int {
	return len(e.correspondences)
}

// Restrictions returns the constraint blocks of all recorded
// correspondences, in insertion order.
func (e *Estimator[T]) Restrictions() []Restriction[T] {
	rs := make([]Restriction[T], len(e.correspondences))
	for i, c := range e.correspondences {
		rs[i] = c.Restriction()
	}
	return rs
}

// Solve assembles the design matrix and computes the homography.
// It returns ErrInsufficientConstraints when fewer than four
// correspondences were added; each line pair contributes the same
// constraint count as a point pair. Degenerate geometry (collinear
// points, duplicate correspondences) is not detected — inspect
// Solution.Spectrum to judge conditioning.
func (e *Estimator[T]) Solve() (Solution[T], error) {
	if len(e.correspondences) < 4 {
		return Solution[T]{}, ErrInsufficientConstraints
	}
	return SolveDesign[T](DesignMatrix(e.correspondences))
}
