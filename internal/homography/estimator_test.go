package homography

import (
	"testing"

	"github.com/MeKo-Tech/homography/internal/geometry"
)

// TestEstimatorRestrictions verifies the restriction collection preserves
// insertion order across correspondence kinds.
func TestEstimatorRestrictions(t *testing.T) {
	pp := PointPair[float64]{
		Src: geometry.Point[float64]{X: 1, Y: 2},
		Dst: geometry.Point[float64]{X: 3, Y: 4},
	}
	lp := LinePair[float64]{
		Src: geometry.Line[float64]{A: 1, B: 2, C: 3},
		Dst: geometry.Line[float64]{A: 4, B: 5, C: 6},
	}

	est := NewEstimator[float64]()
	est.AddLinePair(lp.Src, lp.Dst)
	est.AddPointPair(pp.Src, pp.Dst)
	est.Add(pp)

	if est.Len() != 3 {
		t.Fatalf("expected 3 correspondences, got %d", est.Len())
	}

	rs := est.Restrictions()
	if len(rs) != 3 {
		t.Fatalf("expected 3 restrictions, got %d", len(rs))
	}
	if rs[0] != lp.Restriction() || rs[1] != pp.Restriction() || rs[2] != pp.Restriction() {
		t.Error("restrictions out of insertion order")
	}
}

// TestEstimatorZeroValue verifies the zero value is usable.
func TestEstimatorZeroValue(t *testing.T) {
	var est Estimator[float64]
	if est.Len() != 0 {
		t.Fatalf("expected empty estimator, got %d", est.Len())
	}
	if _, err := est.Solve(); err == nil {
		t.Error("expected error for empty estimator")
	}
}
