package homography

import (
	"testing"

	"github.com/MeKo-Tech/homography/internal/geometry"
)

func somePointPair(i float64) Correspondence[float64] {
	return PointPair[float64]{
		Src: geometry.Point[float64]{X: i, Y: i + 1},
		Dst: geometry.Point[float64]{X: 2 * i, Y: i - 3},
	}
}

// TestDesignMatrixShape verifies the max(2N, 9) x 9 shape contract.
func TestDesignMatrixShape(t *testing.T) {
	cases := []struct {
		n        int
		wantRows int
	}{
		{0, 9},
		{1, 9},
		{4, 9},
		{5, 10},
		{8, 16},
	}

	for _, tc := range cases {
		cs := make([]Correspondence[float64], tc.n)
		for i := range cs {
			cs[i] = somePointPair(float64(i))
		}

		m := DesignMatrix(cs)
		rows, cols := m.Dims()
		if rows != tc.wantRows || cols != 9 {
			t.Errorf("n=%d: got %dx%d, want %dx9", tc.n, rows, cols, tc.wantRows)
		}
	}
}

// TestDesignMatrixOrder verifies blocks land at rows 2i and 2i+1 in
// insertion order, for a mixed point/line collection.
func TestDesignMatrixOrder(t *testing.T) {
	pp := PointPair[float64]{
		Src: geometry.Point[float64]{X: 1, Y: 2},
		Dst: geometry.Point[float64]{X: 3, Y: 4},
	}
	lp := LinePair[float64]{
		Src: geometry.Line[float64]{A: 1, B: 2, C: 3},
		Dst: geometry.Line[float64]{A: 4, B: 5, C: 6},
	}

	m := DesignMatrix([]Correspondence[float64]{pp, lp})

	blocks := []Restriction[float64]{pp.Restriction(), lp.Restriction()}
	for i, b := range blocks {
		for r := 0; r < 2; r++ {
			for c := 0; c < 9; c++ {
				if got := m.At(2*i+r, c); got != b[r][c] {
					t.Errorf("block %d row %d col %d: got %v, want %v", i, r, c, got, b[r][c])
				}
			}
		}
	}
}

// TestDesignMatrixPadding verifies rows beyond the supplied blocks stay zero.
func TestDesignMatrixPadding(t *testing.T) {
	cs := []Correspondence[float64]{somePointPair(1), somePointPair(2)}

	m := DesignMatrix(cs)
	for r := 4; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if m.At(r, c) != 0 {
				t.Errorf("padding row %d col %d = %v, want 0", r, c, m.At(r, c))
			}
		}
	}
}
