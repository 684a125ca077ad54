package homography

import (
	"gonum.org/v1/gonum/mat"

	"github.com/MeKo-Tech/homography/internal/geometry"
)

// DesignMatrix stacks the restriction blocks of all correspondences, in
// input order, into one dense matrix: rows 2i and 2i+1 hold the block of
// the i-th correspondence. The matrix always has at least 9 rows so the
// SVD shape assumptions hold; with fewer than 5 correspondences the
// trailing rows stay zero and the system is under-determined, which is
// left to the caller to avoid.
func DesignMatrix[T geometry.Float](cs []Correspondence[T]) *mat.Dense {
	rows := 2 * len(cs)
	if rows < 9 {
		rows = 9
	}
	m := mat.NewDense(rows, 9, nil)
	for i, c := range cs {
		r := c.Restriction()
		for j := 0; j < 9; j++ {
			m.Set(2*i, j, float64(r[0][j]))
			m.Set(2*i+1, j, float64(r[1][j]))
		}
	}
	return m
}
