package landmarks

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/specimen-tools/wingpoints/internal/mask"
)

// SplitColumn computes the vertical midline of the silhouette: the
// expectation of the per-column foreground distribution (the column-wise
// center of gravity), truncated to an integer column.
//
// The midline is the assumed bilateral-symmetry axis used to partition the
// silhouette into left and right wing halves. A mask with no foreground has
// no centroid and returns mask.ErrNoRegionsFound.
func SplitColumn(m *mask.Mask) (int, error) {
	weights := m.ColumnSums()
	if floats.Sum(weights) == 0 {
		return 0, fmt.Errorf("empty silhouette: %w", mask.ErrNoRegionsFound)
	}

	cols := make([]float64, m.Width)
	for i := range cols {
		cols[i] = float64(i)
	}
	return int(stat.Mean(cols, weights)), nil
}
