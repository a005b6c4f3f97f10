package mask

import (
	"errors"
	"sort"
)

// ErrNoRegionsFound indicates that a detector requiring at least one
// connected component received an empty region sequence. It marks the input
// image as unsuitable for automatic processing; callers should route the
// image to manual review rather than retry.
var ErrNoRegionsFound = errors.New("no regions found")

// Region is a maximal 4-connected set of foreground cells with its derived
// geometry. Regions are transient: they are recomputed on every Regions call
// and never persisted.
type Region struct {
	// Label is the 1-based component id, assigned in row-major discovery
	// order during the labeling scan.
	Label int

	// Area is the number of cells in the region.
	Area int

	// Bounding box, inclusive on all four edges.
	MinRow, MinCol, MaxRow, MaxCol int

	// Coords lists every cell of the region in the order the flood fill
	// visited it.
	Coords []Point
}

// Regions labels the 4-connected foreground components of m and returns one
// Region per component, ordered by label. An all-background mask yields an
// empty slice, not an error.
func Regions(m *Mask) []Region {
	visited := make([]bool, m.Height*m.Width)
	var regions []Region

	for r := 0; r < m.Height; r++ {
		for c := 0; c < m.Width; c++ {
			idx := r*m.Width + c
			if visited[idx] || !m.bits[idx] {
				continue
			}
			reg := Region{
				Label:  len(regions) + 1,
				MinRow: r, MinCol: c, MaxRow: r, MaxCol: c,
			}
			floodFill(m, visited, Point{r, c}, &reg)
			regions = append(regions, reg)
		}
	}
	return regions
}

// floodFill grows a region from a seed cell using an explicit queue, marking
// visited cells and accumulating area, bounding box, and coordinates.
// Breadth-first order keeps coordinate lists deterministic for a given mask.
func floodFill(m *Mask, visited []bool, seed Point, reg *Region) {
	queue := []Point{seed}
	visited[seed.Row*m.Width+seed.Col] = true

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		reg.Coords = append(reg.Coords, p)
		reg.Area++
		if p.Row < reg.MinRow {
			reg.MinRow = p.Row
		}
		if p.Row > reg.MaxRow {
			reg.MaxRow = p.Row
		}
		if p.Col < reg.MinCol {
			reg.MinCol = p.Col
		}
		if p.Col > reg.MaxCol {
			reg.MaxCol = p.Col
		}

		for _, n := range [4]Point{
			{p.Row - 1, p.Col},
			{p.Row + 1, p.Col},
			{p.Row, p.Col - 1},
			{p.Row, p.Col + 1},
		} {
			if n.Row < 0 || n.Row >= m.Height || n.Col < 0 || n.Col >= m.Width {
				continue
			}
			idx := n.Row*m.Width + n.Col
			if visited[idx] || !m.bits[idx] {
				continue
			}
			visited[idx] = true
			queue = append(queue, n)
		}
	}
}

// SortRegionsByArea orders regions largest-area first. Ties are broken by
// the larger right bounding-box column first, then by label, so the ordering
// never depends on sort stability.
func SortRegionsByArea(regions []Region) {
	sort.Slice(regions, func(i, j int) bool {
		if regions[i].Area != regions[j].Area {
			return regions[i].Area > regions[j].Area
		}
		if regions[i].MaxCol != regions[j].MaxCol {
			return regions[i].MaxCol > regions[j].MaxCol
		}
		return regions[i].Label < regions[j].Label
	})
}

// LargestRegion returns the region with the greatest area, breaking ties by
// the lowest label. Returns ErrNoRegionsFound for an empty sequence.
func LargestRegion(regions []Region) (Region, error) {
	if len(regions) == 0 {
		return Region{}, ErrNoRegionsFound
	}
	best := regions[0]
	for _, r := range regions[1:] {
		if r.Area > best.Area {
			best = r
		}
	}
	return best, nil
}

// PaintRegion returns a new mask of the same dimensions as m with only the
// given region's cells set.
func PaintRegion(m *Mask, reg Region) *Mask {
	out := New(m.Height, m.Width)
	for _, p := range reg.Coords {
		out.bits[p.Row*out.Width+p.Col] = true
	}
	return out
}
