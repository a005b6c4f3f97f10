package landmarks

import (
	"fmt"

	"github.com/specimen-tools/wingpoints/internal/mask"
)

// DetectOuterPixel locates the wingtip of a half-mask: the pixel of the
// dominant foreground region farthest (Euclidean) from the given reference
// center. The center is expressed in the half-mask's own frame and may lie
// outside the mask bounds (the left half's reference is the whole-frame
// body center).
//
// The largest region is assumed to be the wing proper; smaller regions are
// noise specks and ignored. Distance ties resolve to the first pixel in
// row-major scan order so the result never depends on traversal order. The
// returned point is in the half-mask frame.
func DetectOuterPixel(half *mask.Mask, center mask.Point) (mask.Point, error) {
	wing, err := mask.LargestRegion(mask.Regions(half))
	if err != nil {
		return mask.Point{}, fmt.Errorf("wing half: %w", err)
	}

	best := wing.Coords[0]
	bestDist := -1
	for _, p := range wing.Coords {
		dr := p.Row - center.Row
		dc := p.Col - center.Col
		d := dr*dr + dc*dc
		if d > bestDist || (d == bestDist && scanBefore(p, best)) {
			best, bestDist = p, d
		}
	}
	return best, nil
}

// scanBefore reports whether a precedes b in row-major scan order.
func scanBefore(a, b mask.Point) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}
