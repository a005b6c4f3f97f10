package binarize

import (
	"fmt"

	"github.com/specimen-tools/wingpoints/internal/mask"
)

// tagRegionLimit caps how many of the largest tag-window regions contribute
// to the edge search. Museum boards carry up to three printed tags.
const tagRegionLimit = 3

// FindTagsEdge locates the vertical boundary between the printed-tag area on
// the right of the board and the specimen area, returning its whole-frame
// column.
//
// The search window is the top-right quadrant of the first-pass mask: rows
// [0, topRuler) and columns [width/2, width). Interior holes of the window
// are filled and the result eroded once to sever thin spurious connections
// before labeling. The 3 largest regions (ties broken by the larger right
// bounding-box column, then label) are assumed to be the tags; the edge is
// width/2 plus the minimum left bounding-box column among them. Fewer than 3
// regions degrade gracefully to however many exist; an empty window is
// reported as mask.ErrNoRegionsFound.
func FindTagsEdge(binary *mask.Mask, topRuler int) (int, error) {
	if topRuler <= 0 || topRuler > binary.Height {
		return 0, fmt.Errorf("top ruler row %d outside frame height %d", topRuler, binary.Height)
	}

	left := binary.Width / 2
	focus := binary.SubMask(0, left, topRuler, binary.Width)

	cleaned := mask.Erode(mask.FillHoles(focus))

	regions := mask.Regions(cleaned)
	if len(regions) == 0 {
		return 0, fmt.Errorf("tag window rows [0,%d) cols [%d,%d): %w",
			topRuler, left, binary.Width, mask.ErrNoRegionsFound)
	}

	mask.SortRegionsByArea(regions)
	if len(regions) > tagRegionLimit {
		regions = regions[:tagRegionLimit]
	}

	minLeft := regions[0].MinCol
	for _, r := range regions[1:] {
		if r.MinCol < minLeft {
			minLeft = r.MinCol
		}
	}
	return left + minLeft, nil
}
