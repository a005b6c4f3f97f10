package landmarks

import (
	"fmt"

	"github.com/specimen-tools/wingpoints/internal/mask"
)

// Side identifies which wing half a detector is operating on.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// innerWindowRowFraction bounds the inner-pixel search to the upper portion
// of the half: the shoulder always sits above 3/4 of the half's height, and
// excluding the lower rows keeps hindwing background pockets out of the
// search.
const innerWindowRowFraction = 0.75

// DetectInnerPixel locates the wing-body junction (shoulder) of a half-mask
// given its wingtip.
//
// The search window covers rows [0, 0.75*height) and the columns between
// the wingtip and the body-facing edge of the half: [outer.Col, width) on
// the left side, [0, outer.Col) on the right. The window is inverted and
// its background labeled; the first-labeled region is taken as the external
// background pocket directly above the wing. The first label is the
// topmost-leftmost region in row-major scan order — the assumption is that
// scan order and "topmost pocket" coincide, which holds when the wing's
// upper edge descends from tip toward body.
//
// Within that pocket the shoulder is the deepest point nearest the body
// axis: the maximum-row coordinates, tie-broken by maximum column on the
// left side and minimum column on the right.
//
// The returned point is relative to the search window's origin; the caller
// must add the window's column offset (outer.Col on the left side, zero on
// the right) to reach the half-mask frame, and the half's own offset to
// reach the whole-silhouette frame.
func DetectInnerPixel(half *mask.Mask, outer mask.Point, side Side) (mask.Point, error) {
	lower := int(innerWindowRowFraction * float64(half.Height))

	var window *mask.Mask
	if side == SideLeft {
		window = half.SubMask(0, outer.Col, lower, half.Width)
	} else {
		window = half.SubMask(0, 0, lower, outer.Col)
	}

	pockets := mask.Regions(window.Invert())
	if len(pockets) == 0 {
		return mask.Point{}, fmt.Errorf("%s shoulder window has no background pocket: %w",
			side, mask.ErrNoRegionsFound)
	}
	pocket := pockets[0]

	maxRow := pocket.Coords[0].Row
	for _, p := range pocket.Coords {
		if p.Row > maxRow {
			maxRow = p.Row
		}
	}

	found := false
	var inner mask.Point
	for _, p := range pocket.Coords {
		if p.Row != maxRow {
			continue
		}
		if !found {
			inner, found = p, true
			continue
		}
		if side == SideLeft && p.Col > inner.Col {
			inner = p
		}
		if side == SideRight && p.Col < inner.Col {
			inner = p
		}
	}
	return inner, nil
}
