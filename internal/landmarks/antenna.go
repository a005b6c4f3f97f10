package landmarks

import (
	"github.com/specimen-tools/wingpoints/internal/mask"
)

// antennaDilationIterations is the fixed growth radius used to find the
// thin bridge an antenna forms between the two dominant background regions
// of a wing half. 35 iterations matches the appendage scale at the capture
// resolution of the collection photographs.
const antennaDilationIterations = 35

// RemoveAntenna erases an antenna artifact from a wing half-mask, if one is
// present.
//
// An antenna connected to the wing separates the half's background into two
// dominant regions: the outer background and a pocket enclosed between the
// antenna and the wing edge. Each of the two largest background regions is
// dilated independently; cells reached by both dilations trace the thin
// material bridging them, and those cells are cleared on a private copy of
// the half-mask.
//
// With fewer than two background regions there is no antenna to remove and
// the input mask is returned unchanged. This is the pipeline's one
// sanctioned silent fallback.
func RemoveAntenna(half *mask.Mask) *mask.Mask {
	background := mask.Regions(half.Invert())
	if len(background) < 2 {
		return half
	}
	mask.SortRegionsByArea(background)

	dilatedA := mask.Dilate(mask.PaintRegion(half, background[0]), antennaDilationIterations)
	dilatedB := mask.Dilate(mask.PaintRegion(half, background[1]), antennaDilationIterations)
	bridge := mask.Intersect(dilatedA, dilatedB)

	return mask.ClearWhere(half, bridge)
}
